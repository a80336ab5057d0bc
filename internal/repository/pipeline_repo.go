package repository

import (
	"context"
	"errors"
	"time"

	"leadhub/internal/domain"

	"gorm.io/gorm"
)

type PipelineRepository struct {
	db *gorm.DB
}

func NewPipelineRepository(db *gorm.DB) *PipelineRepository {
	return &PipelineRepository{db: db}
}

type pipelineRow struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	TenantID  string    `gorm:"column:tenant_id;index"`
	Name      string    `gorm:"column:name"`
	IsDefault bool      `gorm:"column:is_default"`
	IsActive  bool      `gorm:"column:is_active"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (pipelineRow) TableName() string { return "pipelines" }

type stageRow struct {
	ID          int64  `gorm:"column:id;primaryKey"`
	PipelineID  int64  `gorm:"column:pipeline_id;index"`
	Name        string `gorm:"column:name"`
	SortOrder   int    `gorm:"column:sort_order"`
	Probability int    `gorm:"column:probability"`
	Type        string `gorm:"column:type"`
	Color       string `gorm:"column:color"`
}

func (stageRow) TableName() string { return "pipeline_stages" }

func toDomainStage(m stageRow) domain.Stage {
	return domain.Stage{
		ID:          m.ID,
		PipelineID:  m.PipelineID,
		Name:        m.Name,
		SortOrder:   m.SortOrder,
		Probability: m.Probability,
		Type:        domain.StageType(m.Type),
		Color:       m.Color,
	}
}

// Create inserts the pipeline together with its stages.
func (r *PipelineRepository) Create(ctx context.Context, p *domain.Pipeline) error {
	m := pipelineRow{
		TenantID:  p.TenantID,
		Name:      p.Name,
		IsDefault: p.IsDefault,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	p.ID = m.ID
	p.CreatedAt = m.CreatedAt
	p.UpdatedAt = m.UpdatedAt

	for i := range p.Stages {
		s := &p.Stages[i]
		sm := stageRow{
			PipelineID:  p.ID,
			Name:        s.Name,
			SortOrder:   s.SortOrder,
			Probability: s.Probability,
			Type:        string(s.Type),
			Color:       s.Color,
		}
		if err := r.db.WithContext(ctx).Create(&sm).Error; err != nil {
			return err
		}
		s.ID = sm.ID
		s.PipelineID = p.ID
	}
	return nil
}

// FindDefault returns the tenant's default pipeline with its stages in
// pipeline order, or (nil, nil) when the tenant has none yet.
func (r *PipelineRepository) FindDefault(ctx context.Context, tenantID string) (*domain.Pipeline, error) {
	var m pipelineRow
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND is_default = ?", tenantID, true).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.loadWithStages(ctx, m)
}

func (r *PipelineRepository) GetByID(ctx context.Context, id int64) (*domain.Pipeline, error) {
	var m pipelineRow
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.loadWithStages(ctx, m)
}

func (r *PipelineRepository) loadWithStages(ctx context.Context, m pipelineRow) (*domain.Pipeline, error) {
	var stages []stageRow
	err := r.db.WithContext(ctx).
		Where("pipeline_id = ?", m.ID).
		Order("sort_order ASC").
		Find(&stages).Error
	if err != nil {
		return nil, err
	}

	p := &domain.Pipeline{
		ID:        m.ID,
		TenantID:  m.TenantID,
		Name:      m.Name,
		IsDefault: m.IsDefault,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	for _, s := range stages {
		p.Stages = append(p.Stages, toDomainStage(s))
	}
	return p, nil
}

func (r *PipelineRepository) CountByTenant(ctx context.Context, tenantID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&pipelineRow{}).
		Where("tenant_id = ?", tenantID).
		Count(&total).Error
	return total, err
}
