package repository

import (
	"context"
	"errors"
	"time"

	"leadhub/internal/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OpportunityRepository struct {
	db *gorm.DB
}

func NewOpportunityRepository(db *gorm.DB) *OpportunityRepository {
	return &OpportunityRepository{db: db}
}

type opportunityRow struct {
	ID                int64             `gorm:"column:id;primaryKey"`
	TenantID          string            `gorm:"column:tenant_id;index"`
	Name              string            `gorm:"column:name"`
	AccountID         int64             `gorm:"column:account_id;index"`
	PipelineID        int64             `gorm:"column:pipeline_id"`
	StageID           int64             `gorm:"column:stage_id"`
	Amount            *float64          `gorm:"column:amount"`
	Probability       int               `gorm:"column:probability"`
	WeightedAmount    *float64          `gorm:"column:weighted_amount"`
	Currency          string            `gorm:"column:currency"`
	Status            string            `gorm:"column:status"`
	ExpectedCloseDate *time.Time        `gorm:"column:expected_close_date"`
	Source            string            `gorm:"column:source"`
	OwnerID           int64             `gorm:"column:owner_id"`
	Metadata          datatypes.JSONMap `gorm:"column:metadata"`
	CreatedAt         time.Time         `gorm:"column:created_at"`
	UpdatedAt         time.Time         `gorm:"column:updated_at"`
}

func (opportunityRow) TableName() string { return "opportunities" }

func toDomainOpportunity(m opportunityRow) *domain.Opportunity {
	return &domain.Opportunity{
		ID:                m.ID,
		TenantID:          m.TenantID,
		Name:              m.Name,
		AccountID:         m.AccountID,
		PipelineID:        m.PipelineID,
		StageID:           m.StageID,
		Amount:            m.Amount,
		Probability:       m.Probability,
		WeightedAmount:    m.WeightedAmount,
		Currency:          m.Currency,
		Status:            domain.OpportunityStatus(m.Status),
		ExpectedCloseDate: m.ExpectedCloseDate,
		Source:            domain.OpportunitySource(m.Source),
		OwnerID:           m.OwnerID,
		Metadata:          m.Metadata,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func (r *OpportunityRepository) Create(ctx context.Context, o *domain.Opportunity) error {
	m := opportunityRow{
		TenantID:          o.TenantID,
		Name:              o.Name,
		AccountID:         o.AccountID,
		PipelineID:        o.PipelineID,
		StageID:           o.StageID,
		Amount:            o.Amount,
		Probability:       o.Probability,
		WeightedAmount:    o.WeightedAmount,
		Currency:          o.Currency,
		Status:            string(o.Status),
		ExpectedCloseDate: o.ExpectedCloseDate,
		Source:            string(o.Source),
		OwnerID:           o.OwnerID,
		Metadata:          datatypes.JSONMap(o.Metadata),
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	o.ID = m.ID
	o.CreatedAt = m.CreatedAt
	o.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *OpportunityRepository) GetByID(ctx context.Context, id int64) (*domain.Opportunity, error) {
	var m opportunityRow
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomainOpportunity(m), nil
}

func (r *OpportunityRepository) CountByTenant(ctx context.Context, tenantID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&opportunityRow{}).
		Where("tenant_id = ?", tenantID).
		Count(&total).Error
	return total, err
}
