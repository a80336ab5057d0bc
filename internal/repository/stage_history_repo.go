package repository

import (
	"context"
	"time"

	"leadhub/internal/domain"

	"gorm.io/gorm"
)

type StageHistoryRepository struct {
	db *gorm.DB
}

func NewStageHistoryRepository(db *gorm.DB) *StageHistoryRepository {
	return &StageHistoryRepository{db: db}
}

type stageHistoryRow struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	OpportunityID int64     `gorm:"column:opportunity_id;index"`
	StageID       int64     `gorm:"column:stage_id"`
	ChangedBy     int64     `gorm:"column:changed_by"`
	ChangedAt     time.Time `gorm:"column:changed_at"`
}

func (stageHistoryRow) TableName() string { return "opportunity_stage_history" }

func (r *StageHistoryRepository) Create(ctx context.Context, h *domain.StageHistory) error {
	m := stageHistoryRow{
		OpportunityID: h.OpportunityID,
		StageID:       h.StageID,
		ChangedBy:     h.ChangedBy,
		ChangedAt:     h.ChangedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	h.ID = m.ID
	return nil
}

func (r *StageHistoryRepository) ListByOpportunity(ctx context.Context, opportunityID int64) ([]domain.StageHistory, error) {
	var rows []stageHistoryRow
	err := r.db.WithContext(ctx).
		Where("opportunity_id = ?", opportunityID).
		Order("changed_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.StageHistory, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.StageHistory{
			ID:            m.ID,
			OpportunityID: m.OpportunityID,
			StageID:       m.StageID,
			ChangedBy:     m.ChangedBy,
			ChangedAt:     m.ChangedAt,
		})
	}
	return out, nil
}
