package repository

import (
	"context"
	"errors"
	"time"

	"leadhub/internal/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

type accountRow struct {
	ID        int64             `gorm:"column:id;primaryKey"`
	TenantID  string            `gorm:"column:tenant_id;index"`
	Name      string            `gorm:"column:name;index"`
	Industry  string            `gorm:"column:industry"`
	Type      string            `gorm:"column:type"`
	OwnerID   int64             `gorm:"column:owner_id"`
	ClientID  *int64            `gorm:"column:client_id;index"`
	Metadata  datatypes.JSONMap `gorm:"column:metadata"`
	CreatedAt time.Time         `gorm:"column:created_at"`
	UpdatedAt time.Time         `gorm:"column:updated_at"`
}

func (accountRow) TableName() string { return "accounts" }

func toDomainAccount(m accountRow) *domain.Account {
	return &domain.Account{
		ID:        m.ID,
		TenantID:  m.TenantID,
		Name:      m.Name,
		Industry:  m.Industry,
		Type:      domain.AccountType(m.Type),
		OwnerID:   m.OwnerID,
		ClientID:  m.ClientID,
		Metadata:  m.Metadata,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *AccountRepository) Create(ctx context.Context, a *domain.Account) error {
	m := accountRow{
		TenantID:  a.TenantID,
		Name:      a.Name,
		Industry:  a.Industry,
		Type:      string(a.Type),
		OwnerID:   a.OwnerID,
		ClientID:  a.ClientID,
		Metadata:  datatypes.JSONMap(a.Metadata),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	a.ID = m.ID
	a.CreatedAt = m.CreatedAt
	a.UpdatedAt = m.UpdatedAt
	return nil
}

// FindByClientID resolves the account linked to a delivery-side client.
func (r *AccountRepository) FindByClientID(ctx context.Context, tenantID string, clientID int64) (*domain.Account, error) {
	var m accountRow
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND client_id = ?", tenantID, clientID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomainAccount(m), nil
}

// FindByName matches an account by exact name against any of the given
// candidates. Empty candidates are skipped.
func (r *AccountRepository) FindByName(ctx context.Context, tenantID string, names ...string) (*domain.Account, error) {
	candidates := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			candidates = append(candidates, n)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	var m accountRow
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND name IN ?", tenantID, candidates).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomainAccount(m), nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	var m accountRow
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomainAccount(m), nil
}

func (r *AccountRepository) CountByTenant(ctx context.Context, tenantID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&accountRow{}).
		Where("tenant_id = ?", tenantID).
		Count(&total).Error
	return total, err
}
