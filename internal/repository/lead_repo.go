package repository

import (
	"context"
	"errors"
	"time"

	"leadhub/internal/domain"

	"gorm.io/gorm"
)

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

type leadRow struct {
	ID               int64     `gorm:"column:id;primaryKey"`
	TenantID         *string   `gorm:"column:tenant_id;index"`
	Email            string    `gorm:"column:email;index"`
	Name             string    `gorm:"column:name"`
	Company          string    `gorm:"column:company"`
	ServiceInterest  string    `gorm:"column:service_interest"`
	Source           string    `gorm:"column:source"`
	Status           string    `gorm:"column:status;index"`
	OwnerID          *int64    `gorm:"column:owner_id"`
	ClientID         *int64    `gorm:"column:client_id"`
	PrimaryContactID *int64    `gorm:"column:primary_contact_id"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (leadRow) TableName() string { return "leads" }

func toDomainLead(m leadRow) *domain.Lead {
	return &domain.Lead{
		ID:               m.ID,
		TenantID:         m.TenantID,
		Email:            m.Email,
		Name:             m.Name,
		Company:          m.Company,
		ServiceInterest:  m.ServiceInterest,
		Source:           domain.LeadSource(m.Source),
		Status:           domain.LeadStatus(m.Status),
		OwnerID:          m.OwnerID,
		ClientID:         m.ClientID,
		PrimaryContactID: m.PrimaryContactID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toLeadRow(l *domain.Lead) leadRow {
	return leadRow{
		ID:               l.ID,
		TenantID:         l.TenantID,
		Email:            l.Email,
		Name:             l.Name,
		Company:          l.Company,
		ServiceInterest:  l.ServiceInterest,
		Source:           string(l.Source),
		Status:           string(l.Status),
		OwnerID:          l.OwnerID,
		ClientID:         l.ClientID,
		PrimaryContactID: l.PrimaryContactID,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

func (r *LeadRepository) Create(ctx context.Context, l *domain.Lead) error {
	m := toLeadRow(l)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	l.ID = m.ID
	l.CreatedAt = m.CreatedAt
	l.UpdatedAt = m.UpdatedAt
	return nil
}

// GetForTenant fetches a lead scoped to the caller's tenant. A nil tenant
// matches only tenant-less leads. Returns (nil, nil) when no row matches.
func (r *LeadRepository) GetForTenant(ctx context.Context, id int64, tenantID *string) (*domain.Lead, error) {
	q := r.db.WithContext(ctx).Where("id = ?", id)
	if tenantID != nil {
		q = q.Where("tenant_id = ?", *tenantID)
	} else {
		q = q.Where("tenant_id IS NULL")
	}

	var m leadRow
	if err := q.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainLead(m), nil
}

func (r *LeadRepository) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	var m leadRow
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomainLead(m), nil
}

// FindOpenByEmail returns the newest non-converted lead captured for an
// email, used to deduplicate repeat submissions.
func (r *LeadRepository) FindOpenByEmail(ctx context.Context, tenantID *string, email string) (*domain.Lead, error) {
	q := r.db.WithContext(ctx).
		Where("email = ? AND status <> ?", email, string(domain.LeadConverted))
	if tenantID != nil {
		q = q.Where("tenant_id = ?", *tenantID)
	} else {
		q = q.Where("tenant_id IS NULL")
	}

	var m leadRow
	if err := q.Order("created_at DESC").First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainLead(m), nil
}

func (r *LeadRepository) List(ctx context.Context, tenantID *string, status *domain.LeadStatus, limit, offset int) ([]*domain.Lead, int64, error) {
	q := r.db.WithContext(ctx).Model(&leadRow{})
	if tenantID != nil {
		q = q.Where("tenant_id = ?", *tenantID)
	}
	if status != nil {
		q = q.Where("status = ?", string(*status))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []leadRow
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	leads := make([]*domain.Lead, 0, len(rows))
	for _, m := range rows {
		leads = append(leads, toDomainLead(m))
	}
	return leads, total, nil
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) error {
	return r.db.WithContext(ctx).Model(&leadRow{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now(),
		}).Error
}

// MarkConverted flips the lead to its terminal status and links the resolved
// client and primary contact. The status guard in the WHERE clause is the
// optimistic check that serializes concurrent conversion attempts: only one
// caller sees RowsAffected == 1.
func (r *LeadRepository) MarkConverted(ctx context.Context, id int64, clientID, contactID *int64) (bool, error) {
	res := r.db.WithContext(ctx).Model(&leadRow{}).
		Where("id = ? AND status <> ?", id, string(domain.LeadConverted)).
		Updates(map[string]any{
			"status":             string(domain.LeadConverted),
			"client_id":          clientID,
			"primary_contact_id": contactID,
			"updated_at":         time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
