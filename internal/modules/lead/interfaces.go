package lead

import (
	"context"

	"leadhub/internal/domain"
)

// Repository — only the lead data access the capture module uses. The
// conversion engine has its own transactional access path.
type Repository interface {
	Create(ctx context.Context, l *domain.Lead) error
	GetForTenant(ctx context.Context, id int64, tenantID *string) (*domain.Lead, error)
	FindOpenByEmail(ctx context.Context, tenantID *string, email string) (*domain.Lead, error)
	List(ctx context.Context, tenantID *string, status *domain.LeadStatus, limit, offset int) ([]*domain.Lead, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) error
}
