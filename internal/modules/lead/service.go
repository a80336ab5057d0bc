package lead

import (
	"context"
	"time"

	"leadhub/internal/domain"
)

// transitions holds the allowed lead status moves. CONVERTED never appears as
// a target: the only way there is the conversion engine, and it is terminal.
var transitions = map[domain.LeadStatus][]domain.LeadStatus{
	domain.LeadNew:       {domain.LeadContacted, domain.LeadQualified, domain.LeadLost},
	domain.LeadContacted: {domain.LeadQualified, domain.LeadLost},
	domain.LeadQualified: {domain.LeadContacted, domain.LeadLost},
	domain.LeadLost:      {domain.LeadNew},
}

func canTransition(from, to domain.LeadStatus) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// Service handles lead capture and management.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SubmitLead records an inbound lead. Repeat submissions for the same email
// within the tenant return the existing open lead instead of duplicating it.
func (s *Service) SubmitLead(ctx context.Context, tenantID *string, req *SubmitLeadRequest) (*domain.Lead, error) {
	existing, err := s.repo.FindOpenByEmail(ctx, tenantID, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	source := domain.LeadSource(req.Source)
	if source == "" {
		source = domain.SourceWebsite
	}

	now := time.Now()
	l := &domain.Lead{
		TenantID:        tenantID,
		Email:           req.Email,
		Name:            req.Name,
		Company:         req.Company,
		ServiceInterest: req.ServiceInterest,
		Source:          source,
		Status:          domain.LeadNew,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) GetByID(ctx context.Context, tenantID *string, id int64) (*domain.Lead, error) {
	l, err := s.repo.GetForTenant(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, ErrLeadNotFound
	}
	return l, nil
}

func (s *Service) List(ctx context.Context, tenantID *string, status *domain.LeadStatus, limit, offset int) ([]*domain.Lead, int64, error) {
	return s.repo.List(ctx, tenantID, status, limit, offset)
}

// UpdateStatus moves a lead along the pre-conversion lifecycle. Converted
// leads are immutable; converting is the conversion engine's job.
func (s *Service) UpdateStatus(ctx context.Context, tenantID *string, id int64, to domain.LeadStatus) error {
	l, err := s.repo.GetForTenant(ctx, id, tenantID)
	if err != nil {
		return err
	}
	if l == nil {
		return ErrLeadNotFound
	}
	if l.IsConverted() {
		return ErrAlreadyConverted
	}
	if !canTransition(l.Status, to) {
		return ErrInvalidTransition
	}
	return s.repo.UpdateStatus(ctx, id, to)
}
