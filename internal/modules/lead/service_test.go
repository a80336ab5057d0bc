package lead

import (
	"context"
	"errors"
	"testing"

	"leadhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, l *domain.Lead) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLeadRepository) GetForTenant(ctx context.Context, id int64, tenantID *string) (*domain.Lead, error) {
	args := m.Called(ctx, id, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindOpenByEmail(ctx context.Context, tenantID *string, email string) (*domain.Lead, error) {
	args := m.Called(ctx, tenantID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *MockLeadRepository) List(ctx context.Context, tenantID *string, status *domain.LeadStatus, limit, offset int) ([]*domain.Lead, int64, error) {
	args := m.Called(ctx, tenantID, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.Lead), args.Get(1).(int64), args.Error(2)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func TestSubmitLead_CreatesNewLead(t *testing.T) {
	repo := new(MockLeadRepository)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("FindOpenByEmail", ctx, (*string)(nil), "new@example.com").Return(nil, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*domain.Lead")).Return(nil)

	got, err := svc.SubmitLead(ctx, nil, &SubmitLeadRequest{
		Email:   "new@example.com",
		Name:    "New Person",
		Company: "NewCo",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.LeadNew, got.Status)
	assert.Equal(t, domain.SourceWebsite, got.Source) // default source
	repo.AssertExpectations(t)
}

func TestSubmitLead_DeduplicatesByEmail(t *testing.T) {
	repo := new(MockLeadRepository)
	svc := NewService(repo)
	ctx := context.Background()

	existing := &domain.Lead{ID: 7, Email: "dup@example.com", Status: domain.LeadContacted}
	repo.On("FindOpenByEmail", ctx, (*string)(nil), "dup@example.com").Return(existing, nil)

	got, err := svc.SubmitLead(ctx, nil, &SubmitLeadRequest{Email: "dup@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitLead_ExplicitSourceKept(t *testing.T) {
	repo := new(MockLeadRepository)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("FindOpenByEmail", ctx, (*string)(nil), "ref@example.com").Return(nil, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*domain.Lead")).Return(nil)

	got, err := svc.SubmitLead(ctx, nil, &SubmitLeadRequest{
		Email:  "ref@example.com",
		Source: string(domain.SourceReferral),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SourceReferral, got.Source)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := new(MockLeadRepository)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("GetForTenant", ctx, int64(42), (*string)(nil)).Return(nil, nil)

	_, err := svc.GetByID(ctx, nil, 42)
	assert.ErrorIs(t, err, ErrLeadNotFound)
}

func TestUpdateStatus_AllowedTransition(t *testing.T) {
	repo := new(MockLeadRepository)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("GetForTenant", ctx, int64(1), (*string)(nil)).
		Return(&domain.Lead{ID: 1, Status: domain.LeadNew}, nil)
	repo.On("UpdateStatus", ctx, int64(1), domain.LeadQualified).Return(nil)

	err := svc.UpdateStatus(ctx, nil, 1, domain.LeadQualified)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateStatus_RejectsConvertedLead(t *testing.T) {
	repo := new(MockLeadRepository)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("GetForTenant", ctx, int64(2), (*string)(nil)).
		Return(&domain.Lead{ID: 2, Status: domain.LeadConverted}, nil)

	err := svc.UpdateStatus(ctx, nil, 2, domain.LeadLost)
	assert.ErrorIs(t, err, ErrAlreadyConverted)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_RejectsConvertedAsTarget(t *testing.T) {
	repo := new(MockLeadRepository)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("GetForTenant", ctx, int64(3), (*string)(nil)).
		Return(&domain.Lead{ID: 3, Status: domain.LeadQualified}, nil)

	err := svc.UpdateStatus(ctx, nil, 3, domain.LeadConverted)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatus_LostCanBeReopened(t *testing.T) {
	repo := new(MockLeadRepository)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("GetForTenant", ctx, int64(4), (*string)(nil)).
		Return(&domain.Lead{ID: 4, Status: domain.LeadLost}, nil)
	repo.On("UpdateStatus", ctx, int64(4), domain.LeadNew).Return(nil)

	err := svc.UpdateStatus(ctx, nil, 4, domain.LeadNew)
	assert.NoError(t, err)
}

func TestUpdateStatus_PropagatesRepoError(t *testing.T) {
	repo := new(MockLeadRepository)
	svc := NewService(repo)
	ctx := context.Background()

	dbErr := errors.New("db down")
	repo.On("GetForTenant", ctx, int64(5), (*string)(nil)).Return(nil, dbErr)

	err := svc.UpdateStatus(ctx, nil, 5, domain.LeadLost)
	assert.ErrorIs(t, err, dbErr)
}

func TestCanTransition_Table(t *testing.T) {
	cases := []struct {
		from, to domain.LeadStatus
		want     bool
	}{
		{domain.LeadNew, domain.LeadContacted, true},
		{domain.LeadNew, domain.LeadQualified, true},
		{domain.LeadNew, domain.LeadLost, true},
		{domain.LeadContacted, domain.LeadNew, false},
		{domain.LeadContacted, domain.LeadQualified, true},
		{domain.LeadQualified, domain.LeadContacted, true},
		{domain.LeadLost, domain.LeadNew, true},
		{domain.LeadLost, domain.LeadQualified, false},
		{domain.LeadNew, domain.LeadConverted, false},
		{domain.LeadQualified, domain.LeadConverted, false},
		{domain.LeadConverted, domain.LeadNew, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, canTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}
