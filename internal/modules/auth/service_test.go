package auth

import (
	"context"
	"testing"

	"leadhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	u.ID = 1
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type fakeJWT struct{}

func (fakeJWT) GenerateToken(userID int64, role, tenantID string) (string, error) {
	return "token", nil
}

func TestRegister_Success(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, fakeJWT{})
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "agent@example.com").Return(nil, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

	user, token, err := svc.Register(ctx, RegisterRequest{
		Name:     "Agent",
		Email:    "Agent@Example.com ",
		Password: "supersecret",
		TenantID: "tenant-a",
	})
	require.NoError(t, err)
	assert.Equal(t, "token", token)
	assert.Equal(t, "agent@example.com", user.Email)
	assert.Equal(t, domain.RoleAgent, user.Role)
	require.NotNil(t, user.TenantID)
	assert.Equal(t, "tenant-a", *user.TenantID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("supersecret")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, fakeJWT{})
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "taken@example.com").
		Return(&domain.User{ID: 3, Email: "taken@example.com"}, nil)

	_, _, err := svc.Register(ctx, RegisterRequest{
		Name:     "Agent",
		Email:    "taken@example.com",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, fakeJWT{})
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.On("GetByEmail", ctx, "agent@example.com").
		Return(&domain.User{ID: 2, Email: "agent@example.com", PasswordHash: string(hash), Role: domain.RoleAgent}, nil)

	user, token, err := svc.Login(ctx, LoginRequest{Email: "agent@example.com", Password: "supersecret"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), user.ID)
	assert.Equal(t, "token", token)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, fakeJWT{})
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.On("GetByEmail", ctx, "agent@example.com").
		Return(&domain.User{ID: 2, PasswordHash: string(hash)}, nil)

	_, _, err = svc.Login(ctx, LoginRequest{Email: "agent@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, fakeJWT{})
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, nil)

	_, _, err := svc.Login(ctx, LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
