package auth

import (
	"context"
	"testing"

	"sportrent/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 1
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type fakeJWT struct{}

func (fakeJWT) GenerateToken(userID int64, role string) (string, error) {
	return "token", nil
}

func TestRegister_Success(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, fakeJWT{})

	users.On("GetByEmail", mock.Anything, "ana@example.com").Return(nil, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	user, err := service.Register(context.Background(), RegisterRequest{
		Email:    "Ana@Example.com",
		Password: "secret-password",
		Name:     "Ana",
	})

	assert.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, domain.RoleClient, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret-password")))
}

func TestRegister_EmailTaken(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, fakeJWT{})

	users.On("GetByEmail", mock.Anything, "ana@example.com").Return(&domain.User{ID: 2}, nil)

	_, err := service.Register(context.Background(), RegisterRequest{
		Email:    "ana@example.com",
		Password: "secret-password",
		Name:     "Ana",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, fakeJWT{})

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "ana@example.com").Return(&domain.User{
		ID:           1,
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleClient,
	}, nil)

	result, err := service.Login(context.Background(), LoginRequest{
		Email:    "ana@example.com",
		Password: "secret-password",
	})
	assert.NoError(t, err)
	assert.Equal(t, "token", result.Token)
	assert.Equal(t, int64(1), result.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, fakeJWT{})

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "ana@example.com").Return(&domain.User{
		ID:           1,
		PasswordHash: string(hash),
	}, nil)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "ana@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, fakeJWT{})

	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
