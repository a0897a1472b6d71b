package auth

import (
	"context"
	"strings"

	"sportrent/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// Service is the identity collaborator: registration, credential check and
// token issue. The reservation core only ever consumes user lookups.
type Service struct {
	users UserRepository
	jwt   jwtService
}

func NewService(users UserRepository, jwt jwtService) *Service {
	return &Service{users: users, jwt: jwt}
}

// Register creates a client account. Admin accounts are seeded, never
// self-registered.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || len(req.Password) < 8 || strings.TrimSpace(req.Name) == "" {
		return nil, ErrValidation
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleClient,
		Name:         strings.TrimSpace(req.Name),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token, User: user}, nil
}

func (s *Service) Me(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}
