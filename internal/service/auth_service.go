package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/invyfy/invyfy-api/internal/auth"
	"github.com/invyfy/invyfy-api/internal/config"
	"github.com/invyfy/invyfy-api/internal/domain"
	"github.com/invyfy/invyfy-api/internal/repository"
	apperrors "github.com/invyfy/invyfy-api/pkg/util"
)

// AuthService coordinates signup and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL()),
		bcryptCost: cfg.BcryptCost,
	}
}

// Signup creates a new account and issues its first token. Emails are
// expected pre-normalized by the request layer.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*domain.User, string, time.Time, error) {
	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	if exists {
		return nil, "", time.Time{}, apperrors.NewConflict("Email already registered")
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	token, exp, err := s.tokenMgr.Generate(user.ID)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	return user, token, exp, nil
}

// Login authenticates a user. An unknown email and a wrong password answer
// with the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("Invalid email or password")
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("Invalid email or password")
	}

	token, exp, err := s.tokenMgr.Generate(user.ID)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	return user, token, exp, nil
}

// Logout is a stateless acknowledgment; tokens stay valid until expiry.
func (s *AuthService) Logout(_ context.Context) error {
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
