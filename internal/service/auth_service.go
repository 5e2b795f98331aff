package service

import (
	"context"
	"time"

	"github.com/spec-kit/field-tracker/internal/auth"
	"github.com/spec-kit/field-tracker/internal/config"
	"github.com/spec-kit/field-tracker/internal/domain"
	"github.com/spec-kit/field-tracker/internal/store"
	apperrors "github.com/spec-kit/field-tracker/pkg/util"
)

// AuthService registers and authenticates dashboard accounts.
// Passwords are kept as opaque strings; username uniqueness is not
// enforced at creation time.
type AuthService struct {
	store  store.Store
	tokens *auth.TokenManager
}

// NewAuthService constructs the service.
func NewAuthService(cfg config.Config, st store.Store) *AuthService {
	return &AuthService{
		store:  st,
		tokens: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
	}
}

// TokenManager exposes the token manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

// Register creates the account and issues a session token.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, string, time.Time, error) {
	user := s.store.CreateUser(username, password)
	token, expiresAt, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return user, token, expiresAt, nil
}

// Login authenticates by username and password and issues a token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, string, time.Time, error) {
	user, ok := s.store.GetUserByUsername(username)
	if !ok || user.Password != password {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	token, expiresAt, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return user, token, expiresAt, nil
}
