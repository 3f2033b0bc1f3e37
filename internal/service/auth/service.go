// Package auth implements account registration, login, and access-token
// validation. Passwords are stored as bcrypt hashes; provider-based
// accounts carry no password at all.
package auth

import (
	"context"
	"log/slog"

	authpkg "github.com/nestling-app/nestling-backend/internal/auth"
	"github.com/nestling-app/nestling-backend/internal/config"
	"github.com/nestling-app/nestling-backend/internal/domain"
)

type parentRepo interface {
	Create(ctx context.Context, p domain.Parent) (domain.Parent, error)
	GetByID(ctx context.Context, id string) (domain.Parent, error)
	GetByEmail(ctx context.Context, email string) (domain.Parent, error)
}

type tokenManager interface {
	GenerateAccessToken(parentID string, signInMethod string) (string, error)
	ValidateAccessToken(tokenString string) (string, string, error)
}

type codeVerifier interface {
	VerifyCode(ctx context.Context, code string) (*authpkg.ProviderIdentity, error)
}

// Service handles authentication operations.
type Service struct {
	parents parentRepo
	tokens  tokenManager
	kakao   codeVerifier
	cfg     config.AuthConfig
	log     *slog.Logger
}

// NewService creates a new Auth service.
func NewService(log *slog.Logger, parents parentRepo, tokens tokenManager, kakao codeVerifier, cfg config.AuthConfig) *Service {
	return &Service{
		parents: parents,
		tokens:  tokens,
		kakao:   kakao,
		cfg:     cfg,
		log:     log.With("service", "auth"),
	}
}

// ValidateToken resolves an access token to the parent it was issued for.
// Any token defect reports ErrUnauthorized; callers get no detail on what
// exactly was wrong with the token.
func (s *Service) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	parentID, _, err := s.tokens.ValidateAccessToken(tokenString)
	if err != nil {
		return "", domain.ErrUnauthorized
	}
	return parentID, nil
}
