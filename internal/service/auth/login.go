package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/nestling-app/nestling-backend/internal/domain"
)

// Login verifies email credentials and issues an access token. An unknown
// email, a password-less provider account, and a wrong password all report
// the same ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (Session, error) {
	if err := input.Validate(); err != nil {
		return Session{}, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	parent, err := s.parents.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Session{}, domain.ErrUnauthorized
		}
		return Session{}, fmt.Errorf("get parent by email: %w", err)
	}

	if parent.PasswordHash == nil {
		return Session{}, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*parent.PasswordHash), []byte(input.Password)); err != nil {
		return Session{}, domain.ErrUnauthorized
	}

	token, err := s.tokens.GenerateAccessToken(parent.ID, parent.SignInMethod)
	if err != nil {
		return Session{}, fmt.Errorf("issue token: %w", err)
	}

	s.log.InfoContext(ctx, "parent logged in",
		slog.String("parent_id", parent.ID),
	)

	return Session{Parent: parent, AccessToken: token}, nil
}
