package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nestling-app/nestling-backend/internal/domain"
)

// SignInMethodEmail marks accounts created through email registration, as
// opposed to external provider subjects.
const SignInMethodEmail = "email"

// Session is the result of a successful registration or login.
type Session struct {
	Parent      domain.Parent
	AccessToken string
}

// Register creates an email-based account and issues its first access
// token. The account id is a generated subject in the same id space
// external providers use.
func (s *Service) Register(ctx context.Context, input RegisterInput) (Session, error) {
	if err := input.Validate(); err != nil {
		return Session{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return Session{}, fmt.Errorf("hash password: %w", err)
	}
	hashStr := string(hash)

	parent, err := s.parents.Create(ctx, domain.Parent{
		ID:           SignInMethodEmail + ":" + uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Nickname:     strings.TrimSpace(input.Nickname),
		PasswordHash: &hashStr,
		SignInMethod: SignInMethodEmail,
	})
	if err != nil {
		return Session{}, fmt.Errorf("create parent: %w", err)
	}

	token, err := s.tokens.GenerateAccessToken(parent.ID, parent.SignInMethod)
	if err != nil {
		return Session{}, fmt.Errorf("issue token: %w", err)
	}

	s.log.InfoContext(ctx, "parent registered",
		slog.String("parent_id", parent.ID),
	)

	return Session{Parent: parent, AccessToken: token}, nil
}
