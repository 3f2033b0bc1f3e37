package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nestling-app/nestling-backend/internal/domain"
)

// SignInMethodKakao marks accounts backed by a Kakao OAuth subject.
const SignInMethodKakao = "kakao"

// LoginKakao exchanges a Kakao authorization code for a session. Unknown
// Kakao subjects get an account created on the fly; the account id embeds
// the provider subject so repeat logins resolve to the same parent.
func (s *Service) LoginKakao(ctx context.Context, code string) (Session, error) {
	if strings.TrimSpace(code) == "" {
		return Session{}, domain.NewValidationError("code", "must not be empty")
	}

	identity, err := s.kakao.VerifyCode(ctx, code)
	if err != nil {
		s.log.WarnContext(ctx, "kakao code verification failed",
			slog.String("error", err.Error()),
		)
		return Session{}, domain.ErrUnauthorized
	}

	parentID := SignInMethodKakao + ":" + identity.ProviderID

	parent, err := s.parents.GetByID(ctx, parentID)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		parent, err = s.parents.Create(ctx, domain.Parent{
			ID:           parentID,
			Email:        strings.ToLower(identity.Email),
			Nickname:     kakaoNickname(identity.Nickname, identity.Email),
			SignInMethod: SignInMethodKakao,
			PhotoRef:     identity.PhotoURL,
		})
		if err != nil {
			return Session{}, fmt.Errorf("create parent: %w", err)
		}
		s.log.InfoContext(ctx, "parent registered via kakao",
			slog.String("parent_id", parent.ID),
		)
	default:
		return Session{}, fmt.Errorf("get parent %s: %w", parentID, err)
	}

	token, err := s.tokens.GenerateAccessToken(parent.ID, parent.SignInMethod)
	if err != nil {
		return Session{}, fmt.Errorf("issue token: %w", err)
	}

	return Session{Parent: parent, AccessToken: token}, nil
}

// kakaoNickname picks a display name from the profile, falling back to the
// local part of the email when Kakao returns no nickname.
func kakaoNickname(nickname *string, email string) string {
	if nickname != nil && *nickname != "" {
		return *nickname
	}
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return "kakao user"
}
