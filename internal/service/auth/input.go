package auth

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/nestling-app/nestling-backend/internal/domain"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt input limit
	maxNicknameLength = 30
)

// RegisterInput holds the fields for a new email-based account.
type RegisterInput struct {
	Email    string
	Nickname string
	Password string
}

// Validate checks the registration fields.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	email := strings.TrimSpace(i.Email)
	if email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid"})
	}

	nickname := strings.TrimSpace(i.Nickname)
	if nickname == "" {
		errs = append(errs, domain.FieldError{Field: "nickname", Message: "required"})
	} else if utf8.RuneCountInString(nickname) > maxNicknameLength {
		errs = append(errs, domain.FieldError{Field: "nickname", Message: "too long"})
	}

	switch {
	case i.Password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len(i.Password) < minPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	case len(i.Password) > maxPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds email-based login credentials.
type LoginInput struct {
	Email    string
	Password string
}

// Validate checks that both credentials are present.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
