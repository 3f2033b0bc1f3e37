package post

import (
	"strings"

	"github.com/nestling-app/nestling-backend/internal/domain"
)

const maxTitleLength = 200

// CreateInput holds the fields for a new post.
type CreateInput struct {
	Title    string
	Content  string
	Reveal   int
	PhotoRef *string
	HashList *string
}

// Validate checks the required fields.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len([]rune(i.Title)) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if i.Reveal < 0 {
		errs = append(errs, domain.FieldError{Field: "reveal", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the optional fields for a post update. Nil means
// "leave unchanged"; a present empty string is a validation error.
type UpdateInput struct {
	ID       int64
	Title    *string
	Content  *string
	Reveal   *int
	PhotoRef *string
	HashList *string
}

// Validate checks the fields that are present.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Title != nil {
		if strings.TrimSpace(*i.Title) == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "cannot be empty"})
		} else if len([]rune(*i.Title)) > maxTitleLength {
			errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
		}
	}
	if i.Content != nil && strings.TrimSpace(*i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "cannot be empty"})
	}
	if i.Reveal != nil && *i.Reveal < 0 {
		errs = append(errs, domain.FieldError{Field: "reveal", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
