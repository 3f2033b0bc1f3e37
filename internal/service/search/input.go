package search

import (
	"strings"

	"github.com/nestling-app/nestling-backend/internal/domain"
)

// SearchInput holds the parameters for a title search.
type SearchInput struct {
	Query string
	Page  domain.PageRequest
}

// Validate checks the query text. Page bounds are checked separately so an
// invalid page surfaces as ErrInvalidPageRequest, not a field error.
func (i SearchInput) Validate(maxPageSize int) error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Query) == "" {
		errs = append(errs, domain.FieldError{Field: "search", Message: "required"})
	}
	if maxPageSize > 0 && i.Page.Size > maxPageSize {
		errs = append(errs, domain.FieldError{Field: "size", Message: "too large"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
