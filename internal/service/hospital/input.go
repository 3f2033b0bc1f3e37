package hospital

import (
	"time"

	"github.com/nestling-app/nestling-backend/internal/domain"
)

// CreateInput holds the fields for a new hospital-visit record. The visit
// date is the creation time; a second record for the same diary on the
// same day is rejected.
type CreateInput struct {
	DiaryID      int64
	ParentKG     *float64
	BloodPress   *string
	BabyKG       *float64
	BabyCM       *float64
	Observations domain.ObservationSet
	NextVisit    *time.Time
}

// Validate checks the required fields.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.DiaryID <= 0 {
		errs = append(errs, domain.FieldError{Field: "diary_id", Message: "required"})
	}
	if i.ParentKG != nil && *i.ParentKG <= 0 {
		errs = append(errs, domain.FieldError{Field: "parent_kg", Message: "must be positive"})
	}
	if i.BabyKG != nil && *i.BabyKG <= 0 {
		errs = append(errs, domain.FieldError{Field: "baby_kg", Message: "must be positive"})
	}
	if i.BabyCM != nil && *i.BabyCM <= 0 {
		errs = append(errs, domain.FieldError{Field: "baby_cm", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the optional fields for a record update. Nil means
// "leave unchanged". A present Observations value replaces the whole set;
// there is no per-observation patching.
type UpdateInput struct {
	ID           int64
	ParentKG     *float64
	BloodPress   *string
	BabyKG       *float64
	BabyCM       *float64
	Observations *domain.ObservationSet
	NextVisit    *time.Time
}

// Validate checks the fields that are present.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.ParentKG != nil && *i.ParentKG <= 0 {
		errs = append(errs, domain.FieldError{Field: "parent_kg", Message: "must be positive"})
	}
	if i.BabyKG != nil && *i.BabyKG <= 0 {
		errs = append(errs, domain.FieldError{Field: "baby_kg", Message: "must be positive"})
	}
	if i.BabyCM != nil && *i.BabyCM <= 0 {
		errs = append(errs, domain.FieldError{Field: "baby_cm", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListRangeInput bounds a range listing by calendar day, inclusive.
type ListRangeInput struct {
	DiaryID int64
	Start   time.Time
	End     time.Time
}

// Validate checks the diary id and the bounds ordering.
func (i ListRangeInput) Validate() error {
	var errs []domain.FieldError

	if i.DiaryID <= 0 {
		errs = append(errs, domain.FieldError{Field: "diary_id", Message: "required"})
	}
	if i.Start.IsZero() {
		errs = append(errs, domain.FieldError{Field: "start", Message: "required"})
	}
	if i.End.IsZero() {
		errs = append(errs, domain.FieldError{Field: "end", Message: "required"})
	}
	if !i.Start.IsZero() && !i.End.IsZero() && i.End.Before(i.Start) {
		errs = append(errs, domain.FieldError{Field: "end", Message: "before start"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
