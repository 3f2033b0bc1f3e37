package domain

import "fmt"

// PageRequest is a 1-based page/size pair supplied by the caller.
// Both fields are required and must be positive; missing or non-positive
// values are rejected, never defaulted, so that bad requests fail before
// any store access happens.
type PageRequest struct {
	Page int
	Size int
}

// Validate checks that both page and size are positive.
func (r PageRequest) Validate() error {
	if r.Page < 1 {
		return fmt.Errorf("%w: page must be >= 1, got %d", ErrInvalidPageRequest, r.Page)
	}
	if r.Size < 1 {
		return fmt.Errorf("%w: size must be >= 1, got %d", ErrInvalidPageRequest, r.Size)
	}
	return nil
}

// PageDescriptor is the offset/limit pair derived from a PageRequest plus
// the authoritative total reported by the data source.
type PageDescriptor struct {
	Offset  int
	Limit   int
	Total   int
	HasNext bool
}

// Paginate turns a PageRequest and a total count into a PageDescriptor.
// HasNext is computed from the total, not from the number of rows a store
// actually returns, so it stays correct when the last page under-returns
// due to concurrent deletions.
func Paginate(r PageRequest, total int) (PageDescriptor, error) {
	if err := r.Validate(); err != nil {
		return PageDescriptor{}, err
	}
	if total < 0 {
		return PageDescriptor{}, fmt.Errorf("%w: total must be >= 0, got %d", ErrInvalidPageRequest, total)
	}

	return PageDescriptor{
		Offset:  (r.Page - 1) * r.Size,
		Limit:   r.Size,
		Total:   total,
		HasNext: r.Page*r.Size < total,
	}, nil
}

// PageResult is one page of items plus the pagination metadata every
// list-returning operation reports.
type PageResult[T any] struct {
	Items   []T
	Page    int
	Size    int
	Total   int
	HasNext bool
}

// NewPageResult assembles a PageResult from a request, a descriptor and the
// fetched items. Items is never nil so that an empty page serializes as [].
func NewPageResult[T any](r PageRequest, d PageDescriptor, items []T) PageResult[T] {
	if items == nil {
		items = []T{}
	}
	return PageResult[T]{
		Items:   items,
		Page:    r.Page,
		Size:    r.Size,
		Total:   d.Total,
		HasNext: d.HasNext,
	}
}

// EmptyPageResult is the canonical page for "no rows": total 0, no next page.
func EmptyPageResult[T any](r PageRequest) PageResult[T] {
	return PageResult[T]{
		Items:   []T{},
		Page:    r.Page,
		Size:    r.Size,
		Total:   0,
		HasNext: false,
	}
}
