package post

import (
	"context"
	"fmt"

	"github.com/nestling-app/nestling-backend/internal/domain"
)

// List returns one page of the requester's own posts, newest first.
func (s *Service) List(ctx context.Context, page domain.PageRequest) (domain.PageResult[domain.Post], error) {
	var empty domain.PageResult[domain.Post]

	parentID, err := requesterFromCtx(ctx)
	if err != nil {
		return empty, err
	}
	if err := page.Validate(); err != nil {
		return empty, err
	}
	if s.cfg.MaxPageSize > 0 && page.Size > s.cfg.MaxPageSize {
		return empty, domain.NewValidationError("size", "too large")
	}

	total, err := s.posts.CountByParent(ctx, parentID)
	if err != nil {
		return empty, fmt.Errorf("count posts: %w", err)
	}

	desc, err := domain.Paginate(page, total)
	if err != nil {
		return empty, err
	}
	if total == 0 {
		return domain.EmptyPageResult[domain.Post](page), nil
	}

	items, err := s.posts.ListByParent(ctx, parentID, desc.Limit, desc.Offset)
	if err != nil {
		return empty, fmt.Errorf("list posts: %w", err)
	}

	return domain.NewPageResult(page, desc, items), nil
}
