package post

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nestling-app/nestling-backend/internal/domain"
)

// Update applies the present fields of input onto the stored post.
// Only the author may update a post; anyone else gets not-found rather
// than a hint that the post exists.
func (s *Service) Update(ctx context.Context, input UpdateInput) (domain.Post, error) {
	parentID, err := requesterFromCtx(ctx)
	if err != nil {
		return domain.Post{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Post{}, err
	}

	existing, err := s.posts.GetByID(ctx, input.ID)
	if err != nil {
		return domain.Post{}, fmt.Errorf("get post: %w", err)
	}
	if existing.ParentID != parentID {
		return domain.Post{}, fmt.Errorf("post %d: %w", input.ID, domain.ErrNotFound)
	}

	if input.Title != nil {
		existing.Title = *input.Title
	}
	if input.Content != nil {
		existing.Content = *input.Content
	}
	if input.Reveal != nil {
		existing.Reveal = *input.Reveal
	}
	if input.PhotoRef != nil {
		existing.PhotoRef = input.PhotoRef
	}
	if input.HashList != nil {
		existing.HashList = input.HashList
	}

	updated, err := s.posts.Update(ctx, existing)
	if err != nil {
		return domain.Post{}, fmt.Errorf("update post: %w", err)
	}

	s.log.InfoContext(ctx, "post updated",
		slog.String("parent_id", parentID),
		slog.Int64("post_id", updated.ID),
	)

	return updated, nil
}
