package post

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nestling-app/nestling-backend/internal/domain"
)

// Delete soft-deletes the requester's post. Deleting a post that is not
// yours, already deleted, or absent reports not-found.
func (s *Service) Delete(ctx context.Context, id int64) error {
	parentID, err := requesterFromCtx(ctx)
	if err != nil {
		return err
	}
	if id <= 0 {
		return domain.NewValidationError("id", "required")
	}

	existing, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get post: %w", err)
	}
	if existing.ParentID != parentID {
		return fmt.Errorf("post %d: %w", id, domain.ErrNotFound)
	}

	if err := s.posts.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	s.log.InfoContext(ctx, "post deleted",
		slog.String("parent_id", parentID),
		slog.Int64("post_id", id),
	)

	return nil
}
