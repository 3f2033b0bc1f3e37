package post

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nestling-app/nestling-backend/internal/domain"
	"github.com/nestling-app/nestling-backend/pkg/ctxutil"
)

func requesterFromCtx(ctx context.Context) (string, error) {
	parentID, ok := ctxutil.ParentIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	return parentID, nil
}

// Get returns a post by id. Opening someone else's post records a read
// marker so it drops out of that reader's unread feed; a failed marker
// write is logged but never blocks the read.
func (s *Service) Get(ctx context.Context, id int64) (domain.Post, error) {
	parentID, err := requesterFromCtx(ctx)
	if err != nil {
		return domain.Post{}, err
	}
	if id <= 0 {
		return domain.Post{}, domain.NewValidationError("id", "required")
	}

	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return domain.Post{}, fmt.Errorf("get post: %w", err)
	}

	if p.ParentID != parentID {
		if err := s.posts.MarkViewed(ctx, id, parentID); err != nil {
			s.log.WarnContext(ctx, "mark post viewed failed",
				slog.Int64("post_id", id),
				slog.String("parent_id", parentID),
				slog.Any("error", err),
			)
		}
	}

	return p, nil
}
