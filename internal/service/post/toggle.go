package post

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nestling-app/nestling-backend/internal/domain"
)

// ToggleScript flips the requester's bookmark on a post and reports the
// resulting state (true when the bookmark now exists). The flip is a single
// atomic statement in the repository, so two concurrent toggles settle on
// one winner instead of duplicating or double-deleting the marker.
func (s *Service) ToggleScript(ctx context.Context, postID int64) (bool, error) {
	return s.toggleMarker(ctx, postID, "script", s.posts.ToggleScript)
}

// ToggleHeart flips the requester's heart on a post and reports the
// resulting state.
func (s *Service) ToggleHeart(ctx context.Context, postID int64) (bool, error) {
	return s.toggleMarker(ctx, postID, "heart", s.posts.ToggleHeart)
}

func (s *Service) toggleMarker(ctx context.Context, postID int64, kind string, toggle func(context.Context, int64, string) (bool, error)) (bool, error) {
	parentID, err := requesterFromCtx(ctx)
	if err != nil {
		return false, err
	}
	if postID <= 0 {
		return false, domain.NewValidationError("id", "required")
	}

	// The post must exist and be visible before any marker changes.
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return false, fmt.Errorf("get post: %w", err)
	}

	on, err := toggle(ctx, postID, parentID)
	if err != nil {
		return false, fmt.Errorf("toggle %s: %w", kind, err)
	}

	s.log.InfoContext(ctx, "post marker toggled",
		slog.String("parent_id", parentID),
		slog.Int64("post_id", postID),
		slog.String("kind", kind),
		slog.Bool("on", on),
	)

	return on, nil
}
