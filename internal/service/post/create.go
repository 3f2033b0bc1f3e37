package post

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nestling-app/nestling-backend/internal/domain"
)

// Create stores a new post authored by the requester.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Post, error) {
	parentID, err := requesterFromCtx(ctx)
	if err != nil {
		return domain.Post{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Post{}, err
	}

	created, err := s.posts.Create(ctx, domain.Post{
		ParentID: parentID,
		Title:    input.Title,
		Content:  input.Content,
		Reveal:   input.Reveal,
		PhotoRef: input.PhotoRef,
		HashList: input.HashList,
	})
	if err != nil {
		return domain.Post{}, fmt.Errorf("create post: %w", err)
	}

	s.log.InfoContext(ctx, "post created",
		slog.String("parent_id", parentID),
		slog.Int64("post_id", created.ID),
	)

	return created, nil
}
