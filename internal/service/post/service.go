// Package post implements community story management: create, read,
// list, update, soft delete, and the bookmark and heart toggles.
package post

import (
	"context"
	"log/slog"

	"github.com/nestling-app/nestling-backend/internal/config"
	"github.com/nestling-app/nestling-backend/internal/domain"
)

type postRepo interface {
	Create(ctx context.Context, p domain.Post) (domain.Post, error)
	GetByID(ctx context.Context, id int64) (domain.Post, error)
	ListByParent(ctx context.Context, parentID string, limit, offset int) ([]domain.Post, error)
	CountByParent(ctx context.Context, parentID string) (int, error)
	Update(ctx context.Context, p domain.Post) (domain.Post, error)
	SoftDelete(ctx context.Context, id int64) error
	ToggleScript(ctx context.Context, postID int64, parentID string) (bool, error)
	ToggleHeart(ctx context.Context, postID int64, parentID string) (bool, error)
	MarkViewed(ctx context.Context, postID int64, viewerID string) error
}

// Service handles post lifecycle operations.
type Service struct {
	posts postRepo
	cfg   config.FeedConfig
	log   *slog.Logger
}

// NewService creates a new Post service.
func NewService(log *slog.Logger, posts postRepo, cfg config.FeedConfig) *Service {
	return &Service{
		posts: posts,
		cfg:   cfg,
		log:   log.With("service", "post"),
	}
}
