// Package feed implements the recommendation feeds: mate stories,
// unread friend stories, and neighbor discovery.
package feed

import (
	"context"
	"log/slog"
	"time"

	"github.com/nestling-app/nestling-backend/internal/config"
	"github.com/nestling-app/nestling-backend/internal/domain"
)

type relationRepo interface {
	ListMateIDs(ctx context.Context, parentID string) ([]string, error)
	ListFriendIDs(ctx context.Context, parentID string) ([]string, error)
}

type postRepo interface {
	ListByAuthors(ctx context.Context, authorIDs []string, limit, offset int) ([]domain.ContentSummary, error)
	CountByAuthors(ctx context.Context, authorIDs []string) (int, error)
	ListUnreadByAuthors(ctx context.Context, viewerID string, authorIDs []string, limit, offset int) ([]domain.ContentSummary, error)
	CountUnreadByAuthors(ctx context.Context, viewerID string, authorIDs []string) (int, error)
	ListNeighbor(ctx context.Context, viewerID string, minAge time.Duration, limit, offset int) ([]domain.ContentSummary, error)
	CountNeighbor(ctx context.Context, viewerID string, minAge time.Duration) (int, error)
}

// Service dispatches recommendation requests to the per-tier strategies.
type Service struct {
	relations relationRepo
	posts     postRepo
	cfg       config.FeedConfig
	log       *slog.Logger
}

// NewService creates a new Feed service.
func NewService(log *slog.Logger, relations relationRepo, posts postRepo, cfg config.FeedConfig) *Service {
	return &Service{
		relations: relations,
		posts:     posts,
		cfg:       cfg,
		log:       log.With("service", "feed"),
	}
}
