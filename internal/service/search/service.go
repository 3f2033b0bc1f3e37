// Package search implements title search over community posts.
package search

import (
	"context"
	"log/slog"

	"github.com/nestling-app/nestling-backend/internal/config"
	"github.com/nestling-app/nestling-backend/internal/domain"
)

type postRepo interface {
	SearchByTitle(ctx context.Context, query string, limit, offset int) ([]domain.ContentSummary, error)
	CountByTitle(ctx context.Context, query string) (int, error)
}

// Service provides post search operations.
type Service struct {
	posts postRepo
	cfg   config.FeedConfig
	log   *slog.Logger
}

// NewService creates a new Search service.
func NewService(log *slog.Logger, posts postRepo, cfg config.FeedConfig) *Service {
	return &Service{
		posts: posts,
		cfg:   cfg,
		log:   log.With("service", "search"),
	}
}
