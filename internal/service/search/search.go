package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nestling-app/nestling-backend/internal/domain"
	"github.com/nestling-app/nestling-backend/pkg/ctxutil"
)

// Search returns a page of post summaries whose titles contain the query,
// newest first. Zero matches is a normal outcome: an empty page, not an
// error. Invalid input never reaches the repository.
func (s *Service) Search(ctx context.Context, input SearchInput) (domain.PageResult[domain.ContentSummary], error) {
	var empty domain.PageResult[domain.ContentSummary]

	parentID, ok := ctxutil.ParentIDFromCtx(ctx)
	if !ok {
		return empty, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxPageSize); err != nil {
		return empty, err
	}
	if err := input.Page.Validate(); err != nil {
		return empty, err
	}

	query := strings.TrimSpace(input.Query)

	total, err := s.posts.CountByTitle(ctx, query)
	if err != nil {
		return empty, fmt.Errorf("count posts by title: %w", err)
	}

	desc, err := domain.Paginate(input.Page, total)
	if err != nil {
		return empty, err
	}

	if total == 0 {
		return domain.EmptyPageResult[domain.ContentSummary](input.Page), nil
	}

	items, err := s.posts.SearchByTitle(ctx, query, desc.Limit, desc.Offset)
	if err != nil {
		return empty, fmt.Errorf("search posts by title: %w", err)
	}

	for i := range items {
		items[i].Excerpt = truncateExcerpt(items[i].Excerpt, s.cfg.ExcerptLength)
	}

	s.log.InfoContext(ctx, "post search",
		slog.String("parent_id", parentID),
		slog.String("query", query),
		slog.Int("total", total),
	)

	return domain.NewPageResult(input.Page, desc, items), nil
}

// truncateExcerpt cuts the excerpt to n runes. Content is often Korean, so
// counting bytes would split characters.
func truncateExcerpt(s *string, n int) *string {
	if s == nil || n <= 0 {
		return s
	}
	runes := []rune(*s)
	if len(runes) <= n {
		return s
	}
	out := string(runes[:n])
	return &out
}
