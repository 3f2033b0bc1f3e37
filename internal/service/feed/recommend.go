package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nestling-app/nestling-backend/internal/domain"
	"github.com/nestling-app/nestling-backend/pkg/ctxutil"
)

// RecommendInput holds the parameters for a recommendation request.
// Tier carries the wire vocabulary ("friend", "friend_read", "neighbor").
type RecommendInput struct {
	Tier string
	Page domain.PageRequest
}

// Recommend returns one page of the requested recommendation tier.
//
// Validation happens before any repository access: an unknown tier or a bad
// page never touches the stores. A requester with an empty relation set, or
// a repository reporting not-found, yields an empty page rather than an
// error: a thin social graph is a normal state for a new account.
func (s *Service) Recommend(ctx context.Context, input RecommendInput) (domain.PageResult[domain.ContentSummary], error) {
	var empty domain.PageResult[domain.ContentSummary]

	parentID, ok := ctxutil.ParentIDFromCtx(ctx)
	if !ok {
		return empty, domain.ErrUnauthorized
	}

	tier, err := domain.ParseWireTier(input.Tier)
	if err != nil {
		return empty, err
	}
	if err := input.Page.Validate(); err != nil {
		return empty, err
	}
	if s.cfg.MaxPageSize > 0 && input.Page.Size > s.cfg.MaxPageSize {
		return empty, domain.NewValidationError("size", "too large")
	}

	var result domain.PageResult[domain.ContentSummary]
	switch tier {
	case domain.TierMate:
		result, err = s.mateStories(ctx, parentID, input.Page)
	case domain.TierFriendUnread:
		result, err = s.friendUnreadStories(ctx, parentID, input.Page)
	case domain.TierNeighbor:
		result, err = s.neighborStories(ctx, parentID, input.Page)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.EmptyPageResult[domain.ContentSummary](input.Page), nil
		}
		return empty, err
	}

	s.log.InfoContext(ctx, "recommendation page served",
		slog.String("parent_id", parentID),
		slog.String("tier", tier.String()),
		slog.Int("total", result.Total),
	)

	return result, nil
}

// mateStories serves posts authored by the requester's mates. The mate
// shape is deliberately light: no engagement counters, no excerpt.
func (s *Service) mateStories(ctx context.Context, parentID string, page domain.PageRequest) (domain.PageResult[domain.ContentSummary], error) {
	var empty domain.PageResult[domain.ContentSummary]

	mates, err := s.relations.ListMateIDs(ctx, parentID)
	if err != nil {
		return empty, fmt.Errorf("list mates: %w", err)
	}
	if len(mates) == 0 {
		return domain.EmptyPageResult[domain.ContentSummary](page), nil
	}

	total, err := s.posts.CountByAuthors(ctx, mates)
	if err != nil {
		return empty, fmt.Errorf("count mate posts: %w", err)
	}

	desc, err := domain.Paginate(page, total)
	if err != nil {
		return empty, err
	}
	if total == 0 {
		return domain.EmptyPageResult[domain.ContentSummary](page), nil
	}

	items, err := s.posts.ListByAuthors(ctx, mates, desc.Limit, desc.Offset)
	if err != nil {
		return empty, fmt.Errorf("list mate posts: %w", err)
	}

	for i := range items {
		items[i] = items[i].StripEngagement()
	}

	return domain.NewPageResult(page, desc, items), nil
}

// friendUnreadStories serves posts by confirmed friends that the requester
// has not opened yet.
func (s *Service) friendUnreadStories(ctx context.Context, parentID string, page domain.PageRequest) (domain.PageResult[domain.ContentSummary], error) {
	var empty domain.PageResult[domain.ContentSummary]

	friends, err := s.relations.ListFriendIDs(ctx, parentID)
	if err != nil {
		return empty, fmt.Errorf("list friends: %w", err)
	}
	if len(friends) == 0 {
		return domain.EmptyPageResult[domain.ContentSummary](page), nil
	}

	total, err := s.posts.CountUnreadByAuthors(ctx, parentID, friends)
	if err != nil {
		return empty, fmt.Errorf("count unread friend posts: %w", err)
	}

	desc, err := domain.Paginate(page, total)
	if err != nil {
		return empty, err
	}
	if total == 0 {
		return domain.EmptyPageResult[domain.ContentSummary](page), nil
	}

	items, err := s.posts.ListUnreadByAuthors(ctx, parentID, friends, desc.Limit, desc.Offset)
	if err != nil {
		return empty, fmt.Errorf("list unread friend posts: %w", err)
	}

	s.truncateExcerpts(items)

	return domain.NewPageResult(page, desc, items), nil
}

// neighborStories serves discovery-pool posts from parents outside the
// requester's graph, ranked by the repository's discovery score. The pool
// excludes the requester's mates and friends; those surface through their
// own tiers.
func (s *Service) neighborStories(ctx context.Context, parentID string, page domain.PageRequest) (domain.PageResult[domain.ContentSummary], error) {
	var empty domain.PageResult[domain.ContentSummary]

	total, err := s.posts.CountNeighbor(ctx, parentID, s.cfg.NeighborMinAge)
	if err != nil {
		return empty, fmt.Errorf("count neighbor posts: %w", err)
	}

	desc, err := domain.Paginate(page, total)
	if err != nil {
		return empty, err
	}
	if total == 0 {
		return domain.EmptyPageResult[domain.ContentSummary](page), nil
	}

	items, err := s.posts.ListNeighbor(ctx, parentID, s.cfg.NeighborMinAge, desc.Limit, desc.Offset)
	if err != nil {
		return empty, fmt.Errorf("list neighbor posts: %w", err)
	}

	s.truncateExcerpts(items)

	return domain.NewPageResult(page, desc, items), nil
}

func (s *Service) truncateExcerpts(items []domain.ContentSummary) {
	n := s.cfg.ExcerptLength
	if n <= 0 {
		return
	}
	for i := range items {
		if items[i].Excerpt == nil {
			continue
		}
		runes := []rune(*items[i].Excerpt)
		if len(runes) <= n {
			continue
		}
		out := string(runes[:n])
		items[i].Excerpt = &out
	}
}
