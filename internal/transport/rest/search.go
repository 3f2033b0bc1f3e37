package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/nestling-app/nestling-backend/internal/domain"
	"github.com/nestling-app/nestling-backend/internal/service/feed"
	"github.com/nestling-app/nestling-backend/internal/service/search"
)

type feedService interface {
	Recommend(ctx context.Context, input feed.RecommendInput) (domain.PageResult[domain.ContentSummary], error)
}

type searchService interface {
	Search(ctx context.Context, input search.SearchInput) (domain.PageResult[domain.ContentSummary], error)
}

// SearchHandler serves the recommendation and title-search endpoints.
type SearchHandler struct {
	feed   feedService
	search searchService
	log    *slog.Logger
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(feed feedService, search searchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		feed:   feed,
		search: search,
		log:    logger.With("handler", "search"),
	}
}

type recommendRequest struct {
	Type string `json:"type"`
	Size int    `json:"size"`
	Page int    `json:"page"`
}

type searchRequest struct {
	Search string `json:"search"`
	Size   int    `json:"size"`
	Page   int    `json:"page"`
}

// Recommend handles POST /post/search/recommend.
func (h *SearchHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.feed.Recommend(r.Context(), feed.RecommendInput{
		Tier: req.Type,
		Page: domain.PageRequest{Page: req.Page, Size: req.Size},
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"result": toPageResponse(result),
	})
}

// Result handles POST /post/search/result. The response echoes the search
// text alongside the result page.
func (h *SearchHandler) Result(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.search.Search(r.Context(), search.SearchInput{
		Query: req.Search,
		Page:  domain.PageRequest{Page: req.Page, Size: req.Size},
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"search": req.Search,
		"result": toPageResponse(result),
	})
}

func (h *SearchHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidPageRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
