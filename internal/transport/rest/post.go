package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/nestling-app/nestling-backend/internal/domain"
	"github.com/nestling-app/nestling-backend/internal/service/post"
)

type postService interface {
	Create(ctx context.Context, input post.CreateInput) (domain.Post, error)
	Get(ctx context.Context, id int64) (domain.Post, error)
	List(ctx context.Context, page domain.PageRequest) (domain.PageResult[domain.Post], error)
	Update(ctx context.Context, input post.UpdateInput) (domain.Post, error)
	Delete(ctx context.Context, id int64) error
	ToggleScript(ctx context.Context, postID int64) (bool, error)
	ToggleHeart(ctx context.Context, postID int64) (bool, error)
}

// PostHandler serves post REST endpoints.
type PostHandler struct {
	svc postService
	log *slog.Logger
}

// NewPostHandler creates a PostHandler.
func NewPostHandler(svc postService, logger *slog.Logger) *PostHandler {
	return &PostHandler{svc: svc, log: logger.With("handler", "post")}
}

type createPostRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Reveal   int     `json:"reveal"`
	Photo    *string `json:"photo"`
	HashList *string `json:"hashList"`
}

type updatePostRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Reveal   *int    `json:"reveal"`
	Photo    *string `json:"photo"`
	HashList *string `json:"hashList"`
}

// Create handles POST /post.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), post.CreateInput{
		Title:    req.Title,
		Content:  req.Content,
		Reveal:   req.Reveal,
		PhotoRef: req.Photo,
		HashList: req.HashList,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPostResponse(created))
}

// Get handles GET /post/{id}.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostResponse(p))
}

// List handles GET /post?page=&size=.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	size := queryInt(r, "size", 20)

	result, err := h.svc.List(r.Context(), domain.PageRequest{Page: page, Size: size})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	items := make([]postResponse, len(result.Items))
	for i, p := range result.Items {
		items[i] = toPostResponse(p)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"items":   items,
		"page":    result.Page,
		"size":    result.Size,
		"total":   result.Total,
		"hasNext": result.HasNext,
	})
}

// Update handles PUT /post/{id}.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), post.UpdateInput{
		ID:       id,
		Title:    req.Title,
		Content:  req.Content,
		Reveal:   req.Reveal,
		PhotoRef: req.Photo,
		HashList: req.HashList,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostResponse(updated))
}

// Delete handles DELETE /post/{id}.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ToggleScript handles POST /post/{id}/script.
func (h *PostHandler) ToggleScript(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.svc.ToggleScript)
}

// ToggleHeart handles POST /post/{id}/heart.
func (h *PostHandler) ToggleHeart(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.svc.ToggleHeart)
}

func (h *PostHandler) toggle(w http.ResponseWriter, r *http.Request, fn func(context.Context, int64) (bool, error)) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	on, err := fn(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"on": on})
}

func (h *PostHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidPageRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// pathID parses the {id} path segment. Writes a 400 and returns false on a
// missing or non-numeric value.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
