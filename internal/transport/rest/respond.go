package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/nestling-app/nestling-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// summaryResponse is the JSON form of a feed or search card. The engagement
// fields are omitted when the tier strips them.
type summaryResponse struct {
	PostID       int64   `json:"postId"`
	Photo        *string `json:"photo,omitempty"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	ParentPhoto  *string `json:"parentPhoto,omitempty"`
	HeartCount   *int    `json:"heart,omitempty"`
	CommentCount *int    `json:"comment,omitempty"`
	Excerpt      *string `json:"content,omitempty"`
}

// pageResponse is the JSON form of one result page.
type pageResponse struct {
	Items   []summaryResponse `json:"items"`
	Page    int               `json:"page"`
	Size    int               `json:"size"`
	Total   int               `json:"total"`
	HasNext bool              `json:"hasNext"`
}

func toSummaryResponse(s domain.ContentSummary) summaryResponse {
	return summaryResponse{
		PostID:       s.PostID,
		Photo:        s.PhotoRef,
		Title:        s.Title,
		Name:         s.AuthorName,
		ParentPhoto:  s.AuthorPhotoRef,
		HeartCount:   s.HeartCount,
		CommentCount: s.CommentCount,
		Excerpt:      s.Excerpt,
	}
}

func toPageResponse(result domain.PageResult[domain.ContentSummary]) pageResponse {
	items := make([]summaryResponse, len(result.Items))
	for i, s := range result.Items {
		items[i] = toSummaryResponse(s)
	}
	return pageResponse{
		Items:   items,
		Page:    result.Page,
		Size:    result.Size,
		Total:   result.Total,
		HasNext: result.HasNext,
	}
}

// postResponse is the JSON form of a full post.
type postResponse struct {
	ID         int64      `json:"id"`
	ParentID   string     `json:"parentId"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Reveal     int        `json:"reveal"`
	Photo      *string    `json:"photo,omitempty"`
	HashList   *string    `json:"hashList,omitempty"`
	CreateTime time.Time  `json:"createTime"`
	ModifyTime *time.Time `json:"modifyTime,omitempty"`
}

func toPostResponse(p domain.Post) postResponse {
	return postResponse{
		ID:         p.ID,
		ParentID:   p.ParentID,
		Title:      p.Title,
		Content:    p.Content,
		Reveal:     p.Reveal,
		Photo:      p.PhotoRef,
		HashList:   p.HashList,
		CreateTime: p.CreateTime,
		ModifyTime: p.ModifyTime,
	}
}
