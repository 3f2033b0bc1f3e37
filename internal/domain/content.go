package domain

import "time"

// ContentSummary is the denormalized card shown in recommendation feeds and
// search results. Mate-tier feeds use the lighter shape (no engagement
// counters, no excerpt); friend-unread and neighbor feeds carry the full one.
type ContentSummary struct {
	PostID         int64
	PhotoRef       *string
	Title          string
	AuthorName     string
	AuthorPhotoRef *string
	HeartCount     *int
	CommentCount   *int
	Excerpt        *string
}

// StripEngagement clears the heavy fields, producing the mate-tier shape.
func (c ContentSummary) StripEngagement() ContentSummary {
	c.HeartCount = nil
	c.CommentCount = nil
	c.Excerpt = nil
	return c
}

// Post is a community story authored by a parent.
type Post struct {
	ID         int64
	ParentID   string
	Title      string
	Content    string
	Reveal     int
	PhotoRef   *string
	HashList   *string
	CreateTime time.Time
	ModifyTime *time.Time
	DeleteTime *time.Time
}

// IsDeleted returns true if the post has been soft-deleted.
func (p *Post) IsDeleted() bool {
	return p.DeleteTime != nil
}
