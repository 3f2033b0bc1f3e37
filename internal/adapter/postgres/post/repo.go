// Package post implements the Post repository using PostgreSQL.
// Besides CRUD it owns the feed and search queries that project posts
// into content summaries with denormalized engagement counts.
package post

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/nestling-app/nestling-backend/internal/adapter/postgres"
	"github.com/nestling-app/nestling-backend/internal/domain"
)

const table = "post"

var columns = []string{
	"post_id", "parent_id", "reveal", "title", "content", "photo_id",
	"hash", "create_time", "modify_time", "delete_time",
}

// Repo provides post persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new post repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// CRUD
// ---------------------------------------------------------------------------

// Create inserts a new post and returns the persisted domain.Post.
func (r *Repo) Create(ctx context.Context, p domain.Post) (domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert(table).
		Columns("parent_id", "reveal", "title", "content", "photo_id", "hash").
		Values(p.ParentID, p.Reveal, p.Title, p.Content, p.PhotoRef, p.HashList).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return domain.Post{}, fmt.Errorf("build insert post: %w", err)
	}

	created, err := scanPost(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Post{}, postgres.MapError(err, "post", p.ParentID)
	}

	return created, nil
}

// GetByID returns a post by id. Soft-deleted posts map to domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"post_id": id}).
		Where("delete_time IS NULL").
		ToSql()
	if err != nil {
		return domain.Post{}, fmt.Errorf("build select post: %w", err)
	}

	p, err := scanPost(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Post{}, postgres.MapError(err, "post", id)
	}

	return p, nil
}

// ListByParent returns the live posts of one author, newest first.
func (r *Repo) ListByParent(ctx context.Context, parentID string, limit, offset int) ([]domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"parent_id": parentID}).
		Where("delete_time IS NULL").
		OrderBy("create_time DESC", "post_id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list posts: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "post", parentID)
	}
	defer rows.Close()

	return collectPosts(rows)
}

// CountByParent returns the number of live posts of one author.
func (r *Repo) CountByParent(ctx context.Context, parentID string) (int, error) {
	return r.count(ctx, postgres.Builder.
		Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"parent_id": parentID}).
		Where("delete_time IS NULL"))
}

// Update rewrites the mutable fields of a post and stamps modify_time.
func (r *Repo) Update(ctx context.Context, p domain.Post) (domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Update(table).
		Set("reveal", p.Reveal).
		Set("title", p.Title).
		Set("content", p.Content).
		Set("photo_id", p.PhotoRef).
		Set("hash", p.HashList).
		Set("modify_time", squirrel.Expr("now()")).
		Where(squirrel.Eq{"post_id": p.ID}).
		Where("delete_time IS NULL").
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return domain.Post{}, fmt.Errorf("build update post: %w", err)
	}

	updated, err := scanPost(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Post{}, postgres.MapError(err, "post", p.ID)
	}

	return updated, nil
}

// SoftDelete marks a post deleted. Already-deleted posts map to
// domain.ErrNotFound.
func (r *Repo) SoftDelete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Update(table).
		Set("delete_time", squirrel.Expr("now()")).
		Where(squirrel.Eq{"post_id": id}).
		Where("delete_time IS NULL").
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete post: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "post", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "post", id)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Feed and search projections
// ---------------------------------------------------------------------------

// SearchByTitle returns summaries of live posts whose title contains the
// query, newest first with post_id as the tie-break.
func (r *Repo) SearchByTitle(ctx context.Context, query string, limit, offset int) ([]domain.ContentSummary, error) {
	sel := summarySelect().
		Where(squirrel.ILike{"p.title": "%" + escapeLike(query) + "%"}).
		OrderBy("p.create_time DESC", "p.post_id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	return r.listSummaries(ctx, sel, query)
}

// CountByTitle returns how many live posts match the title query.
func (r *Repo) CountByTitle(ctx context.Context, query string) (int, error) {
	return r.count(ctx, postgres.Builder.
		Select("COUNT(*)").
		From(table+" p").
		Where("p.delete_time IS NULL").
		Where(squirrel.ILike{"p.title": "%" + escapeLike(query) + "%"}))
}

// ListByAuthors returns summaries of live posts written by any of the given
// authors, newest first.
func (r *Repo) ListByAuthors(ctx context.Context, authorIDs []string, limit, offset int) ([]domain.ContentSummary, error) {
	if len(authorIDs) == 0 {
		return []domain.ContentSummary{}, nil
	}

	sel := summarySelect().
		Where(squirrel.Eq{"p.parent_id": authorIDs}).
		OrderBy("p.create_time DESC", "p.post_id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	return r.listSummaries(ctx, sel, authorIDs)
}

// CountByAuthors returns how many live posts the given authors have.
func (r *Repo) CountByAuthors(ctx context.Context, authorIDs []string) (int, error) {
	if len(authorIDs) == 0 {
		return 0, nil
	}
	return r.count(ctx, postgres.Builder.
		Select("COUNT(*)").
		From(table+" p").
		Where("p.delete_time IS NULL").
		Where(squirrel.Eq{"p.parent_id": authorIDs}))
}

// ListUnreadByAuthors is ListByAuthors restricted to posts the viewer has no
// read marker for.
func (r *Repo) ListUnreadByAuthors(ctx context.Context, viewerID string, authorIDs []string, limit, offset int) ([]domain.ContentSummary, error) {
	if len(authorIDs) == 0 {
		return []domain.ContentSummary{}, nil
	}

	sel := summarySelect().
		LeftJoin("pview v ON v.post_id = p.post_id AND v.parent_id = ?", viewerID).
		Where("v.post_id IS NULL").
		Where(squirrel.Eq{"p.parent_id": authorIDs}).
		OrderBy("p.create_time DESC", "p.post_id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	return r.listSummaries(ctx, sel, viewerID)
}

// CountUnreadByAuthors returns how many of the authors' live posts the viewer
// has not read.
func (r *Repo) CountUnreadByAuthors(ctx context.Context, viewerID string, authorIDs []string) (int, error) {
	if len(authorIDs) == 0 {
		return 0, nil
	}
	return r.count(ctx, postgres.Builder.
		Select("COUNT(*)").
		From(table+" p").
		LeftJoin("pview v ON v.post_id = p.post_id AND v.parent_id = ?", viewerID).
		Where("v.post_id IS NULL").
		Where("p.delete_time IS NULL").
		Where(squirrel.Eq{"p.parent_id": authorIDs}))
}

// ListNeighbor returns summaries of live posts by authors outside the
// viewer's relation graph, ranked by an engagement-weighted discovery score
// with post_id as the tie-break. Posts younger than minAge are held back
// from the discovery pool.
func (r *Repo) ListNeighbor(ctx context.Context, viewerID string, minAge time.Duration, limit, offset int) ([]domain.ContentSummary, error) {
	sel := summarySelect().
		Where(squirrel.NotEq{"p.parent_id": viewerID}).
		Where(notConnected, viewerID, viewerID, viewerID).
		OrderBy(neighborScore+" DESC", "p.post_id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset))
	if minAge > 0 {
		sel = sel.Where("p.create_time <= now() - make_interval(secs => ?)", minAge.Seconds())
	}

	return r.listSummaries(ctx, sel, viewerID)
}

// CountNeighbor returns the size of the viewer's neighbor pool.
func (r *Repo) CountNeighbor(ctx context.Context, viewerID string, minAge time.Duration) (int, error) {
	sel := postgres.Builder.
		Select("COUNT(*)").
		From(table+" p").
		Where("p.delete_time IS NULL").
		Where(squirrel.NotEq{"p.parent_id": viewerID}).
		Where(notConnected, viewerID, viewerID, viewerID)
	if minAge > 0 {
		sel = sel.Where("p.create_time <= now() - make_interval(secs => ?)", minAge.Seconds())
	}
	return r.count(ctx, sel)
}

// notConnected keeps only authors with no mate link or friend edge to the
// viewer. Mate pairs are stored once, so both columns are checked.
const notConnected = "p.parent_id NOT IN (" +
	"SELECT CASE WHEN parent_id_1 = ? THEN parent_id_2 ELSE parent_id_1 END" +
	" FROM ppconnect WHERE ? IN (parent_id_1, parent_id_2)" +
	" UNION" +
	" SELECT friend_id FROM pfriend WHERE parent_id = ?)"

// neighborScore favors engaged posts but decays with age (one point per day).
const neighborScore = "((SELECT COUNT(*) FROM pheart h WHERE h.post_id = p.post_id) * 2" +
	" + (SELECT COUNT(*) FROM pcomment c WHERE c.post_id = p.post_id AND c.delete_time IS NULL) * 3" +
	" - EXTRACT(EPOCH FROM (now() - p.create_time)) / 86400.0)"

// ---------------------------------------------------------------------------
// Engagement markers
// ---------------------------------------------------------------------------

// toggleSQL flips a (post_id, parent_id) marker row in one statement:
// delete if present, insert if absent. The returned row count of the insert
// arm tells which way it went.
const toggleSQL = `WITH del AS (
	DELETE FROM %s WHERE post_id = $1 AND parent_id = $2 RETURNING 1
)
INSERT INTO %s (post_id, parent_id)
SELECT $1, $2 WHERE NOT EXISTS (SELECT 1 FROM del)`

// ToggleScript atomically bookmarks or unbookmarks a post for a parent.
// Returns true when the post ends up bookmarked.
func (r *Repo) ToggleScript(ctx context.Context, postID int64, parentID string) (bool, error) {
	return r.toggleMarker(ctx, "pscript", postID, parentID)
}

// ToggleHeart atomically likes or unlikes a post for a parent.
// Returns true when the post ends up liked.
func (r *Repo) ToggleHeart(ctx context.Context, postID int64, parentID string) (bool, error) {
	return r.toggleMarker(ctx, "pheart", postID, parentID)
}

func (r *Repo) toggleMarker(ctx context.Context, marker string, postID int64, parentID string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql := fmt.Sprintf(toggleSQL, marker, marker)
	tag, err := q.Exec(ctx, sql, postID, parentID)
	if err != nil {
		return false, postgres.MapError(err, marker, postID)
	}

	return tag.RowsAffected() == 1, nil
}

// MarkViewed records a read marker for the viewer. Repeated views are no-ops.
func (r *Repo) MarkViewed(ctx context.Context, postID int64, viewerID string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("pview").
		Columns("post_id", "parent_id").
		Values(postID, viewerID).
		Suffix("ON CONFLICT (post_id, parent_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert view: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "pview", postID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func summarySelect() squirrel.SelectBuilder {
	return postgres.Builder.
		Select(
			"p.post_id",
			"p.photo_id",
			"p.title",
			"par.nickname",
			"par.photo_id",
			"(SELECT COUNT(*) FROM pheart h WHERE h.post_id = p.post_id)",
			"(SELECT COUNT(*) FROM pcomment c WHERE c.post_id = p.post_id AND c.delete_time IS NULL)",
			"p.content",
		).
		From(table + " p").
		Join("parent par ON par.parent_id = p.parent_id").
		Where("p.delete_time IS NULL")
}

func (r *Repo) listSummaries(ctx context.Context, sel squirrel.SelectBuilder, id any) ([]domain.ContentSummary, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build summary select: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "post", id)
	}
	defer rows.Close()

	out := []domain.ContentSummary{}
	for rows.Next() {
		var (
			s       domain.ContentSummary
			hearts  int
			comms   int
			content string
		)
		err := rows.Scan(
			&s.PostID,
			&s.PhotoRef,
			&s.Title,
			&s.AuthorName,
			&s.AuthorPhotoRef,
			&hearts,
			&comms,
			&content,
		)
		if err != nil {
			return nil, fmt.Errorf("scan content summary: %w", err)
		}
		s.HeartCount = &hearts
		s.CommentCount = &comms
		s.Excerpt = &content
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "post", id)
	}

	return out, nil
}

func (r *Repo) count(ctx context.Context, sel squirrel.SelectBuilder) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := sel.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count select: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, postgres.MapError(err, "post", "count")
	}

	return total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (domain.Post, error) {
	var p domain.Post
	err := row.Scan(
		&p.ID,
		&p.ParentID,
		&p.Reveal,
		&p.Title,
		&p.Content,
		&p.PhotoRef,
		&p.HashList,
		&p.CreateTime,
		&p.ModifyTime,
		&p.DeleteTime,
	)
	if err != nil {
		return domain.Post{}, err
	}
	return p, nil
}

func collectPosts(rows pgx.Rows) ([]domain.Post, error) {
	out := []domain.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func joinColumns() string {
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}

// escapeLike neutralizes LIKE wildcards in user input.
func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
