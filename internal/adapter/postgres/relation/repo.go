// Package relation implements the parent relation graph repository using
// PostgreSQL: mate links (ppconnect) and confirmed friend edges (pfriend).
package relation

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/nestling-app/nestling-backend/internal/adapter/postgres"
)

// Repo provides relation graph persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new relation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListMateIDs returns the ids of every parent linked to parentID through a
// mate link. Links are stored once per pair, so both columns are checked.
func (r *Repo) ListMateIDs(ctx context.Context, parentID string) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select().
		Column(squirrel.Expr(
			"CASE WHEN parent_id_1 = ? THEN parent_id_2 ELSE parent_id_1 END", parentID)).
		From("ppconnect").
		Where(squirrel.Or{
			squirrel.Eq{"parent_id_1": parentID},
			squirrel.Eq{"parent_id_2": parentID},
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select mates: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "ppconnect", parentID)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan mate id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "ppconnect", parentID)
	}

	return ids, nil
}

// ListFriendIDs returns the ids of every confirmed friend of parentID.
func (r *Repo) ListFriendIDs(ctx context.Context, parentID string) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select("friend_id").
		From("pfriend").
		Where(squirrel.Eq{"parent_id": parentID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select friends: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "pfriend", parentID)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan friend id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "pfriend", parentID)
	}

	return ids, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateMateLink links two parents as mates. The pair is stored once;
// a duplicate link maps to domain.ErrAlreadyExists.
func (r *Repo) CreateMateLink(ctx context.Context, parentID1, parentID2 string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("ppconnect").
		Columns("parent_id_1", "parent_id_2").
		Values(parentID1, parentID2).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert mate link: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "ppconnect", parentID1)
	}
	return nil
}

// CreateFriend records a confirmed friend edge from parentID to friendID.
func (r *Repo) CreateFriend(ctx context.Context, parentID, friendID string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("pfriend").
		Columns("parent_id", "friend_id").
		Values(parentID, friendID).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert friend: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "pfriend", parentID)
	}
	return nil
}

// DeleteFriend removes a friend edge. Missing edges are not an error.
func (r *Repo) DeleteFriend(ctx context.Context, parentID, friendID string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Delete("pfriend").
		Where(squirrel.Eq{"parent_id": parentID, "friend_id": friendID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete friend: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "pfriend", parentID)
	}
	return nil
}
