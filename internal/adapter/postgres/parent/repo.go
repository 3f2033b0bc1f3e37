// Package parent implements the Parent repository using PostgreSQL.
package parent

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/nestling-app/nestling-backend/internal/adapter/postgres"
	"github.com/nestling-app/nestling-backend/internal/domain"
)

const table = "parent"

var columns = []string{
	"parent_id", "password", "email", "nickname", "sign_in_method",
	"photo_id", "description",
}

// Repo provides parent account persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new parent repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new parent account and returns the persisted domain.Parent.
func (r *Repo) Create(ctx context.Context, p domain.Parent) (domain.Parent, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(p.ID, p.PasswordHash, p.Email, p.Nickname, p.SignInMethod,
			p.PhotoRef, p.Description).
		Suffix("RETURNING " + selectColumns()).
		ToSql()
	if err != nil {
		return domain.Parent{}, fmt.Errorf("build insert parent: %w", err)
	}

	created, err := scanParent(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Parent{}, postgres.MapError(err, "parent", p.ID)
	}

	return created, nil
}

// UpdateProfile updates the mutable profile fields of a parent.
func (r *Repo) UpdateProfile(ctx context.Context, p domain.Parent) (domain.Parent, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Update(table).
		Set("nickname", p.Nickname).
		Set("photo_id", p.PhotoRef).
		Set("description", p.Description).
		Where(squirrel.Eq{"parent_id": p.ID}).
		Suffix("RETURNING " + selectColumns()).
		ToSql()
	if err != nil {
		return domain.Parent{}, fmt.Errorf("build update parent: %w", err)
	}

	updated, err := scanParent(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Parent{}, postgres.MapError(err, "parent", p.ID)
	}

	return updated, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a parent by primary key.
func (r *Repo) GetByID(ctx context.Context, id string) (domain.Parent, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"parent_id": id}).
		ToSql()
	if err != nil {
		return domain.Parent{}, fmt.Errorf("build select parent: %w", err)
	}

	p, err := scanParent(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Parent{}, postgres.MapError(err, "parent", id)
	}

	return p, nil
}

// GetByEmail returns a parent by email (unique).
func (r *Repo) GetByEmail(ctx context.Context, email string) (domain.Parent, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return domain.Parent{}, fmt.Errorf("build select parent by email: %w", err)
	}

	p, err := scanParent(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Parent{}, postgres.MapError(err, "parent", email)
	}

	return p, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanParent(row rowScanner) (domain.Parent, error) {
	var p domain.Parent
	err := row.Scan(
		&p.ID,
		&p.PasswordHash,
		&p.Email,
		&p.Nickname,
		&p.SignInMethod,
		&p.PhotoRef,
		&p.Description,
	)
	if err != nil {
		return domain.Parent{}, err
	}
	return p, nil
}

func selectColumns() string {
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}
