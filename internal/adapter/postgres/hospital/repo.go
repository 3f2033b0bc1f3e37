// Package hospital implements the maternity-record repository using
// PostgreSQL. The free-form observation column travels through this layer
// still encoded; the service layer owns the codec.
package hospital

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

const table = "hospital"

var columns = []string{
	"hospital_id", "diary_id", "baby_id", "parent_kg", "bpressure",
	"baby_kg", "baby_cm", "special", "next_day", "create_time",
	"modify_time", "delete_time",
}

// Record is a hospital row with the observation blob still encoded.
type Record struct {
	Rec     domain.HospitalRecord
	Special string
}

// Repo provides hospital record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new hospital repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Diary lookups (ownership checks)
// ---------------------------------------------------------------------------

// GetDiary returns a live diary by id.
func (r *Repo) GetDiary(ctx context.Context, diaryID int64) (domain.Diary, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select("diary_id", "parent_id", "baby_id", "born", "create_time", "delete_time").
		From("diary").
		Where(squirrel.Eq{"diary_id": diaryID}).
		Where("delete_time IS NULL").
		ToSql()
	if err != nil {
		return domain.Diary{}, fmt.Errorf("build select diary: %w", err)
	}

	d, err := scanDiary(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Diary{}, postgres.MapError(err, "diary", diaryID)
	}

	return d, nil
}

// GetDiaryByRecord returns the live diary that owns a hospital record,
// whether or not the record itself is deleted.
func (r *Repo) GetDiaryByRecord(ctx context.Context, hospitalID int64) (domain.Diary, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select("d.diary_id", "d.parent_id", "d.baby_id", "d.born", "d.create_time", "d.delete_time").
		From("diary d").
		Join("hospital h ON h.diary_id = d.diary_id").
		Where(squirrel.Eq{"h.hospital_id": hospitalID}).
		Where("d.delete_time IS NULL").
		ToSql()
	if err != nil {
		return domain.Diary{}, fmt.Errorf("build select diary by record: %w", err)
	}

	d, err := scanDiary(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Diary{}, postgres.MapError(err, "diary", hospitalID)
	}

	return d, nil
}

// CreateDiary inserts a diary. Exercised by account setup and tests.
func (r *Repo) CreateDiary(ctx context.Context, d domain.Diary) (domain.Diary, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("diary").
		Columns("parent_id", "baby_id", "born").
		Values(d.ParentID, d.BabyID, d.Born).
		Suffix("RETURNING diary_id, parent_id, baby_id, born, create_time, delete_time").
		ToSql()
	if err != nil {
		return domain.Diary{}, fmt.Errorf("build insert diary: %w", err)
	}

	created, err := scanDiary(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Diary{}, postgres.MapError(err, "diary", d.ParentID)
	}

	return created, nil
}

// ---------------------------------------------------------------------------
// Record operations
// ---------------------------------------------------------------------------

// Create inserts a hospital record. The caller provides the already-encoded
// observation blob and the visit date as CreateTime.
func (r *Repo) Create(ctx context.Context, rec domain.HospitalRecord, special string) (Record, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert(table).
		Columns("diary_id", "baby_id", "parent_kg", "bpressure", "baby_kg",
			"baby_cm", "special", "next_day", "create_time").
		Values(rec.DiaryID, rec.BabyID, rec.ParentKG, rec.BloodPress,
			rec.BabyKG, rec.BabyCM, special, rec.NextVisit, rec.CreateTime).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return Record{}, fmt.Errorf("build insert hospital: %w", err)
	}

	created, err := scanRecord(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return Record{}, postgres.MapError(err, "hospital", rec.DiaryID)
	}

	return created, nil
}

// GetByID returns a live hospital record by id.
func (r *Repo) GetByID(ctx context.Context, id int64) (Record, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"hospital_id": id}).
		Where("delete_time IS NULL").
		ToSql()
	if err != nil {
		return Record{}, fmt.Errorf("build select hospital: %w", err)
	}

	rec, err := scanRecord(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return Record{}, postgres.MapError(err, "hospital", id)
	}

	return rec, nil
}

// ListByDiary returns all live records of a diary, oldest first.
func (r *Repo) ListByDiary(ctx context.Context, diaryID int64) ([]Record, error) {
	sel := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"diary_id": diaryID}).
		Where("delete_time IS NULL").
		OrderBy("create_time ASC", "hospital_id ASC")

	return r.list(ctx, sel, diaryID)
}

// ListByDiaryRange returns live records of a diary whose visit date falls in
// [start, end], newest first.
func (r *Repo) ListByDiaryRange(ctx context.Context, diaryID int64, start, end time.Time) ([]Record, error) {
	sel := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"diary_id": diaryID}).
		Where("delete_time IS NULL").
		Where(squirrel.Expr("create_time::date >= ?::date", start)).
		Where(squirrel.Expr("create_time::date <= ?::date", end)).
		OrderBy("create_time DESC", "hospital_id DESC")

	return r.list(ctx, sel, diaryID)
}

// ExistsOnDate reports whether a diary already has a live record on the
// given UTC calendar day. The day expression matches the partial unique
// index hospital_diary_day_uniq, so the check and the constraint agree on
// where one day ends and the next begins.
func (r *Repo) ExistsOnDate(ctx context.Context, diaryID int64, day time.Time) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select().
		Column(squirrel.Expr(
			"EXISTS(SELECT 1 FROM hospital"+
				" WHERE diary_id = ?"+
				" AND (create_time AT TIME ZONE 'UTC')::date = (?::timestamptz AT TIME ZONE 'UTC')::date"+
				" AND delete_time IS NULL)",
			diaryID, day)).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists hospital: %w", err)
	}

	var exists bool
	if err := q.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "hospital", diaryID)
	}

	return exists, nil
}

// Update rewrites the mutable fields of a record and stamps modify_time.
func (r *Repo) Update(ctx context.Context, rec domain.HospitalRecord, special string) (Record, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Update(table).
		Set("parent_kg", rec.ParentKG).
		Set("bpressure", rec.BloodPress).
		Set("baby_kg", rec.BabyKG).
		Set("baby_cm", rec.BabyCM).
		Set("special", special).
		Set("next_day", rec.NextVisit).
		Set("modify_time", squirrel.Expr("now()")).
		Where(squirrel.Eq{"hospital_id": rec.ID}).
		Where("delete_time IS NULL").
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return Record{}, fmt.Errorf("build update hospital: %w", err)
	}

	updated, err := scanRecord(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return Record{}, postgres.MapError(err, "hospital", rec.ID)
	}

	return updated, nil
}

// SoftDelete marks a record deleted. Already-deleted records map to
// domain.ErrNotFound.
func (r *Repo) SoftDelete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Update(table).
		Set("delete_time", squirrel.Expr("now()")).
		Where(squirrel.Eq{"hospital_id": id}).
		Where("delete_time IS NULL").
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete hospital: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "hospital", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "hospital", id)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) list(ctx context.Context, sel squirrel.SelectBuilder, id any) ([]Record, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list hospital: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "hospital", id)
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan hospital record: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "hospital", id)
	}

	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var rec Record
	err := row.Scan(
		&rec.Rec.ID,
		&rec.Rec.DiaryID,
		&rec.Rec.BabyID,
		&rec.Rec.ParentKG,
		&rec.Rec.BloodPress,
		&rec.Rec.BabyKG,
		&rec.Rec.BabyCM,
		&rec.Special,
		&rec.Rec.NextVisit,
		&rec.Rec.CreateTime,
		&rec.Rec.ModifyTime,
		&rec.Rec.DeleteTime,
	)
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

func scanDiary(row rowScanner) (domain.Diary, error) {
	var d domain.Diary
	err := row.Scan(
		&d.ID,
		&d.ParentID,
		&d.BabyID,
		&d.Born,
		&d.CreateTime,
		&d.DeleteTime,
	)
	if err != nil {
		return domain.Diary{}, err
	}
	return d, nil
}

func joinColumns() string {
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}
