// Package hospital implements maternity-checkup records: per-visit
// entries attached to a maternity diary, with fixed measurements and a
// free-form observation set stored as an encoded text blob.
package hospital

import (
	"context"
	"log/slog"
	"time"

	hospitaldb "github.com/nestling-app/nestling-backend/internal/adapter/postgres/hospital"
	"github.com/nestling-app/nestling-backend/internal/domain"
	"github.com/nestling-app/nestling-backend/pkg/ctxutil"
)

type recordRepo interface {
	GetDiary(ctx context.Context, diaryID int64) (domain.Diary, error)
	GetDiaryByRecord(ctx context.Context, hospitalID int64) (domain.Diary, error)
	Create(ctx context.Context, rec domain.HospitalRecord, special string) (hospitaldb.Record, error)
	GetByID(ctx context.Context, id int64) (hospitaldb.Record, error)
	ListByDiary(ctx context.Context, diaryID int64) ([]hospitaldb.Record, error)
	ListByDiaryRange(ctx context.Context, diaryID int64, start, end time.Time) ([]hospitaldb.Record, error)
	ExistsOnDate(ctx context.Context, diaryID int64, day time.Time) (bool, error)
	Update(ctx context.Context, rec domain.HospitalRecord, special string) (hospitaldb.Record, error)
	SoftDelete(ctx context.Context, id int64) error
}

// txManager defines the transaction manager interface needed by the hospital service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service handles hospital-record operations. It owns the observation
// codec: writes encode strictly, reads decode tolerantly.
type Service struct {
	records recordRepo
	tx      txManager
	codec   domain.ObservationCodec
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new Hospital service.
func NewService(log *slog.Logger, records recordRepo, tx txManager) *Service {
	return &Service{
		records: records,
		tx:      tx,
		codec:   domain.DefaultObservationCodec,
		log:     log.With("service", "hospital"),
		now:     time.Now,
	}
}

func requesterFromCtx(ctx context.Context) (string, error) {
	parentID, ok := ctxutil.ParentIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	return parentID, nil
}

// decodeRecord maps a stored row to its domain form. Malformed observation
// blobs are replaced with an empty set and logged: an unreadable note must
// not make the visit entry itself unreadable.
func (s *Service) decodeRecord(ctx context.Context, stored hospitaldb.Record) domain.HospitalRecord {
	rec := stored.Rec
	set, err := s.codec.Decode(stored.Special)
	if err != nil {
		s.log.WarnContext(ctx, "malformed observation blob",
			slog.Int64("hospital_id", rec.ID),
			slog.Any("error", err),
		)
		set = domain.ObservationSet{}
	}
	rec.Observations = set
	return rec
}

func (s *Service) decodeRecords(ctx context.Context, stored []hospitaldb.Record) []domain.HospitalRecord {
	out := make([]domain.HospitalRecord, len(stored))
	for i, r := range stored {
		out[i] = s.decodeRecord(ctx, r)
	}
	return out
}

// ownedDiary loads the diary and verifies the requester owns it. A diary
// owned by someone else reports not-found, not forbidden.
func (s *Service) ownedDiary(ctx context.Context, diaryID int64, parentID string) (domain.Diary, error) {
	diary, err := s.records.GetDiary(ctx, diaryID)
	if err != nil {
		return domain.Diary{}, err
	}
	if diary.ParentID != parentID {
		return domain.Diary{}, domain.ErrNotFound
	}
	return diary, nil
}

// ownedDiaryByRecord resolves the diary behind a hospital record and
// verifies ownership.
func (s *Service) ownedDiaryByRecord(ctx context.Context, hospitalID int64, parentID string) (domain.Diary, error) {
	diary, err := s.records.GetDiaryByRecord(ctx, hospitalID)
	if err != nil {
		return domain.Diary{}, err
	}
	if diary.ParentID != parentID {
		return domain.Diary{}, domain.ErrNotFound
	}
	return diary, nil
}
