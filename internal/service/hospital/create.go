package hospital

import (
	"context"
	"fmt"
	"log/slog"

	hospitaldb "github.com/nestling-app/nestling-backend/internal/adapter/postgres/hospital"
	"github.com/nestling-app/nestling-backend/internal/domain"
)

// Create stores a new visit record on a maternity diary owned by the
// requester. The observation set is encoded strictly: input containing a
// reserved separator is rejected rather than written corrupted.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.HospitalRecord, error) {
	parentID, err := requesterFromCtx(ctx)
	if err != nil {
		return domain.HospitalRecord{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.HospitalRecord{}, err
	}

	diary, err := s.ownedDiary(ctx, input.DiaryID, parentID)
	if err != nil {
		return domain.HospitalRecord{}, fmt.Errorf("get diary: %w", err)
	}
	if !diary.IsMaternity() {
		return domain.HospitalRecord{}, domain.NewValidationError("diary_id", "not a maternity diary")
	}

	special, err := s.codec.Encode(input.Observations)
	if err != nil {
		return domain.HospitalRecord{}, err
	}

	// The pre-check reports the common duplicate before the insert. It
	// does not serialize anything at Read Committed: when two requests
	// race past it, the partial unique index on (diary_id, day) rejects
	// the second insert, and the unique violation maps to the same
	// conflict error.
	visit := s.now()
	var stored hospitaldb.Record
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		exists, err := s.records.ExistsOnDate(txCtx, diary.ID, visit)
		if err != nil {
			return fmt.Errorf("check visit date: %w", err)
		}
		if exists {
			return fmt.Errorf("record for diary %d on %s: %w",
				diary.ID, visit.Format("2006-01-02"), domain.ErrAlreadyExists)
		}

		stored, err = s.records.Create(txCtx, domain.HospitalRecord{
			DiaryID:    diary.ID,
			BabyID:     diary.BabyID,
			ParentKG:   input.ParentKG,
			BloodPress: input.BloodPress,
			BabyKG:     input.BabyKG,
			BabyCM:     input.BabyCM,
			NextVisit:  input.NextVisit,
			CreateTime: visit,
		}, special)
		if err != nil {
			return fmt.Errorf("create hospital record: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.HospitalRecord{}, err
	}

	s.log.InfoContext(ctx, "hospital record created",
		slog.String("parent_id", parentID),
		slog.Int64("diary_id", diary.ID),
		slog.Int64("hospital_id", stored.Rec.ID),
	)

	return s.decodeRecord(ctx, stored), nil
}
