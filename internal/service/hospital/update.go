package hospital

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nestling-app/nestling-backend/internal/domain"
)

// Update applies the present fields of input onto the stored record.
// Absent fields keep their stored values, including the observation blob,
// which passes through untouched unless a replacement set is given.
func (s *Service) Update(ctx context.Context, input UpdateInput) (domain.HospitalRecord, error) {
	parentID, err := requesterFromCtx(ctx)
	if err != nil {
		return domain.HospitalRecord{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.HospitalRecord{}, err
	}

	if _, err := s.ownedDiaryByRecord(ctx, input.ID, parentID); err != nil {
		return domain.HospitalRecord{}, fmt.Errorf("resolve diary: %w", err)
	}

	existing, err := s.records.GetByID(ctx, input.ID)
	if err != nil {
		return domain.HospitalRecord{}, fmt.Errorf("get hospital record: %w", err)
	}

	rec := existing.Rec
	special := existing.Special

	if input.ParentKG != nil {
		rec.ParentKG = input.ParentKG
	}
	if input.BloodPress != nil {
		rec.BloodPress = input.BloodPress
	}
	if input.BabyKG != nil {
		rec.BabyKG = input.BabyKG
	}
	if input.BabyCM != nil {
		rec.BabyCM = input.BabyCM
	}
	if input.NextVisit != nil {
		rec.NextVisit = input.NextVisit
	}
	if input.Observations != nil {
		special, err = s.codec.Encode(*input.Observations)
		if err != nil {
			return domain.HospitalRecord{}, err
		}
	}

	stored, err := s.records.Update(ctx, rec, special)
	if err != nil {
		return domain.HospitalRecord{}, fmt.Errorf("update hospital record: %w", err)
	}

	s.log.InfoContext(ctx, "hospital record updated",
		slog.String("parent_id", parentID),
		slog.Int64("hospital_id", stored.Rec.ID),
	)

	return s.decodeRecord(ctx, stored), nil
}
