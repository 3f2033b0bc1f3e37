package hospital

import (
	"context"
	"fmt"

	"github.com/nestling-app/nestling-backend/internal/domain"
)

// List returns every visit record of a diary owned by the requester,
// oldest first.
func (s *Service) List(ctx context.Context, diaryID int64) ([]domain.HospitalRecord, error) {
	parentID, err := requesterFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if diaryID <= 0 {
		return nil, domain.NewValidationError("diary_id", "required")
	}

	if _, err := s.ownedDiary(ctx, diaryID, parentID); err != nil {
		return nil, fmt.Errorf("get diary: %w", err)
	}

	stored, err := s.records.ListByDiary(ctx, diaryID)
	if err != nil {
		return nil, fmt.Errorf("list hospital records: %w", err)
	}

	return s.decodeRecords(ctx, stored), nil
}

// ListRange returns the visit records of a diary whose visit date falls in
// the inclusive day range, newest first.
func (s *Service) ListRange(ctx context.Context, input ListRangeInput) ([]domain.HospitalRecord, error) {
	parentID, err := requesterFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ownedDiary(ctx, input.DiaryID, parentID); err != nil {
		return nil, fmt.Errorf("get diary: %w", err)
	}

	stored, err := s.records.ListByDiaryRange(ctx, input.DiaryID, input.Start, input.End)
	if err != nil {
		return nil, fmt.Errorf("list hospital records by range: %w", err)
	}

	return s.decodeRecords(ctx, stored), nil
}
