package hospital

import (
	"context"
	"fmt"

	"github.com/nestling-app/nestling-backend/internal/domain"
)

// Get returns one visit record owned by the requester.
func (s *Service) Get(ctx context.Context, id int64) (domain.HospitalRecord, error) {
	parentID, err := requesterFromCtx(ctx)
	if err != nil {
		return domain.HospitalRecord{}, err
	}
	if id <= 0 {
		return domain.HospitalRecord{}, domain.NewValidationError("id", "required")
	}

	if _, err := s.ownedDiaryByRecord(ctx, id, parentID); err != nil {
		return domain.HospitalRecord{}, fmt.Errorf("resolve diary: %w", err)
	}

	stored, err := s.records.GetByID(ctx, id)
	if err != nil {
		return domain.HospitalRecord{}, fmt.Errorf("get hospital record: %w", err)
	}

	return s.decodeRecord(ctx, stored), nil
}
