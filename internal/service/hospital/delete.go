package hospital

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nestling-app/nestling-backend/internal/domain"
)

// Delete soft-deletes a visit record owned by the requester.
func (s *Service) Delete(ctx context.Context, id int64) error {
	parentID, err := requesterFromCtx(ctx)
	if err != nil {
		return err
	}
	if id <= 0 {
		return domain.NewValidationError("id", "required")
	}

	if _, err := s.ownedDiaryByRecord(ctx, id, parentID); err != nil {
		return fmt.Errorf("resolve diary: %w", err)
	}

	if err := s.records.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete hospital record: %w", err)
	}

	s.log.InfoContext(ctx, "hospital record deleted",
		slog.String("parent_id", parentID),
		slog.Int64("hospital_id", id),
	)

	return nil
}
