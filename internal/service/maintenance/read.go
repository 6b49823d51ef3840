package maintenance

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/gearguard-backend/internal/domain"
	"github.com/heartmarshall/gearguard-backend/pkg/ctxutil"
)

// List returns the current user's logs across all equipment, newest first,
// each with its equipment summary.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.MaintenanceLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	logs, err := s.logs.List(ctx, userID, domain.MaintenanceFilter{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Type:      input.Type,
	})
	if err != nil {
		return nil, fmt.Errorf("list maintenance logs: %w", err)
	}
	return logs, nil
}

// ListByEquipment returns all logs of one owned equipment, newest first.
func (s *Service) ListByEquipment(ctx context.Context, equipmentID uuid.UUID) ([]domain.MaintenanceLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.equipment.GetByID(ctx, userID, equipmentID); err != nil {
		return nil, fmt.Errorf("get equipment: %w", err)
	}

	logs, err := s.logs.ListByEquipment(ctx, userID, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("list equipment logs: %w", err)
	}
	return logs, nil
}
