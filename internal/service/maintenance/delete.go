package maintenance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/gearguard-backend/internal/domain"
	"github.com/heartmarshall/gearguard-backend/pkg/ctxutil"
)

// Delete removes an owned log. If it was the equipment's last maintenance,
// the date falls back to the latest remaining log, or null when none remain.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	var equipmentID uuid.UUID
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		log, err := s.logs.GetByID(txCtx, userID, id)
		if err != nil {
			return fmt.Errorf("get log: %w", err)
		}
		equipmentID = log.EquipmentID

		eq, err := s.equipment.GetForUpdate(txCtx, userID, log.EquipmentID)
		if err != nil {
			return fmt.Errorf("lock equipment: %w", err)
		}

		if err := s.logs.Delete(txCtx, userID, id); err != nil {
			return fmt.Errorf("delete log: %w", err)
		}

		if eq.LastMaintenance == nil || !eq.LastMaintenance.Equal(log.Date) {
			return nil
		}

		latest, err := s.logs.LatestDate(txCtx, userID, log.EquipmentID)
		if err != nil {
			return fmt.Errorf("latest log date: %w", err)
		}
		if err := s.equipment.SetLastMaintenance(txCtx, userID, log.EquipmentID, latest); err != nil {
			return fmt.Errorf("set last maintenance: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete maintenance log: %w", err)
	}

	s.log.InfoContext(ctx, "maintenance log deleted",
		slog.String("user_id", userID.String()),
		slog.String("equipment_id", equipmentID.String()),
		slog.String("log_id", id.String()),
	)

	return nil
}
