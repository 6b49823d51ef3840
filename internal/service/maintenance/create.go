package maintenance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/gearguard-backend/internal/domain"
	"github.com/heartmarshall/gearguard-backend/pkg/ctxutil"
)

// Create records a maintenance event and moves the equipment's last
// maintenance date to it, atomically.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.MaintenanceLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	date := input.Date.UTC()
	var created *domain.MaintenanceLog

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.equipment.GetForUpdate(txCtx, userID, input.EquipmentID); err != nil {
			return fmt.Errorf("lock equipment: %w", err)
		}

		var err error
		created, err = s.logs.Create(txCtx, &domain.MaintenanceLog{
			ID:          uuid.New(),
			EquipmentID: input.EquipmentID,
			Type:        input.Type,
			Description: strings.TrimSpace(input.Description),
			Cost:        input.Cost,
			Date:        date,
		})
		if err != nil {
			return fmt.Errorf("create log: %w", err)
		}

		if err := s.equipment.SetLastMaintenance(txCtx, userID, input.EquipmentID, &date); err != nil {
			return fmt.Errorf("set last maintenance: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create maintenance log: %w", err)
	}

	s.log.InfoContext(ctx, "maintenance log created",
		slog.String("user_id", userID.String()),
		slog.String("equipment_id", input.EquipmentID.String()),
		slog.String("log_id", created.ID.String()),
		slog.String("type", string(created.Type)),
	)

	return created, nil
}
