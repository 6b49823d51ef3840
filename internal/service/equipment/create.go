package equipment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/gearguard-backend/internal/domain"
	"github.com/heartmarshall/gearguard-backend/pkg/ctxutil"
)

// Create adds an equipment record owned by the current user. Status defaults to GOOD.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Equipment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := domain.EquipmentStatusGood
	if input.Status != nil {
		status = *input.Status
	}

	eq, err := s.equipment.Create(ctx, &domain.Equipment{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            strings.TrimSpace(input.Name),
		Category:        strings.TrimSpace(input.Category),
		PurchaseDate:    input.PurchaseDate,
		NextMaintenance: input.NextMaintenance,
		Status:          status,
		Notes:           domain.TrimOrNil(input.Notes),
	})
	if err != nil {
		return nil, fmt.Errorf("create equipment: %w", err)
	}
	eq.MaintenanceLogs = []domain.MaintenanceLog{}

	s.log.InfoContext(ctx, "equipment created",
		slog.String("user_id", userID.String()),
		slog.String("equipment_id", eq.ID.String()),
	)

	return eq, nil
}
