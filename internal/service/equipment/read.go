package equipment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/gearguard-backend/internal/dashboard"
	"github.com/heartmarshall/gearguard-backend/internal/domain"
	"github.com/heartmarshall/gearguard-backend/pkg/ctxutil"
)

// List returns the current user's equipment, newest first, each with its
// RecentLogsPerItem most recent maintenance logs.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Equipment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	items, err := s.equipment.List(ctx, userID, domain.EquipmentFilter{
		Category: input.Category,
		Status:   input.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	if len(items) == 0 {
		return items, nil
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, eq := range items {
		ids = append(ids, eq.ID)
	}

	recent, err := s.logs.ListRecent(ctx, userID, ids, RecentLogsPerItem)
	if err != nil {
		return nil, fmt.Errorf("list recent logs: %w", err)
	}

	for i := range items {
		logs := recent[items[i].ID]
		if logs == nil {
			logs = []domain.MaintenanceLog{}
		}
		items[i].MaintenanceLogs = logs
	}

	return items, nil
}

// Get returns one of the current user's equipment with its full log history.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Equipment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	eq, err := s.equipment.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get equipment: %w", err)
	}

	logs, err := s.logs.ListByEquipment(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("list equipment logs: %w", err)
	}
	eq.MaintenanceLogs = logs

	return eq, nil
}

// ListUpcoming returns up to UpcomingLimit records with a scheduled next
// maintenance, soonest first, annotated with days until due.
func (s *Service) ListUpcoming(ctx context.Context) ([]dashboard.UpcomingItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	items, err := s.equipment.ListUpcoming(ctx, userID, UpcomingLimit)
	if err != nil {
		return nil, fmt.Errorf("list upcoming equipment: %w", err)
	}

	return dashboard.Annotate(items, s.now()), nil
}
