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

// Update applies a partial update. An update with no fields returns the
// current record unchanged.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Equipment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	patch := normalizePatch(input.Patch)
	if patch.IsEmpty() {
		eq, err := s.equipment.GetByID(ctx, userID, input.ID)
		if err != nil {
			return nil, fmt.Errorf("get equipment: %w", err)
		}
		return eq, nil
	}

	eq, err := s.equipment.Update(ctx, userID, input.ID, patch)
	if err != nil {
		return nil, fmt.Errorf("update equipment: %w", err)
	}

	s.log.InfoContext(ctx, "equipment updated",
		slog.String("user_id", userID.String()),
		slog.String("equipment_id", eq.ID.String()),
	)

	return eq, nil
}

// Delete removes one of the current user's equipment together with its logs.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.equipment.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete equipment: %w", err)
	}

	s.log.InfoContext(ctx, "equipment deleted",
		slog.String("user_id", userID.String()),
		slog.String("equipment_id", id.String()),
	)

	return nil
}

// normalizePatch trims text fields; notes that trim to empty become null.
func normalizePatch(p domain.EquipmentPatch) domain.EquipmentPatch {
	if p.Name.Value != nil {
		p.Name = domain.SetTo(strings.TrimSpace(*p.Name.Value))
	}
	if p.Category.Value != nil {
		p.Category = domain.SetTo(strings.TrimSpace(*p.Category.Value))
	}
	if p.Notes.Set {
		p.Notes = domain.Patch[string]{Set: true, Value: domain.TrimOrNil(p.Notes.Value)}
	}
	return p
}
