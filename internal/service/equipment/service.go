package equipment

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/gearguard-backend/internal/domain"
)

const (
	// RecentLogsPerItem is how many logs each equipment carries in list responses.
	RecentLogsPerItem = 3
	// UpcomingLimit caps the upcoming-maintenance listing.
	UpcomingLimit = 10
)

type equipmentRepo interface {
	Create(ctx context.Context, eq *domain.Equipment) (*domain.Equipment, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Equipment, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.EquipmentFilter) ([]domain.Equipment, error)
	ListUpcoming(ctx context.Context, userID uuid.UUID, limit uint64) ([]domain.Equipment, error)
	Update(ctx context.Context, userID, id uuid.UUID, patch domain.EquipmentPatch) (*domain.Equipment, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type logRepo interface {
	ListByEquipment(ctx context.Context, userID, equipmentID uuid.UUID) ([]domain.MaintenanceLog, error)
	ListRecent(ctx context.Context, userID uuid.UUID, equipmentIDs []uuid.UUID, perEquipment int) (map[uuid.UUID][]domain.MaintenanceLog, error)
}

// Service provides equipment management operations for the authenticated user.
type Service struct {
	equipment equipmentRepo
	logs      logRepo
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new Equipment service.
func NewService(
	log *slog.Logger,
	equipment equipmentRepo,
	logs logRepo,
) *Service {
	return &Service{
		equipment: equipment,
		logs:      logs,
		log:       log.With("service", "equipment"),
		now:       time.Now,
	}
}
