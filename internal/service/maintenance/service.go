package maintenance

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/gearguard-backend/internal/domain"
)

type logRepo interface {
	Create(ctx context.Context, log *domain.MaintenanceLog) (*domain.MaintenanceLog, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.MaintenanceLog, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.MaintenanceFilter) ([]domain.MaintenanceLog, error)
	ListByEquipment(ctx context.Context, userID, equipmentID uuid.UUID) ([]domain.MaintenanceLog, error)
	LatestDate(ctx context.Context, userID, equipmentID uuid.UUID) (*time.Time, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type equipmentRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Equipment, error)
	GetForUpdate(ctx context.Context, userID, id uuid.UUID) (*domain.Equipment, error)
	SetLastMaintenance(ctx context.Context, userID, id uuid.UUID, at *time.Time) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service records and queries maintenance logs for the authenticated user.
type Service struct {
	logs      logRepo
	equipment equipmentRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Maintenance service.
func NewService(
	log *slog.Logger,
	logs logRepo,
	equipment equipmentRepo,
	tx txManager,
) *Service {
	return &Service{
		logs:      logs,
		equipment: equipment,
		tx:        tx,
		log:       log.With("service", "maintenance"),
	}
}
