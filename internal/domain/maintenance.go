package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxMaintenanceDescriptionLen bounds MaintenanceLog.Description.
const MaxMaintenanceDescriptionLen = 1000

// Cost is stored as NUMERIC(12, 2): at most two fractional digits and
// strictly below MaxMaintenanceCost.
const (
	MaxMaintenanceCost      = 1e10
	MaintenanceCostDecimals = 2
)

// MaintenanceLog is an immutable record of one maintenance event.
type MaintenanceLog struct {
	ID          uuid.UUID
	EquipmentID uuid.UUID
	Type        MaintenanceType
	Description string
	Cost        *float64
	Date        time.Time
	CreatedAt   time.Time

	// Equipment is set by owner-wide listings only.
	Equipment *EquipmentSummary
}

// MaintenanceFilter narrows an owner's maintenance log listing.
// StartDate and EndDate are inclusive.
type MaintenanceFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      *MaintenanceType
}
