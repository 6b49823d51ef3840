package domain

import (
	"time"

	"github.com/google/uuid"
)

// Field bounds shared by validation and the database schema.
const (
	MaxEquipmentNameLen     = 200
	MaxEquipmentCategoryLen = 100
	MaxEquipmentNotesLen    = 1000
)

// Equipment is a tracked physical asset owned by exactly one user.
type Equipment struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Name            string
	Category        string
	PurchaseDate    *time.Time
	LastMaintenance *time.Time
	NextMaintenance *time.Time
	Status          EquipmentStatus
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// MaintenanceLogs is populated by reads that include logs, newest first.
	MaintenanceLogs []MaintenanceLog
}

// EquipmentSummary is the denormalized equipment view attached to log listings.
type EquipmentSummary struct {
	ID       uuid.UUID
	Name     string
	Category string
}

// EquipmentPatch carries a partial update. Only fields with Set == true are written.
type EquipmentPatch struct {
	Name            Patch[string]
	Category        Patch[string]
	PurchaseDate    Patch[time.Time]
	LastMaintenance Patch[time.Time]
	NextMaintenance Patch[time.Time]
	Status          Patch[EquipmentStatus]
	Notes           Patch[string]
}

// IsEmpty reports whether the patch touches no column.
func (p EquipmentPatch) IsEmpty() bool {
	return !p.Name.Set && !p.Category.Set && !p.PurchaseDate.Set &&
		!p.LastMaintenance.Set && !p.NextMaintenance.Set && !p.Status.Set && !p.Notes.Set
}

// EquipmentFilter narrows an owner's equipment listing.
type EquipmentFilter struct {
	Category *string
	Status   *EquipmentStatus
}
