package client

import (
	"encoding/json"
	"time"
)

// User is the public profile of an account.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Equipment is a tracked asset as returned by the API.
type Equipment struct {
	ID              string           `json:"id"`
	UserID          string           `json:"userId"`
	Name            string           `json:"name"`
	Category        string           `json:"category"`
	PurchaseDate    *time.Time       `json:"purchaseDate"`
	LastMaintenance *time.Time       `json:"lastMaintenance"`
	NextMaintenance *time.Time       `json:"nextMaintenance"`
	Status          string           `json:"status"`
	Notes           *string          `json:"notes"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
	MaintenanceLogs []MaintenanceLog `json:"maintenanceLogs"`
}

// UpcomingEquipment is an Equipment annotated with days until its next maintenance.
type UpcomingEquipment struct {
	Equipment
	DaysUntil *int `json:"daysUntil"`
}

// EquipmentSummary is the equipment excerpt attached to owner-wide log listings.
type EquipmentSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// MaintenanceLog is one recorded maintenance event.
type MaintenanceLog struct {
	ID          string            `json:"id"`
	EquipmentID string            `json:"equipmentId"`
	Type        string            `json:"type"`
	Description string            `json:"description"`
	Cost        *float64          `json:"cost"`
	Date        time.Time         `json:"date"`
	CreatedAt   time.Time         `json:"createdAt"`
	Equipment   *EquipmentSummary `json:"equipment,omitempty"`
}

// CreateEquipmentInput is the body of POST /equipment.
type CreateEquipmentInput struct {
	Name            string     `json:"name"`
	Category        string     `json:"category"`
	PurchaseDate    *time.Time `json:"purchaseDate,omitempty"`
	NextMaintenance *time.Time `json:"nextMaintenance,omitempty"`
	Status          string     `json:"status,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
}

// UpdateEquipmentInput is a partial update. Nil pointers are omitted;
// fields named in Clear are sent as explicit nulls.
type UpdateEquipmentInput struct {
	Name            *string
	Category        *string
	PurchaseDate    *time.Time
	LastMaintenance *time.Time
	NextMaintenance *time.Time
	Status          *string
	Notes           *string

	// Clear lists nullable fields to reset: purchaseDate, lastMaintenance,
	// nextMaintenance, notes.
	Clear []string
}

// MarshalJSON encodes only the fields that are set or cleared.
func (in UpdateEquipmentInput) MarshalJSON() ([]byte, error) {
	m := make(map[string]any)
	for _, f := range in.Clear {
		m[f] = nil
	}
	put := func(key string, set bool, v any) {
		if set {
			m[key] = v
		}
	}
	put("name", in.Name != nil, in.Name)
	put("category", in.Category != nil, in.Category)
	put("purchaseDate", in.PurchaseDate != nil, in.PurchaseDate)
	put("lastMaintenance", in.LastMaintenance != nil, in.LastMaintenance)
	put("nextMaintenance", in.NextMaintenance != nil, in.NextMaintenance)
	put("status", in.Status != nil, in.Status)
	put("notes", in.Notes != nil, in.Notes)
	return json.Marshal(m)
}

// EquipmentFilter narrows GET /equipment.
type EquipmentFilter struct {
	Category string
	Status   string
}

// CreateLogInput is the body of POST /maintenance.
type CreateLogInput struct {
	EquipmentID string    `json:"equipmentId"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Cost        *float64  `json:"cost,omitempty"`
	Date        time.Time `json:"date"`
}

// LogFilter narrows GET /maintenance. Dates are inclusive.
type LogFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      string
}

type authResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}
