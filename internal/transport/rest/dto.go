package rest

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/heartmarshall/gearguard-backend/internal/dashboard"
	"github.com/heartmarshall/gearguard-backend/internal/domain"
)

const dateOnly = "2006-01-02"

// parseDate accepts RFC 3339 timestamps and calendar dates (taken as UTC midnight).
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}

// jsonDate decodes a date string in any form parseDate accepts.
// A bad value fails as a *json.UnmarshalTypeError, which the decoder tags
// with the JSON field name so decodeJSON can report it per field.
type jsonDate time.Time

var timeType = reflect.TypeFor[time.Time]()

func (d *jsonDate) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return &json.UnmarshalTypeError{Value: "non-string", Type: timeType}
	}
	t, err := parseDate(s)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "string", Type: timeType}
	}
	*d = jsonDate(t)
	return nil
}

func (d *jsonDate) timePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := time.Time(*d)
	return &t
}

// nullable distinguishes an absent key from an explicit null.
type nullable[T any] struct {
	Set   bool
	Value *T
}

func (n *nullable[T]) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

func toPatch[T any](n nullable[T]) domain.Patch[T] {
	return domain.Patch[T]{Set: n.Set, Value: n.Value}
}

func toDatePatch(n nullable[jsonDate]) domain.Patch[time.Time] {
	return domain.Patch[time.Time]{Set: n.Set, Value: n.Value.timePtr()}
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type authResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

type equipmentResponse struct {
	ID              string                   `json:"id"`
	UserID          string                   `json:"userId"`
	Name            string                   `json:"name"`
	Category        string                   `json:"category"`
	PurchaseDate    *time.Time               `json:"purchaseDate"`
	LastMaintenance *time.Time               `json:"lastMaintenance"`
	NextMaintenance *time.Time               `json:"nextMaintenance"`
	Status          string                   `json:"status"`
	Notes           *string                  `json:"notes"`
	CreatedAt       time.Time                `json:"createdAt"`
	UpdatedAt       time.Time                `json:"updatedAt"`
	MaintenanceLogs []maintenanceLogResponse `json:"maintenanceLogs"`
}

type upcomingResponse struct {
	equipmentResponse
	DaysUntil *int `json:"daysUntil"`
}

type equipmentSummaryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type maintenanceLogResponse struct {
	ID          string                    `json:"id"`
	EquipmentID string                    `json:"equipmentId"`
	Type        string                    `json:"type"`
	Description string                    `json:"description"`
	Cost        *float64                  `json:"cost"`
	Date        time.Time                 `json:"date"`
	CreatedAt   time.Time                 `json:"createdAt"`
	Equipment   *equipmentSummaryResponse `json:"equipment,omitempty"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

func toEquipmentResponse(eq domain.Equipment) equipmentResponse {
	return equipmentResponse{
		ID:              eq.ID.String(),
		UserID:          eq.UserID.String(),
		Name:            eq.Name,
		Category:        eq.Category,
		PurchaseDate:    eq.PurchaseDate,
		LastMaintenance: eq.LastMaintenance,
		NextMaintenance: eq.NextMaintenance,
		Status:          eq.Status.String(),
		Notes:           eq.Notes,
		CreatedAt:       eq.CreatedAt,
		UpdatedAt:       eq.UpdatedAt,
		MaintenanceLogs: toLogResponses(eq.MaintenanceLogs),
	}
}

func toEquipmentResponses(items []domain.Equipment) []equipmentResponse {
	out := make([]equipmentResponse, 0, len(items))
	for _, eq := range items {
		out = append(out, toEquipmentResponse(eq))
	}
	return out
}

func toUpcomingResponses(items []dashboard.UpcomingItem) []upcomingResponse {
	out := make([]upcomingResponse, 0, len(items))
	for _, it := range items {
		out = append(out, upcomingResponse{
			equipmentResponse: toEquipmentResponse(it.Equipment),
			DaysUntil:         it.DaysUntil,
		})
	}
	return out
}

func toLogResponse(l domain.MaintenanceLog) maintenanceLogResponse {
	resp := maintenanceLogResponse{
		ID:          l.ID.String(),
		EquipmentID: l.EquipmentID.String(),
		Type:        l.Type.String(),
		Description: l.Description,
		Cost:        l.Cost,
		Date:        l.Date,
		CreatedAt:   l.CreatedAt,
	}
	if l.Equipment != nil {
		resp.Equipment = &equipmentSummaryResponse{
			ID:       l.Equipment.ID.String(),
			Name:     l.Equipment.Name,
			Category: l.Equipment.Category,
		}
	}
	return resp
}

func toLogResponses(logs []domain.MaintenanceLog) []maintenanceLogResponse {
	out := make([]maintenanceLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, toLogResponse(l))
	}
	return out
}
