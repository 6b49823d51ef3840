package maintenance

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/gearguard-backend/internal/domain"
)

// CreateInput holds the parameters for recording a maintenance event.
type CreateInput struct {
	EquipmentID uuid.UUID
	Type        domain.MaintenanceType
	Description string
	Cost        *float64
	Date        time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.EquipmentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "equipmentId", Message: "required"})
	}

	if i.Type == "" {
		errs = append(errs, domain.FieldError{Field: "type", Message: "required"})
	} else if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid value"})
	}

	desc := strings.TrimSpace(i.Description)
	if desc == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	} else if utf8.RuneCountInString(desc) > domain.MaxMaintenanceDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 1000 characters"})
	}

	if i.Cost != nil {
		switch c := *i.Cost; {
		case c <= 0:
			errs = append(errs, domain.FieldError{Field: "cost", Message: "must be positive"})
		case c >= domain.MaxMaintenanceCost:
			errs = append(errs, domain.FieldError{Field: "cost", Message: "too large"})
		case fractionDigits(c) > domain.MaintenanceCostDecimals:
			errs = append(errs, domain.FieldError{Field: "cost", Message: "at most 2 decimal places"})
		}
	}

	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// fractionDigits counts the digits after the point in the shortest decimal
// form of f, which is the form the client sent for any JSON number that
// fits a float64 exactly enough to round-trip.
func fractionDigits(f float64) int {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		return len(s) - dot - 1
	}
	return 0
}

// ListInput holds the optional listing filters. Dates are inclusive.
type ListInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      *domain.MaintenanceType
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid value"})
	}
	if i.StartDate != nil && i.EndDate != nil && i.StartDate.After(*i.EndDate) {
		errs = append(errs, domain.FieldError{Field: "startDate", Message: "must not be after endDate"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
