package equipment

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/gearguard-backend/internal/domain"
)

// CreateInput holds the parameters for creating equipment.
type CreateInput struct {
	Name            string
	Category        string
	PurchaseDate    *time.Time
	NextMaintenance *time.Time
	Status          *domain.EquipmentStatus
	Notes           *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = checkText(errs, "name", i.Name, domain.MaxEquipmentNameLen)
	errs = checkText(errs, "category", i.Category, domain.MaxEquipmentCategoryLen)

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Notes != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Notes)) > domain.MaxEquipmentNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 1000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds optional exact-match filters.
type ListInput struct {
	Category *string
	Status   *domain.EquipmentStatus
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	if i.Status != nil && !i.Status.IsValid() {
		return domain.NewValidationError("status", "invalid value")
	}
	return nil
}

// UpdateInput holds a partial update of one equipment record.
type UpdateInput struct {
	ID    uuid.UUID
	Patch domain.EquipmentPatch
}

// Validate checks all fields and collects all errors.
// Name, category and status may be omitted but not nulled.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}

	p := i.Patch
	if p.Name.IsNull() {
		errs = append(errs, domain.FieldError{Field: "name", Message: "cannot be null"})
	} else if p.Name.Set {
		errs = checkText(errs, "name", *p.Name.Value, domain.MaxEquipmentNameLen)
	}

	if p.Category.IsNull() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "cannot be null"})
	} else if p.Category.Set {
		errs = checkText(errs, "category", *p.Category.Value, domain.MaxEquipmentCategoryLen)
	}

	if p.Status.IsNull() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "cannot be null"})
	} else if p.Status.Set && !p.Status.Value.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}

	if p.Notes.Set && p.Notes.Value != nil &&
		utf8.RuneCountInString(strings.TrimSpace(*p.Notes.Value)) > domain.MaxEquipmentNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 1000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func checkText(errs []domain.FieldError, field, value string, max int) []domain.FieldError {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if utf8.RuneCountInString(trimmed) > max {
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}
