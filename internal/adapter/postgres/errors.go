package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/gearguard-backend/internal/domain"
)

// SQLSTATE codes MapError understands.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeStringTooLong       = "22001"
	codeNumericOutOfRange   = "22003"
)

// checkFields names the request field behind each CHECK constraint in
// migrations/00001_init.sql.
var checkFields = map[string]string{
	"equipment_status_check":      "status",
	"maintenance_logs_type_check": "type",
	"maintenance_logs_cost_check": "cost",
}

// MapError converts pgx errors into domain errors and prefixes the entity
// name, plus the id when one is known. Context errors are wrapped but keep
// their identity so callers can tell a timeout from a missing row.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	prefix := entity
	if id != uuid.Nil {
		prefix = fmt.Sprintf("%s %s", entity, id)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", prefix, err)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", prefix, err)
	}

	switch pgErr.Code {
	case codeUniqueViolation:
		return fmt.Errorf("%s: %w", prefix, domain.ErrAlreadyExists)
	case codeForeignKeyViolation:
		// The parent row (user or equipment) vanished underneath us.
		return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
	case codeCheckViolation:
		if field, ok := checkFields[pgErr.ConstraintName]; ok {
			return fmt.Errorf("%s: %w", prefix, domain.NewValidationError(field, "invalid value"))
		}
		return fmt.Errorf("%s: %w", prefix, domain.ErrValidation)
	case codeStringTooLong, codeNumericOutOfRange:
		return fmt.Errorf("%s: %w", prefix, domain.ErrValidation)
	}

	return fmt.Errorf("%s: %w", prefix, err)
}
