// Package maintenance implements the MaintenanceLog repository using PostgreSQL.
// Logs carry no owner column; ownership is resolved through the parent equipment row.
package maintenance

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/gearguard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/gearguard-backend/internal/domain"
)

var (
	columns = []string{"l.id", "l.equipment_id", "l.type", "l.description", "l.cost", "l.date", "l.created_at"}

	summaryColumns = []string{"e.id", "e.name", "e.category"}
)

// OwnerScope is the predicate every log query starts from. Queries join
// maintenance_logs l to equipment e.
func OwnerScope(userID uuid.UUID) sq.And {
	return sq.And{sq.Expr("e.user_id = ?", userID)}
}

// ownedLogs selects from logs joined to their equipment.
func ownedLogs(cols ...string) sq.SelectBuilder {
	return postgres.Builder().
		Select(cols...).
		From("maintenance_logs l").
		Join("equipment e ON e.id = l.equipment_id")
}

// Repo provides maintenance log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new maintenance log repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a log. The caller is responsible for verifying that the
// equipment belongs to the acting user.
func (r *Repo) Create(ctx context.Context, log *domain.MaintenanceLog) (*domain.MaintenanceLog, error) {
	query, args, err := postgres.Builder().
		Insert("maintenance_logs AS l").
		Columns("id", "equipment_id", "type", "description", "cost", "date").
		Values(log.ID, log.EquipmentID, string(log.Type), log.Description, log.Cost, log.Date).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert maintenance_log: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...)
	created, err := scanLog(row)
	if err != nil {
		return nil, postgres.MapError(err, "maintenance_log", log.ID)
	}

	return &created, nil
}

// GetByID returns the user's log by id. Logs of foreign equipment are reported as not found.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.MaintenanceLog, error) {
	query, args, err := ownedLogs(columns...).
		Where(append(OwnerScope(userID), sq.Expr("l.id = ?", id))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select maintenance_log: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...)
	log, err := scanLog(row)
	if err != nil {
		return nil, postgres.MapError(err, "maintenance_log", id)
	}

	return &log, nil
}

// List returns the user's logs across all equipment, newest first, each with
// its equipment summary. StartDate and EndDate are inclusive.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.MaintenanceFilter) ([]domain.MaintenanceLog, error) {
	where := OwnerScope(userID)
	if filter.StartDate != nil {
		where = append(where, sq.GtOrEq{"l.date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		where = append(where, sq.LtOrEq{"l.date": *filter.EndDate})
	}
	if filter.Type != nil {
		where = append(where, sq.Eq{"l.type": string(*filter.Type)})
	}

	query, args, err := ownedLogs(append(append([]string{}, columns...), summaryColumns...)...).
		Where(where).
		OrderBy("l.date DESC", "l.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list maintenance_logs: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "maintenance_log", uuid.Nil)
	}
	defer rows.Close()

	result := make([]domain.MaintenanceLog, 0)
	for rows.Next() {
		log, err := scanLogWithSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan maintenance_log: %w", err)
		}
		result = append(result, log)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "maintenance_log", uuid.Nil)
	}

	return result, nil
}

// ListByEquipment returns every log of one of the user's equipment, newest first.
func (r *Repo) ListByEquipment(ctx context.Context, userID, equipmentID uuid.UUID) ([]domain.MaintenanceLog, error) {
	query, args, err := ownedLogs(columns...).
		Where(append(OwnerScope(userID), sq.Expr("l.equipment_id = ?", equipmentID))).
		OrderBy("l.date DESC", "l.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list maintenance_logs by equipment: %w", err)
	}

	return r.collect(ctx, query, args)
}

// ListRecent returns, for each of the given equipment ids, at most perEquipment
// logs ordered newest first. The result is keyed by equipment id.
func (r *Repo) ListRecent(ctx context.Context, userID uuid.UUID, equipmentIDs []uuid.UUID, perEquipment int) (map[uuid.UUID][]domain.MaintenanceLog, error) {
	result := make(map[uuid.UUID][]domain.MaintenanceLog, len(equipmentIDs))
	if len(equipmentIDs) == 0 {
		return result, nil
	}

	ranked := ownedLogs(append(append([]string{}, columns...),
		"row_number() OVER (PARTITION BY l.equipment_id ORDER BY l.date DESC, l.created_at DESC) AS rn")...).
		Where(append(OwnerScope(userID), sq.Expr("l.equipment_id = ANY(?)", equipmentIDs)))

	query, args, err := postgres.Builder().
		Select("id", "equipment_id", "type", "description", "cost", "date", "created_at").
		FromSelect(ranked, "ranked").
		Where(sq.LtOrEq{"rn": perEquipment}).
		OrderBy("equipment_id", "rn").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list recent maintenance_logs: %w", err)
	}

	logs, err := r.collect(ctx, query, args)
	if err != nil {
		return nil, err
	}
	for _, log := range logs {
		result[log.EquipmentID] = append(result[log.EquipmentID], log)
	}

	return result, nil
}

// LatestDate returns the most recent log date of the equipment, or nil when it has no logs.
func (r *Repo) LatestDate(ctx context.Context, userID, equipmentID uuid.UUID) (*time.Time, error) {
	query, args, err := ownedLogs("max(l.date)").
		Where(append(OwnerScope(userID), sq.Expr("l.equipment_id = ?", equipmentID))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build latest maintenance date: %w", err)
	}

	var latest *time.Time
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&latest); err != nil {
		return nil, postgres.MapError(err, "equipment", equipmentID)
	}

	return utcPtr(latest), nil
}

// Delete removes the user's log.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete("maintenance_logs l USING equipment e").
		Where(append(OwnerScope(userID), sq.Expr("e.id = l.equipment_id"), sq.Expr("l.id = ?", id))).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete maintenance_log: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "maintenance_log", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("maintenance_log %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *Repo) collect(ctx context.Context, query string, args []any) ([]domain.MaintenanceLog, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "maintenance_log", uuid.Nil)
	}
	defer rows.Close()

	result := make([]domain.MaintenanceLog, 0)
	for rows.Next() {
		log, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan maintenance_log: %w", err)
		}
		result = append(result, log)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "maintenance_log", uuid.Nil)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLog(row rowScanner) (domain.MaintenanceLog, error) {
	var (
		log domain.MaintenanceLog
		typ string
	)
	if err := row.Scan(&log.ID, &log.EquipmentID, &typ, &log.Description, &log.Cost, &log.Date, &log.CreatedAt); err != nil {
		return domain.MaintenanceLog{}, err
	}
	log.Type = domain.MaintenanceType(typ)
	log.Date = log.Date.UTC()
	log.CreatedAt = log.CreatedAt.UTC()
	return log, nil
}

func scanLogWithSummary(row rowScanner) (domain.MaintenanceLog, error) {
	var (
		log domain.MaintenanceLog
		typ string
		eq  domain.EquipmentSummary
	)
	err := row.Scan(
		&log.ID, &log.EquipmentID, &typ, &log.Description, &log.Cost, &log.Date, &log.CreatedAt,
		&eq.ID, &eq.Name, &eq.Category,
	)
	if err != nil {
		return domain.MaintenanceLog{}, err
	}
	log.Type = domain.MaintenanceType(typ)
	log.Date = log.Date.UTC()
	log.CreatedAt = log.CreatedAt.UTC()
	log.Equipment = &eq
	return log, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
