// Package equipment implements the Equipment repository using PostgreSQL.
// Every statement is scoped to the owning user through OwnerScope.
package equipment

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

const table = "equipment e"

var columns = []string{
	"e.id", "e.user_id", "e.name", "e.category", "e.purchase_date", "e.last_maintenance",
	"e.next_maintenance", "e.status", "e.notes", "e.created_at", "e.updated_at",
}

// OwnerScope is the predicate every equipment query starts from.
func OwnerScope(userID uuid.UUID) sq.And {
	return sq.And{sq.Expr("e.user_id = ?", userID)}
}

// Repo provides equipment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new equipment repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a new equipment row and returns it as stored.
func (r *Repo) Create(ctx context.Context, eq *domain.Equipment) (*domain.Equipment, error) {
	query, args, err := postgres.Builder().
		Insert("equipment AS e").
		Columns("id", "user_id", "name", "category", "purchase_date", "last_maintenance",
			"next_maintenance", "status", "notes").
		Values(eq.ID, eq.UserID, eq.Name, eq.Category, eq.PurchaseDate, eq.LastMaintenance,
			eq.NextMaintenance, string(eq.Status), eq.Notes).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert equipment: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...)
	created, err := scanEquipment(row)
	if err != nil {
		return nil, postgres.MapError(err, "equipment", eq.ID)
	}

	return &created, nil
}

// GetByID returns the user's equipment by id. Foreign rows are reported as not found.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Equipment, error) {
	return r.getOne(ctx, userID, id, false)
}

// GetForUpdate is GetByID with a row lock held until the surrounding transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, userID, id uuid.UUID) (*domain.Equipment, error) {
	return r.getOne(ctx, userID, id, true)
}

// List returns the user's equipment, newest first, narrowed by filter.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.EquipmentFilter) ([]domain.Equipment, error) {
	where := OwnerScope(userID)
	if filter.Category != nil {
		where = append(where, sq.Eq{"e.category": *filter.Category})
	}
	if filter.Status != nil {
		where = append(where, sq.Eq{"e.status": string(*filter.Status)})
	}

	return r.list(ctx, postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("e.created_at DESC"))
}

// ListUpcoming returns up to limit rows with a scheduled next maintenance,
// soonest first.
func (r *Repo) ListUpcoming(ctx context.Context, userID uuid.UUID, limit uint64) ([]domain.Equipment, error) {
	where := append(OwnerScope(userID), sq.NotEq{"e.next_maintenance": nil})

	return r.list(ctx, postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("e.next_maintenance ASC").
		Limit(limit))
}

// Update applies patch to the user's equipment and returns the new state.
// The caller must not pass an empty patch.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, patch domain.EquipmentPatch) (*domain.Equipment, error) {
	b := postgres.Builder().Update(table)

	if patch.Name.Set {
		b = b.Set("name", patch.Name.Value)
	}
	if patch.Category.Set {
		b = b.Set("category", patch.Category.Value)
	}
	if patch.PurchaseDate.Set {
		b = b.Set("purchase_date", patch.PurchaseDate.Value)
	}
	if patch.LastMaintenance.Set {
		b = b.Set("last_maintenance", patch.LastMaintenance.Value)
	}
	if patch.NextMaintenance.Set {
		b = b.Set("next_maintenance", patch.NextMaintenance.Value)
	}
	if patch.Status.Set {
		var status *string
		if patch.Status.Value != nil {
			s := string(*patch.Status.Value)
			status = &s
		}
		b = b.Set("status", status)
	}
	if patch.Notes.Set {
		b = b.Set("notes", patch.Notes.Value)
	}

	query, args, err := b.
		Set("updated_at", sq.Expr("now()")).
		Where(append(OwnerScope(userID), sq.Expr("e.id = ?", id))).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update equipment: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...)
	updated, err := scanEquipment(row)
	if err != nil {
		return nil, postgres.MapError(err, "equipment", id)
	}

	return &updated, nil
}

// SetLastMaintenance overwrites last_maintenance; nil clears it.
func (r *Repo) SetLastMaintenance(ctx context.Context, userID, id uuid.UUID, at *time.Time) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("last_maintenance", at).
		Set("updated_at", sq.Expr("now()")).
		Where(append(OwnerScope(userID), sq.Expr("e.id = ?", id))).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set last_maintenance: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "equipment", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("equipment %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Delete removes the user's equipment. Its maintenance logs go with it (ON DELETE CASCADE).
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(append(OwnerScope(userID), sq.Expr("e.id = ?", id))).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete equipment: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "equipment", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("equipment %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (r *Repo) getOne(ctx context.Context, userID, id uuid.UUID, lock bool) (*domain.Equipment, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(append(OwnerScope(userID), sq.Expr("e.id = ?", id)))
	if lock {
		b = b.Suffix("FOR UPDATE")
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select equipment: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...)
	eq, err := scanEquipment(row)
	if err != nil {
		return nil, postgres.MapError(err, "equipment", id)
	}

	return &eq, nil
}

func (r *Repo) list(ctx context.Context, b sq.SelectBuilder) ([]domain.Equipment, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list equipment: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "equipment", uuid.Nil)
	}
	defer rows.Close()

	result := make([]domain.Equipment, 0)
	for rows.Next() {
		eq, err := scanEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		result = append(result, eq)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "equipment", uuid.Nil)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEquipment(row rowScanner) (domain.Equipment, error) {
	var (
		eq     domain.Equipment
		status string
	)
	err := row.Scan(
		&eq.ID, &eq.UserID, &eq.Name, &eq.Category, &eq.PurchaseDate, &eq.LastMaintenance,
		&eq.NextMaintenance, &status, &eq.Notes, &eq.CreatedAt, &eq.UpdatedAt,
	)
	if err != nil {
		return domain.Equipment{}, err
	}

	eq.Status = domain.EquipmentStatus(status)
	eq.PurchaseDate = utcPtr(eq.PurchaseDate)
	eq.LastMaintenance = utcPtr(eq.LastMaintenance)
	eq.NextMaintenance = utcPtr(eq.NextMaintenance)
	eq.CreatedAt = eq.CreatedAt.UTC()
	eq.UpdatedAt = eq.UpdatedAt.UTC()
	return eq, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
