package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/gearguard-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a throwaway password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$04$seededhashseededhashseededhashseededhashseededhashsee",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedEquipment inserts a GOOD equipment row owned by userID.
func SeedEquipment(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Equipment {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	eq := domain.Equipment{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Drill " + uniqueSuffix(),
		Category:  "Tools",
		Status:    domain.EquipmentStatusGood,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO equipment (id, user_id, name, category, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		eq.ID, eq.UserID, eq.Name, eq.Category, string(eq.Status), eq.CreatedAt, eq.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEquipment: %v", err)
	}

	return eq
}

// SeedMaintenanceLog inserts a ROUTINE log for equipmentID at date.
func SeedMaintenanceLog(t *testing.T, pool *pgxpool.Pool, equipmentID uuid.UUID, date time.Time) domain.MaintenanceLog {
	t.Helper()

	log := domain.MaintenanceLog{
		ID:          uuid.New(),
		EquipmentID: equipmentID,
		Type:        domain.MaintenanceTypeRoutine,
		Description: "Seeded service " + uniqueSuffix(),
		Date:        date.UTC().Truncate(time.Microsecond),
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO maintenance_logs (id, equipment_id, type, description, date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		log.ID, log.EquipmentID, string(log.Type), log.Description, log.Date, log.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMaintenanceLog: %v", err)
	}

	return log
}
