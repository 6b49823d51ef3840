package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/heartmarshall/gearguard-backend/internal/adapter/postgres"
	"github.com/heartmarshall/gearguard-backend/internal/config"
)

// Migration directions accepted by Migrate.
const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStatus = "status"
)

// Migrate runs a single migration command against the configured database.
// Status output is written to out.
func Migrate(ctx context.Context, direction string, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, os.Stderr)

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	m, err := postgres.NewMigrator(pool, logger)
	if err != nil {
		return err
	}
	defer m.Close() //nolint:errcheck

	switch direction {
	case MigrateUp:
		return m.Up(ctx)
	case MigrateDown:
		return m.Down(ctx)
	case MigrateStatus:
		statuses, err := m.Status(ctx)
		if err != nil {
			return err
		}
		return printStatus(out, statuses)
	default:
		return fmt.Errorf("unknown migration direction %q", direction)
	}
}

func printStatus(out io.Writer, statuses []postgres.MigrationStatus) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tFILE")
	for _, s := range statuses {
		state := "pending"
		if s.Applied {
			state = "applied"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Version, state, s.Path)
	}
	return tw.Flush()
}
