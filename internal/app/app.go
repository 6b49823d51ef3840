package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/heartmarshall/gearguard-backend/internal/adapter/postgres"
	equipmentrepo "github.com/heartmarshall/gearguard-backend/internal/adapter/postgres/equipment"
	maintenancerepo "github.com/heartmarshall/gearguard-backend/internal/adapter/postgres/maintenance"
	userrepo "github.com/heartmarshall/gearguard-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/gearguard-backend/internal/auth"
	"github.com/heartmarshall/gearguard-backend/internal/config"
	authsvc "github.com/heartmarshall/gearguard-backend/internal/service/auth"
	equipmentsvc "github.com/heartmarshall/gearguard-backend/internal/service/equipment"
	maintenancesvc "github.com/heartmarshall/gearguard-backend/internal/service/maintenance"
	"github.com/heartmarshall/gearguard-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to the
// database, applies pending migrations when enabled, and serves HTTP until
// ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, os.Stderr)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	migrator, err := postgres.NewMigrator(pool, logger)
	if err != nil {
		return err
	}
	defer migrator.Close() //nolint:errcheck

	if cfg.Database.AutoMigrate {
		if err := migrator.Up(ctx); err != nil {
			return err
		}
	}

	handler := buildHandler(cfg, logger, pool, rest.Check{Name: "schema", Ping: migrator.CheckSchema})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// buildHandler wires repositories, services and handlers over db.
// The database is always a readiness check; extra adds more.
func buildHandler(cfg *config.Config, logger *slog.Logger, db postgres.Pool, extra ...rest.Check) http.Handler {
	// Repositories
	users := userrepo.New(db)
	equipment := equipmentrepo.New(db)
	logs := maintenancerepo.New(db)
	txm := postgres.NewTxManager(db)

	// Services
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth)
	equipmentService := equipmentsvc.NewService(logger, equipment, logs)
	maintenanceService := maintenancesvc.NewService(logger, logs, equipment, txm)

	var reg *prometheus.Registry
	if cfg.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	return NewRouter(cfg, logger, Handlers{
		Auth:        rest.NewAuthHandler(authService, logger),
		Equipment:   rest.NewEquipmentHandler(equipmentService, logger),
		Maintenance: rest.NewMaintenanceHandler(maintenanceService, logger),
		Health:      rest.NewHealthHandler(Version, append([]rest.Check{rest.PingCheck("database", db)}, extra...)...),
	}, authService, reg)
}
