package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/gearguard-backend/internal/config"
	"github.com/heartmarshall/gearguard-backend/internal/transport/middleware"
	"github.com/heartmarshall/gearguard-backend/internal/transport/rest"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Auth        *rest.AuthHandler
	Equipment   *rest.EquipmentHandler
	Maintenance *rest.MaintenanceHandler
	Health      *rest.HealthHandler
}

// NewRouter builds the HTTP handler tree. reg may be nil when metrics are disabled.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	h Handlers,
	tokens tokenValidator,
	reg *prometheus.Registry,
) http.Handler {
	mux := http.NewServeMux()
	protected := func(fn http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(fn)
	}

	// Auth
	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.Handle("GET /api/auth/me", protected(h.Auth.Me))

	// Equipment
	mux.Handle("POST /api/equipment", protected(h.Equipment.Create))
	mux.Handle("GET /api/equipment", protected(h.Equipment.List))
	mux.Handle("GET /api/equipment/upcoming", protected(h.Equipment.Upcoming))
	mux.Handle("GET /api/equipment/{id}", protected(h.Equipment.Get))
	mux.Handle("PUT /api/equipment/{id}", protected(h.Equipment.Update))
	mux.Handle("DELETE /api/equipment/{id}", protected(h.Equipment.Delete))

	// Maintenance
	mux.Handle("POST /api/maintenance", protected(h.Maintenance.Create))
	mux.Handle("GET /api/maintenance", protected(h.Maintenance.List))
	mux.Handle("GET /api/maintenance/equipment/{equipmentId}", protected(h.Maintenance.ListByEquipment))
	mux.Handle("DELETE /api/maintenance/{id}", protected(h.Maintenance.Delete))

	// Operational
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mws := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
	}

	if cfg.Metrics.Enabled && reg != nil {
		mux.Handle("GET "+cfg.Metrics.Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
		mws = append(mws, middleware.NewMetrics(reg).Middleware())
	}

	mws = append(mws,
		middleware.CORS(cfg.CORS),
		middleware.Auth(tokens),
	)

	return middleware.Chain(mws...)(mux)
}
