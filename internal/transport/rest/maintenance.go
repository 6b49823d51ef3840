package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/gearguard-backend/internal/domain"
	"github.com/heartmarshall/gearguard-backend/internal/service/maintenance"
)

type maintenanceService interface {
	Create(ctx context.Context, input maintenance.CreateInput) (*domain.MaintenanceLog, error)
	List(ctx context.Context, input maintenance.ListInput) ([]domain.MaintenanceLog, error)
	ListByEquipment(ctx context.Context, equipmentID uuid.UUID) ([]domain.MaintenanceLog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MaintenanceHandler serves /api/maintenance.
type MaintenanceHandler struct {
	svc          maintenanceService
	log          *slog.Logger
	equipmentErr errorMapper
	logErr       errorMapper
}

// NewMaintenanceHandler creates a MaintenanceHandler.
func NewMaintenanceHandler(svc maintenanceService, logger *slog.Logger) *MaintenanceHandler {
	log := logger.With("handler", "maintenance")
	return &MaintenanceHandler{
		svc:          svc,
		log:          log,
		equipmentErr: errorMapper{log: log, notFound: "Equipment not found"},
		logErr:       errorMapper{log: log, notFound: "Maintenance log not found"},
	}
}

type createLogRequest struct {
	EquipmentID string    `json:"equipmentId"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Cost        *float64  `json:"cost"`
	Date        *jsonDate `json:"date"`
}

// Create handles POST /api/maintenance.
func (h *MaintenanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLogRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var errs []domain.FieldError
	equipmentID, err := uuid.Parse(req.EquipmentID)
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "equipmentId", Message: "must be a valid id"})
	}
	if req.Date == nil {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if len(errs) > 0 {
		h.equipmentErr.handle(w, r, domain.NewValidationErrors(errs))
		return
	}

	log, err := h.svc.Create(r.Context(), maintenance.CreateInput{
		EquipmentID: equipmentID,
		Type:        domain.MaintenanceType(req.Type),
		Description: req.Description,
		Cost:        req.Cost,
		Date:        *req.Date.timePtr(),
	})
	if err != nil {
		h.equipmentErr.handle(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toLogResponse(*log))
}

// List handles GET /api/maintenance?startDate=&endDate=&type=.
func (h *MaintenanceHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		input maintenance.ListInput
		errs  []domain.FieldError
	)
	for _, p := range []struct {
		name string
		dst  **time.Time
	}{
		{"startDate", &input.StartDate},
		{"endDate", &input.EndDate},
	} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		t, err := parseDate(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: p.name, Message: "invalid date"})
			continue
		}
		*p.dst = &t
	}
	if len(errs) > 0 {
		h.logErr.handle(w, r, domain.NewValidationErrors(errs))
		return
	}
	if v := q.Get("type"); v != "" {
		typ := domain.MaintenanceType(v)
		input.Type = &typ
	}

	logs, err := h.svc.List(r.Context(), input)
	if err != nil {
		h.logErr.handle(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toLogResponses(logs))
}

// ListByEquipment handles GET /api/maintenance/equipment/{equipmentId}.
func (h *MaintenanceHandler) ListByEquipment(w http.ResponseWriter, r *http.Request) {
	equipmentID, err := uuid.Parse(r.PathValue("equipmentId"))
	if err != nil {
		writeError(w, http.StatusNotFound, h.equipmentErr.notFound)
		return
	}

	logs, err := h.svc.ListByEquipment(r.Context(), equipmentID)
	if err != nil {
		h.equipmentErr.handle(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toLogResponses(logs))
}

// Delete handles DELETE /api/maintenance/{id}.
func (h *MaintenanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, h.logErr.notFound)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.logErr.handle(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Maintenance log deleted successfully"})
}
