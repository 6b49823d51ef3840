package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/gearguard-backend/internal/dashboard"
	"github.com/heartmarshall/gearguard-backend/internal/domain"
	"github.com/heartmarshall/gearguard-backend/internal/service/equipment"
)

type equipmentService interface {
	Create(ctx context.Context, input equipment.CreateInput) (*domain.Equipment, error)
	List(ctx context.Context, input equipment.ListInput) ([]domain.Equipment, error)
	ListUpcoming(ctx context.Context) ([]dashboard.UpcomingItem, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Equipment, error)
	Update(ctx context.Context, input equipment.UpdateInput) (*domain.Equipment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// EquipmentHandler serves /api/equipment.
type EquipmentHandler struct {
	svc    equipmentService
	log    *slog.Logger
	mapErr errorMapper
}

// NewEquipmentHandler creates an EquipmentHandler.
func NewEquipmentHandler(svc equipmentService, logger *slog.Logger) *EquipmentHandler {
	log := logger.With("handler", "equipment")
	return &EquipmentHandler{
		svc:    svc,
		log:    log,
		mapErr: errorMapper{log: log, notFound: "Equipment not found"},
	}
}

type createEquipmentRequest struct {
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	PurchaseDate    *jsonDate `json:"purchaseDate"`
	NextMaintenance *jsonDate `json:"nextMaintenance"`
	Status          *string   `json:"status"`
	Notes           *string   `json:"notes"`
}

type updateEquipmentRequest struct {
	Name            nullable[string]   `json:"name"`
	Category        nullable[string]   `json:"category"`
	PurchaseDate    nullable[jsonDate] `json:"purchaseDate"`
	LastMaintenance nullable[jsonDate] `json:"lastMaintenance"`
	NextMaintenance nullable[jsonDate] `json:"nextMaintenance"`
	Status          nullable[string]   `json:"status"`
	Notes           nullable[string]   `json:"notes"`
}

// Create handles POST /api/equipment.
func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEquipmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := equipment.CreateInput{
		Name:            req.Name,
		Category:        req.Category,
		PurchaseDate:    req.PurchaseDate.timePtr(),
		NextMaintenance: req.NextMaintenance.timePtr(),
		Notes:           req.Notes,
	}
	if req.Status != nil {
		status := domain.EquipmentStatus(*req.Status)
		input.Status = &status
	}

	eq, err := h.svc.Create(r.Context(), input)
	if err != nil {
		h.mapErr.handle(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEquipmentResponse(*eq))
}

// List handles GET /api/equipment?category=&status=.
func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var input equipment.ListInput
	if v := q.Get("category"); v != "" {
		input.Category = &v
	}
	if v := q.Get("status"); v != "" {
		status := domain.EquipmentStatus(v)
		input.Status = &status
	}

	items, err := h.svc.List(r.Context(), input)
	if err != nil {
		h.mapErr.handle(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEquipmentResponses(items))
}

// Upcoming handles GET /api/equipment/upcoming.
func (h *EquipmentHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListUpcoming(r.Context())
	if err != nil {
		h.mapErr.handle(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUpcomingResponses(items))
}

// Get handles GET /api/equipment/{id}.
func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	eq, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.mapErr.handle(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEquipmentResponse(*eq))
}

// Update handles PUT /api/equipment/{id}.
func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req updateEquipmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	patch := domain.EquipmentPatch{
		Name:            toPatch(req.Name),
		Category:        toPatch(req.Category),
		PurchaseDate:    toDatePatch(req.PurchaseDate),
		LastMaintenance: toDatePatch(req.LastMaintenance),
		NextMaintenance: toDatePatch(req.NextMaintenance),
		Notes:           toPatch(req.Notes),
	}
	if req.Status.Set {
		patch.Status = domain.Patch[domain.EquipmentStatus]{Set: true}
		if req.Status.Value != nil {
			patch.Status = domain.SetTo(domain.EquipmentStatus(*req.Status.Value))
		}
	}

	eq, err := h.svc.Update(r.Context(), equipment.UpdateInput{ID: id, Patch: patch})
	if err != nil {
		h.mapErr.handle(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEquipmentResponse(*eq))
}

// Delete handles DELETE /api/equipment/{id}.
func (h *EquipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.mapErr.handle(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Equipment deleted successfully"})
}

// pathID parses {id}; a malformed id cannot name an existing record.
func (h *EquipmentHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, h.mapErr.notFound)
		return uuid.Nil, false
	}
	return id, true
}
