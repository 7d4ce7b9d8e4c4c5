package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/prolist/prolist/internal/domain"
	"github.com/prolist/prolist/internal/repository"
	"github.com/prolist/prolist/internal/service"
)

// ShipmentHandler handles shipment-related HTTP requests
type ShipmentHandler struct {
	shipmentRepo *repository.ShipmentRepository
	productRepo  *repository.ProductRepository
	requirements *service.RequirementService
	numbering    *service.NumberingService
}

// NewShipmentHandler creates a new shipment handler
func NewShipmentHandler(
	shipmentRepo *repository.ShipmentRepository,
	productRepo *repository.ProductRepository,
	requirements *service.RequirementService,
	numbering *service.NumberingService,
) *ShipmentHandler {
	return &ShipmentHandler{
		shipmentRepo: shipmentRepo,
		productRepo:  productRepo,
		requirements: requirements,
		numbering:    numbering,
	}
}

// Create handles POST /api/v1/shipments
func (h *ShipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.ShipmentCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Reference == "" {
		respondError(w, http.StatusBadRequest, "reference is required")
		return
	}
	if req.Incoterm == "" {
		respondError(w, http.StatusBadRequest, "incoterm is required")
		return
	}

	destination := req.DestinationCountry
	if destination == "" {
		destination = service.ParseRouteDestination(req.Route)
	}

	now := time.Now()
	shipment := &domain.Shipment{
		ID:                 uuid.New(),
		Reference:          req.Reference,
		Route:              req.Route,
		DestinationCountry: destination,
		Incoterm:           req.Incoterm,
		Mode:               req.Mode,
		Items:              req.Items,
		Status:             domain.ShipmentDraft,
		ValueFCFA:          req.ValueFCFA,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if shipment.Items == nil {
		shipment.Items = []domain.ShipmentItem{}
	}

	if err := h.shipmentRepo.Create(r.Context(), shipment); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create shipment")
		return
	}

	respondJSON(w, http.StatusCreated, shipment)
}

// List handles GET /api/v1/shipments
func (h *ShipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	shipments, err := h.shipmentRepo.FindAll(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list shipments")
		return
	}

	if shipments == nil {
		shipments = []domain.Shipment{}
	}

	respondJSON(w, http.StatusOK, domain.ShipmentListResponse{Shipments: shipments})
}

// Get handles GET /api/v1/shipments/{id}
func (h *ShipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	shipment, ok := h.loadShipment(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, shipment)
}

// UpdateStatus handles PATCH /api/v1/shipments/{id}/status
func (h *ShipmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	shipment, ok := h.loadShipment(w, r)
	if !ok {
		return
	}

	var req domain.ShipmentStatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	switch req.Status {
	case domain.ShipmentDraft, domain.ShipmentSubmitted, domain.ShipmentInTransit, domain.ShipmentDelivered:
	default:
		respondError(w, http.StatusBadRequest, "Unknown status")
		return
	}

	if err := h.shipmentRepo.UpdateStatus(r.Context(), shipment.ID, req.Status); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update status")
		return
	}

	shipment.Status = req.Status
	respondJSON(w, http.StatusOK, shipment)
}

// Requirements handles GET /api/v1/shipments/{id}/requirements: the derived
// set of compliance documents the shipment currently needs
func (h *ShipmentHandler) Requirements(w http.ResponseWriter, r *http.Request) {
	shipment, ok := h.loadShipment(w, r)
	if !ok {
		return
	}

	catalog, err := h.productRepo.FindAll(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load catalog")
		return
	}

	respondJSON(w, http.StatusOK, h.requirements.Evaluate(shipment, catalog))
}

// NumberPreview handles GET /api/v1/shipments/{id}/numbers/preview: the
// document numbers the next submission would be issued, without consuming
// them. Counter faults degrade to the fallback numbers rather than failing
// the preview.
func (h *ShipmentHandler) NumberPreview(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.loadShipment(w, r); !ok {
		return
	}

	invoice, _ := h.numbering.Peek(r.Context(), domain.DocTypeInvoice)
	packing, _ := h.numbering.Peek(r.Context(), domain.DocTypePackingList)

	respondJSON(w, http.StatusOK, domain.NumberPreviewResponse{
		Invoice:     invoice,
		PackingList: packing,
	})
}

// loadShipment resolves the {id} URL parameter to a shipment, writing the
// error response itself when it cannot
func (h *ShipmentHandler) loadShipment(w http.ResponseWriter, r *http.Request) (*domain.Shipment, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid shipment ID")
		return nil, false
	}

	shipment, err := h.shipmentRepo.FindByID(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load shipment")
		return nil, false
	}
	if shipment == nil {
		respondError(w, http.StatusNotFound, "Shipment not found")
		return nil, false
	}

	return shipment, true
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
