package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/prolist/prolist/internal/domain"
	"github.com/prolist/prolist/internal/repository"
)

// IssueHandler handles compliance issue HTTP requests
type IssueHandler struct {
	issueRepo    *repository.IssueRepository
	shipmentRepo *repository.ShipmentRepository
}

// NewIssueHandler creates a new issue handler
func NewIssueHandler(issueRepo *repository.IssueRepository, shipmentRepo *repository.ShipmentRepository) *IssueHandler {
	return &IssueHandler{
		issueRepo:    issueRepo,
		shipmentRepo: shipmentRepo,
	}
}

// Create handles POST /api/v1/shipments/{id}/issues
func (h *IssueHandler) Create(w http.ResponseWriter, r *http.Request) {
	shipmentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid shipment ID")
		return
	}

	shipment, err := h.shipmentRepo.FindByID(r.Context(), shipmentID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load shipment")
		return
	}
	if shipment == nil {
		respondError(w, http.StatusNotFound, "Shipment not found")
		return
	}

	var req domain.IssueCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Message == "" {
		respondError(w, http.StatusBadRequest, "message is required")
		return
	}
	if req.Severity == "" {
		req.Severity = domain.IssueInfo
	}

	issue := &domain.Issue{
		ID:         uuid.New(),
		ShipmentID: shipmentID,
		Severity:   req.Severity,
		Status:     domain.IssueOpen,
		Message:    req.Message,
		CreatedAt:  time.Now(),
	}

	if err := h.issueRepo.Create(r.Context(), issue); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create issue")
		return
	}

	respondJSON(w, http.StatusCreated, issue)
}

// List handles GET /api/v1/shipments/{id}/issues
func (h *IssueHandler) List(w http.ResponseWriter, r *http.Request) {
	shipmentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid shipment ID")
		return
	}

	issues, err := h.issueRepo.FindByShipment(r.Context(), shipmentID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list issues")
		return
	}

	if issues == nil {
		issues = []domain.Issue{}
	}

	respondJSON(w, http.StatusOK, domain.IssueListResponse{Issues: issues})
}

// Resolve handles POST /api/v1/issues/{id}/resolve
func (h *IssueHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid issue ID")
		return
	}

	issue, err := h.issueRepo.Resolve(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to resolve issue")
		return
	}
	if issue == nil {
		respondError(w, http.StatusNotFound, "Open issue not found")
		return
	}

	respondJSON(w, http.StatusOK, issue)
}
