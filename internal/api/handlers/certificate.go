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

// CertificateHandler handles uploaded-certificate HTTP requests
type CertificateHandler struct {
	certRepo     *repository.CertificateRepository
	shipmentRepo *repository.ShipmentRepository
}

// NewCertificateHandler creates a new certificate handler
func NewCertificateHandler(certRepo *repository.CertificateRepository, shipmentRepo *repository.ShipmentRepository) *CertificateHandler {
	return &CertificateHandler{
		certRepo:     certRepo,
		shipmentRepo: shipmentRepo,
	}
}

// Create handles POST /api/v1/shipments/{id}/certificates: records the
// metadata of a manually uploaded certificate
func (h *CertificateHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	var req domain.CertificateCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.DocKey == "" || req.Filename == "" {
		respondError(w, http.StatusBadRequest, "doc_key and filename are required")
		return
	}

	cert := &domain.CertificateUpload{
		ID:         uuid.New(),
		ShipmentID: shipmentID,
		DocKey:     req.DocKey,
		Filename:   req.Filename,
		Status:     domain.CertificateUploaded,
		UploadedAt: time.Now(),
	}

	if err := h.certRepo.Create(r.Context(), cert); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to record certificate")
		return
	}

	respondJSON(w, http.StatusCreated, cert)
}

// List handles GET /api/v1/shipments/{id}/certificates
func (h *CertificateHandler) List(w http.ResponseWriter, r *http.Request) {
	shipmentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid shipment ID")
		return
	}

	certs, err := h.certRepo.FindByShipment(r.Context(), shipmentID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list certificates")
		return
	}

	if certs == nil {
		certs = []domain.CertificateUpload{}
	}

	respondJSON(w, http.StatusOK, domain.CertificateListResponse{Certificates: certs})
}
