package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/prolist/prolist/internal/api/middleware"
	"github.com/prolist/prolist/internal/domain"
	"github.com/prolist/prolist/internal/service"
)

// PackHandler handles submission pack HTTP requests
type PackHandler struct {
	packService *service.PackService
}

// NewPackHandler creates a new pack handler
func NewPackHandler(packService *service.PackService) *PackHandler {
	return &PackHandler{
		packService: packService,
	}
}

// Submit handles POST /api/v1/shipments/{id}/submit: composes a new
// submission pack and makes it the shipment's primary
func (h *PackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	shipmentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid shipment ID")
		return
	}

	createdBy := "workspace"
	if account := middleware.GetAccount(r.Context()); account != nil {
		createdBy = account.Name
	}

	pack, err := h.packService.Submit(r.Context(), shipmentID, createdBy)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Shipment not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to submit shipment")
		return
	}

	respondJSON(w, http.StatusCreated, pack)
}

// List handles GET /api/v1/shipments/{id}/packs
func (h *PackHandler) List(w http.ResponseWriter, r *http.Request) {
	shipmentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid shipment ID")
		return
	}

	packs, err := h.packService.List(r.Context(), shipmentID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list packs")
		return
	}

	if packs == nil {
		packs = []domain.SubmissionPack{}
	}

	respondJSON(w, http.StatusOK, domain.PackListResponse{Packs: packs})
}

// Delete handles DELETE /api/v1/shipments/{id}/packs/{packID}
func (h *PackHandler) Delete(w http.ResponseWriter, r *http.Request) {
	shipmentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid shipment ID")
		return
	}

	packID, err := uuid.Parse(chi.URLParam(r, "packID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid pack ID")
		return
	}

	if err := h.packService.Delete(r.Context(), shipmentID, packID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Pack not found")
			return
		}
		if errors.Is(err, service.ErrPrimaryPack) {
			respondError(w, http.StatusConflict, "The primary pack cannot be deleted")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to delete pack")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
