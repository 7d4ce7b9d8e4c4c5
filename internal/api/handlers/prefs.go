package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/prolist/prolist/internal/api/middleware"
	"github.com/prolist/prolist/internal/domain"
	"github.com/prolist/prolist/internal/repository"
)

// PrefsHandler handles notification preference HTTP requests
type PrefsHandler struct {
	accountRepo *repository.AccountRepository
}

// NewPrefsHandler creates a new preferences handler
func NewPrefsHandler(accountRepo *repository.AccountRepository) *PrefsHandler {
	return &PrefsHandler{
		accountRepo: accountRepo,
	}
}

// Get handles GET /api/v1/me/notification-prefs
func (h *PrefsHandler) Get(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.GetAccountID(r.Context())
	if accountID == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	prefs, err := h.accountRepo.GetNotificationPrefs(r.Context(), *accountID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load preferences")
		return
	}

	respondJSON(w, http.StatusOK, prefs)
}

// Update handles PUT /api/v1/me/notification-prefs
func (h *PrefsHandler) Update(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.GetAccountID(r.Context())
	if accountID == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var prefs domain.NotificationPrefs
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	prefs.AccountID = *accountID

	if err := h.accountRepo.SaveNotificationPrefs(r.Context(), prefs); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to save preferences")
		return
	}

	respondJSON(w, http.StatusOK, prefs)
}
