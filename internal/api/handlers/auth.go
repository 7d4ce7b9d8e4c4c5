package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/prolist/prolist/internal/domain"
	"github.com/prolist/prolist/internal/service"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Token handles POST /api/v1/auth/token: exchanges a workspace API key for
// a short-lived bearer token
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req domain.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.APIKey == "" {
		respondError(w, http.StatusBadRequest, "api_key is required")
		return
	}

	account, err := h.authService.ValidateAPIKey(r.Context(), req.APIKey)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	tokenResp, err := h.authService.GenerateToken(account)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	respondJSON(w, http.StatusOK, tokenResp)
}
