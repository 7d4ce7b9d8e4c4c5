package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/prolist/prolist/internal/domain"
	"github.com/prolist/prolist/internal/service"
)

// Context keys
type contextKey string

const (
	AccountIDKey contextKey = "account_id"
	AccountKey   contextKey = "account"
)

// AuthMiddleware provides authentication middleware
type AuthMiddleware struct {
	authService *service.AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authService *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// Authenticate validates an API key or bearer token
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var account *domain.Account
		var accountID *uuid.UUID

		// Try API key first
		apiKey := r.Header.Get("X-API-Key")
		if apiKey != "" {
			a, err := m.authService.ValidateAPIKey(r.Context(), apiKey)
			if err == nil && a != nil {
				account = a
				accountID = &a.ID
			}
		}

		// Try Bearer token if no API key
		if account == nil {
			authHeader := r.Header.Get("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				token := strings.TrimPrefix(authHeader, "Bearer ")
				id, err := m.authService.ValidateToken(token)
				if err == nil && id != nil {
					accountID = id
				}
			}
		}

		// If no valid auth found, reject
		if accountID == nil {
			http.Error(w, `{"error": "Unauthorized"}`, http.StatusUnauthorized)
			return
		}

		// Add account info to context
		ctx := context.WithValue(r.Context(), AccountIDKey, accountID)
		if account != nil {
			ctx = context.WithValue(ctx, AccountKey, account)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAccountID extracts the account ID from context
func GetAccountID(ctx context.Context) *uuid.UUID {
	if id, ok := ctx.Value(AccountIDKey).(*uuid.UUID); ok {
		return id
	}
	return nil
}

// GetAccount extracts the account from context
func GetAccount(ctx context.Context) *domain.Account {
	if account, ok := ctx.Value(AccountKey).(*domain.Account); ok {
		return account
	}
	return nil
}
