package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a demo workspace account. Authentication here is the
// demo scheme (API key exchanged for a short-lived token), not a real
// identity system.
type Account struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	APIKeyHash string    `json:"-" db:"api_key_hash"`
	IsActive   bool      `json:"is_active" db:"is_active"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// TokenRequest represents a request to exchange an API key for a token
type TokenRequest struct {
	APIKey string `json:"api_key" validate:"required"`
}

// TokenResponse represents an issued access token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// NotificationPrefs holds an account's notification preferences
type NotificationPrefs struct {
	AccountID    uuid.UUID `json:"account_id" db:"account_id"`
	OnSubmission bool      `json:"on_submission" db:"on_submission"`
	OnIssue      bool      `json:"on_issue" db:"on_issue"`
	OnDocument   bool      `json:"on_document" db:"on_document"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// DefaultNotificationPrefs returns the preferences applied before an
// account has saved any
func DefaultNotificationPrefs(accountID uuid.UUID) NotificationPrefs {
	return NotificationPrefs{
		AccountID:    accountID,
		OnSubmission: true,
		OnIssue:      true,
		OnDocument:   false,
	}
}
