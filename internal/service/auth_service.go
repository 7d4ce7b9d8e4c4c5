package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/prolist/prolist/internal/domain"
)

// AccountStore is the account access the auth service needs
type AccountStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	FindAll(ctx context.Context) ([]*domain.Account, error)
}

// AuthService handles the demo workspace authentication scheme: API keys
// exchanged for short-lived HS256 tokens
type AuthService struct {
	accounts  AccountStore
	jwtSecret []byte
}

// NewAuthService creates a new auth service
func NewAuthService(accounts AccountStore, jwtSecret string) *AuthService {
	return &AuthService{
		accounts:  accounts,
		jwtSecret: []byte(jwtSecret),
	}
}

// ValidateAPIKey validates an API key and returns the associated account.
// The demo workspace holds a handful of accounts, so a linear scan over the
// bcrypt hashes is acceptable here.
func (s *AuthService) ValidateAPIKey(ctx context.Context, apiKey string) (*domain.Account, error) {
	accounts, err := s.accounts.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	apiKeyBytes := []byte(apiKey)

	for _, account := range accounts {
		if !account.IsActive {
			continue
		}

		if err := bcrypt.CompareHashAndPassword([]byte(account.APIKeyHash), apiKeyBytes); err == nil {
			return account, nil
		}
	}

	return nil, ErrInvalidCredentials
}

// GenerateToken generates a JWT token for the given account
func (s *AuthService) GenerateToken(account *domain.Account) (*domain.TokenResponse, error) {
	expiresIn := 3600 // 1 hour
	expiresAt := time.Now().Add(time.Duration(expiresIn) * time.Second)

	claims := jwt.MapClaims{
		"account_id":   account.ID.String(),
		"account_name": account.Name,
		"exp":          expiresAt.Unix(),
		"iat":          time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &domain.TokenResponse{
		AccessToken: signedToken,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}

// ValidateToken validates a JWT token and returns the account ID
func (s *AuthService) ValidateToken(tokenString string) (*uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidCredentials
		}
		return s.jwtSecret, nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	accountIDStr, ok := claims["account_id"].(string)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	accountID, err := uuid.Parse(accountIDStr)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return &accountID, nil
}

// HashAPIKey creates a bcrypt hash of an API key
func HashAPIKey(apiKey string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// GenerateAPIKey generates a random API key
func GenerateAPIKey() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}
