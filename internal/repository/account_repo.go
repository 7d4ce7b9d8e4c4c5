package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/prolist/prolist/internal/domain"
)

// AccountRepository handles workspace account persistence
type AccountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a new account repository with a shared database connection
func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// FindByID finds an account by its ID
func (r *AccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := `
		SELECT id, name, api_key_hash, is_active, created_at
		FROM accounts
		WHERE id = $1
	`

	var account domain.Account
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&account.ID,
		&account.Name,
		&account.APIKeyHash,
		&account.IsActive,
		&account.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	return &account, nil
}

// FindAll lists all accounts
func (r *AccountRepository) FindAll(ctx context.Context) ([]*domain.Account, error) {
	query := `
		SELECT id, name, api_key_hash, is_active, created_at
		FROM accounts
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(
			&account.ID,
			&account.Name,
			&account.APIKeyHash,
			&account.IsActive,
			&account.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, &account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts: %w", err)
	}

	return accounts, nil
}

// GetNotificationPrefs reads an account's notification preferences, or the
// defaults when none have been saved
func (r *AccountRepository) GetNotificationPrefs(ctx context.Context, accountID uuid.UUID) (domain.NotificationPrefs, error) {
	query := `
		SELECT account_id, on_submission, on_issue, on_document, updated_at
		FROM notification_prefs
		WHERE account_id = $1
	`

	var prefs domain.NotificationPrefs
	err := r.db.QueryRowContext(ctx, query, accountID).Scan(
		&prefs.AccountID,
		&prefs.OnSubmission,
		&prefs.OnIssue,
		&prefs.OnDocument,
		&prefs.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return domain.DefaultNotificationPrefs(accountID), nil
	}
	if err != nil {
		return domain.NotificationPrefs{}, fmt.Errorf("failed to read notification prefs: %w", err)
	}

	return prefs, nil
}

// SaveNotificationPrefs upserts an account's notification preferences
func (r *AccountRepository) SaveNotificationPrefs(ctx context.Context, prefs domain.NotificationPrefs) error {
	query := `
		INSERT INTO notification_prefs (account_id, on_submission, on_issue, on_document, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (account_id) DO UPDATE SET
			on_submission = EXCLUDED.on_submission,
			on_issue = EXCLUDED.on_issue,
			on_document = EXCLUDED.on_document,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		prefs.AccountID,
		prefs.OnSubmission,
		prefs.OnIssue,
		prefs.OnDocument,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to save notification prefs: %w", err)
	}

	return nil
}
