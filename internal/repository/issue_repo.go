package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/prolist/prolist/internal/domain"
)

// IssueRepository handles compliance issue persistence
type IssueRepository struct {
	db *sql.DB
}

// NewIssueRepository creates a new issue repository with a shared database connection
func NewIssueRepository(db *sql.DB) *IssueRepository {
	return &IssueRepository{db: db}
}

// Create raises a new issue against a shipment
func (r *IssueRepository) Create(ctx context.Context, issue *domain.Issue) error {
	query := `
		INSERT INTO issues (id, shipment_id, severity, status, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		issue.ID,
		issue.ShipmentID,
		issue.Severity,
		issue.Status,
		issue.Message,
		issue.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create issue: %w", err)
	}

	return nil
}

// FindByShipment lists a shipment's issues, newest first
func (r *IssueRepository) FindByShipment(ctx context.Context, shipmentID uuid.UUID) ([]domain.Issue, error) {
	query := `
		SELECT id, shipment_id, severity, status, message, created_at, resolved_at
		FROM issues
		WHERE shipment_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}
	defer rows.Close()

	var issues []domain.Issue
	for rows.Next() {
		var issue domain.Issue
		if err := rows.Scan(
			&issue.ID,
			&issue.ShipmentID,
			&issue.Severity,
			&issue.Status,
			&issue.Message,
			&issue.CreatedAt,
			&issue.ResolvedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan issue: %w", err)
		}
		issues = append(issues, issue)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating issues: %w", err)
	}

	return issues, nil
}

// Resolve marks an issue as resolved. Resolving an already-resolved issue
// leaves it unchanged.
func (r *IssueRepository) Resolve(ctx context.Context, id uuid.UUID) (*domain.Issue, error) {
	query := `
		UPDATE issues
		SET status = $1, resolved_at = $2
		WHERE id = $3 AND status = $4
		RETURNING id, shipment_id, severity, status, message, created_at, resolved_at
	`

	var issue domain.Issue
	err := r.db.QueryRowContext(ctx, query, domain.IssueResolved, time.Now(), id, domain.IssueOpen).Scan(
		&issue.ID,
		&issue.ShipmentID,
		&issue.Severity,
		&issue.Status,
		&issue.Message,
		&issue.CreatedAt,
		&issue.ResolvedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve issue: %w", err)
	}

	return &issue, nil
}
