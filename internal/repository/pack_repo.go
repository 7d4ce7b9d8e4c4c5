package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/prolist/prolist/internal/domain"
)

// PackRepository handles submission pack persistence
type PackRepository struct {
	db *sql.DB
}

// NewPackRepository creates a new pack repository with a shared database connection
func NewPackRepository(db *sql.DB) *PackRepository {
	return &PackRepository{db: db}
}

// Create inserts a new submission pack
func (r *PackRepository) Create(ctx context.Context, pack *domain.SubmissionPack) error {
	contents, err := json.Marshal(pack.Contents)
	if err != nil {
		return fmt.Errorf("failed to encode pack contents: %w", err)
	}

	query := `
		INSERT INTO submission_packs (id, shipment_id, name, created_at, created_by,
		                              contents, is_primary, share_url, helper_line)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = r.db.ExecContext(ctx, query,
		pack.ID,
		pack.ShipmentID,
		pack.Name,
		pack.CreatedAt,
		pack.CreatedBy,
		contents,
		pack.IsPrimary,
		pack.ShareURL,
		pack.HelperLine,
	)
	if err != nil {
		return fmt.Errorf("failed to create submission pack: %w", err)
	}

	return nil
}

// FindByID finds a submission pack by its ID
func (r *PackRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.SubmissionPack, error) {
	query := `
		SELECT id, shipment_id, name, created_at, created_by, contents, is_primary, share_url, helper_line
		FROM submission_packs
		WHERE id = $1
	`

	var pack domain.SubmissionPack
	var contents []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&pack.ID,
		&pack.ShipmentID,
		&pack.Name,
		&pack.CreatedAt,
		&pack.CreatedBy,
		&contents,
		&pack.IsPrimary,
		&pack.ShareURL,
		&pack.HelperLine,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find submission pack: %w", err)
	}

	if err := json.Unmarshal(contents, &pack.Contents); err != nil {
		return nil, fmt.Errorf("failed to decode pack contents: %w", err)
	}

	return &pack, nil
}

// FindByShipment lists a shipment's packs, newest first
func (r *PackRepository) FindByShipment(ctx context.Context, shipmentID uuid.UUID) ([]domain.SubmissionPack, error) {
	query := `
		SELECT id, shipment_id, name, created_at, created_by, contents, is_primary, share_url, helper_line
		FROM submission_packs
		WHERE shipment_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list submission packs: %w", err)
	}
	defer rows.Close()

	var packs []domain.SubmissionPack
	for rows.Next() {
		var pack domain.SubmissionPack
		var contents []byte
		if err := rows.Scan(
			&pack.ID,
			&pack.ShipmentID,
			&pack.Name,
			&pack.CreatedAt,
			&pack.CreatedBy,
			&contents,
			&pack.IsPrimary,
			&pack.ShareURL,
			&pack.HelperLine,
		); err != nil {
			return nil, fmt.Errorf("failed to scan submission pack: %w", err)
		}
		if err := json.Unmarshal(contents, &pack.Contents); err != nil {
			return nil, fmt.Errorf("failed to decode pack contents: %w", err)
		}
		packs = append(packs, pack)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating submission packs: %w", err)
	}

	return packs, nil
}

// CountByShipment counts a shipment's packs
func (r *PackRepository) CountByShipment(ctx context.Context, shipmentID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM submission_packs WHERE shipment_id = $1`

	var count int
	if err := r.db.QueryRowContext(ctx, query, shipmentID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count submission packs: %w", err)
	}

	return count, nil
}

// DemotePrimary clears the primary flag on all of a shipment's packs
func (r *PackRepository) DemotePrimary(ctx context.Context, shipmentID uuid.UUID) error {
	query := `UPDATE submission_packs SET is_primary = false WHERE shipment_id = $1 AND is_primary = true`

	_, err := r.db.ExecContext(ctx, query, shipmentID)
	if err != nil {
		return fmt.Errorf("failed to demote primary pack: %w", err)
	}

	return nil
}

// Delete removes a submission pack
func (r *PackRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM submission_packs WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete submission pack: %w", err)
	}

	return nil
}
