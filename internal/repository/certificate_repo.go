package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/prolist/prolist/internal/domain"
)

// CertificateRepository handles uploaded-certificate metadata persistence
type CertificateRepository struct {
	db *sql.DB
}

// NewCertificateRepository creates a new certificate repository with a shared database connection
func NewCertificateRepository(db *sql.DB) *CertificateRepository {
	return &CertificateRepository{db: db}
}

// Create records an uploaded certificate
func (r *CertificateRepository) Create(ctx context.Context, cert *domain.CertificateUpload) error {
	query := `
		INSERT INTO certificate_uploads (id, shipment_id, doc_key, filename, status, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		cert.ID,
		cert.ShipmentID,
		cert.DocKey,
		cert.Filename,
		cert.Status,
		cert.UploadedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create certificate: %w", err)
	}

	return nil
}

// FindByShipment lists a shipment's uploaded certificates
func (r *CertificateRepository) FindByShipment(ctx context.Context, shipmentID uuid.UUID) ([]domain.CertificateUpload, error) {
	query := `
		SELECT id, shipment_id, doc_key, filename, status, uploaded_at
		FROM certificate_uploads
		WHERE shipment_id = $1
		ORDER BY uploaded_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list certificates: %w", err)
	}
	defer rows.Close()

	var certs []domain.CertificateUpload
	for rows.Next() {
		var cert domain.CertificateUpload
		if err := rows.Scan(
			&cert.ID,
			&cert.ShipmentID,
			&cert.DocKey,
			&cert.Filename,
			&cert.Status,
			&cert.UploadedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan certificate: %w", err)
		}
		certs = append(certs, cert)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating certificates: %w", err)
	}

	return certs, nil
}
