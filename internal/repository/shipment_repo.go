package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/prolist/prolist/internal/domain"
)

// ShipmentRepository handles shipment persistence
type ShipmentRepository struct {
	db *sql.DB
}

// NewShipmentRepository creates a new shipment repository and opens the
// database connection shared with the other repositories
func NewShipmentRepository(databaseURL string) (*ShipmentRepository, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return &ShipmentRepository{db: db}, nil
}

// GetDB returns the underlying database connection for sharing with other repositories
func (r *ShipmentRepository) GetDB() *sql.DB {
	return r.db
}

// Close closes the database connection
func (r *ShipmentRepository) Close() error {
	return r.db.Close()
}

// Create inserts a new shipment
func (r *ShipmentRepository) Create(ctx context.Context, shipment *domain.Shipment) error {
	items, err := json.Marshal(shipment.Items)
	if err != nil {
		return fmt.Errorf("failed to encode shipment items: %w", err)
	}

	query := `
		INSERT INTO shipments (id, reference, route, destination_country, incoterm, mode,
		                       items, status, value_fcfa, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = r.db.ExecContext(ctx, query,
		shipment.ID,
		shipment.Reference,
		shipment.Route,
		shipment.DestinationCountry,
		shipment.Incoterm,
		shipment.Mode,
		items,
		shipment.Status,
		shipment.ValueFCFA,
		shipment.CreatedAt,
		shipment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create shipment: %w", err)
	}

	return nil
}

// FindByID finds a shipment by its ID
func (r *ShipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Shipment, error) {
	query := `
		SELECT id, reference, route, COALESCE(destination_country, ''), incoterm, mode,
		       items, status, value_fcfa, created_at, updated_at
		FROM shipments
		WHERE id = $1
	`

	var shipment domain.Shipment
	var items []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&shipment.ID,
		&shipment.Reference,
		&shipment.Route,
		&shipment.DestinationCountry,
		&shipment.Incoterm,
		&shipment.Mode,
		&items,
		&shipment.Status,
		&shipment.ValueFCFA,
		&shipment.CreatedAt,
		&shipment.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find shipment: %w", err)
	}

	if err := json.Unmarshal(items, &shipment.Items); err != nil {
		return nil, fmt.Errorf("failed to decode shipment items: %w", err)
	}

	return &shipment, nil
}

// FindAll lists all shipments, newest first
func (r *ShipmentRepository) FindAll(ctx context.Context) ([]domain.Shipment, error) {
	query := `
		SELECT id, reference, route, COALESCE(destination_country, ''), incoterm, mode,
		       items, status, value_fcfa, created_at, updated_at
		FROM shipments
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}
	defer rows.Close()

	var shipments []domain.Shipment
	for rows.Next() {
		var shipment domain.Shipment
		var items []byte
		if err := rows.Scan(
			&shipment.ID,
			&shipment.Reference,
			&shipment.Route,
			&shipment.DestinationCountry,
			&shipment.Incoterm,
			&shipment.Mode,
			&items,
			&shipment.Status,
			&shipment.ValueFCFA,
			&shipment.CreatedAt,
			&shipment.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shipment: %w", err)
		}
		if err := json.Unmarshal(items, &shipment.Items); err != nil {
			return nil, fmt.Errorf("failed to decode shipment items: %w", err)
		}
		shipments = append(shipments, shipment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shipments: %w", err)
	}

	return shipments, nil
}

// UpdateStatus updates a shipment's lifecycle status
func (r *ShipmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ShipmentStatus) error {
	query := `UPDATE shipments SET status = $1, updated_at = $2 WHERE id = $3`

	_, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update shipment status: %w", err)
	}

	return nil
}
