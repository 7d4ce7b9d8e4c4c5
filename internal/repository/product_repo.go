package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/prolist/prolist/internal/domain"
	"github.com/prolist/prolist/pkg/hscode"
)

// ProductRepository handles catalog product persistence
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new product repository with a shared database connection
func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts a new catalog product. HS codes are normalized to 6 digits
// before they are stored.
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	product.HSCode = hscode.Format(product.HSCode)

	query := `
		INSERT INTO products (id, name, hs_code, unit_price_fcfa, weight_kg, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.HSCode,
		product.UnitPriceFCFA,
		product.WeightKg,
		product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// FindByID finds a product by its ID
func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `
		SELECT id, name, hs_code, unit_price_fcfa, weight_kg, created_at
		FROM products
		WHERE id = $1
	`

	var product domain.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.HSCode,
		&product.UnitPriceFCFA,
		&product.WeightKg,
		&product.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return &product, nil
}

// FindAll lists the whole catalog
func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, name, hs_code, unit_price_fcfa, weight_kg, created_at
		FROM products
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.HSCode,
			&product.UnitPriceFCFA,
			&product.WeightKg,
			&product.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
