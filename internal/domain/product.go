package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a catalog entry available for shipment lines
type Product struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
	// HSCode is always stored normalized to 6 digits
	HSCode        string    `json:"hs_code" db:"hs_code"`
	UnitPriceFCFA int64     `json:"unit_price_fcfa" db:"unit_price_fcfa"`
	WeightKg      float64   `json:"weight_kg" db:"weight_kg"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// ProductCreateRequest represents a request to add a catalog product
type ProductCreateRequest struct {
	Name          string  `json:"name" validate:"required"`
	HSCode        string  `json:"hs_code" validate:"required"`
	UnitPriceFCFA int64   `json:"unit_price_fcfa"`
	WeightKg      float64 `json:"weight_kg"`
}

// ProductListResponse represents the response for listing catalog products
type ProductListResponse struct {
	Products []Product `json:"products"`
}
