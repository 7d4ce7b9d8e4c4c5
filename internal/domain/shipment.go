package domain

import (
	"time"

	"github.com/google/uuid"
)

// Incoterm represents a standardized trade term defining risk/cost transfer
type Incoterm string

const (
	IncotermEXW Incoterm = "EXW"
	IncotermFOB Incoterm = "FOB"
	IncotermCFR Incoterm = "CFR"
	IncotermCIF Incoterm = "CIF"
	IncotermCIP Incoterm = "CIP"
	IncotermDAP Incoterm = "DAP"
)

// ShipmentStatus represents the lifecycle state of a shipment
type ShipmentStatus string

const (
	ShipmentDraft     ShipmentStatus = "draft"
	ShipmentSubmitted ShipmentStatus = "submitted"
	ShipmentInTransit ShipmentStatus = "in_transit"
	ShipmentDelivered ShipmentStatus = "delivered"
)

// ShipmentItem represents one line of a shipment, referencing the catalog
type ShipmentItem struct {
	ProductID uuid.UUID `json:"product_id" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
}

// Shipment represents an export shipment
type Shipment struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Reference string    `json:"reference" db:"reference"`
	// Route is the legacy display string ("Douala → Paris FR"). New records
	// carry the destination in DestinationCountry; Route is kept for display
	// and as a fallback for rows created before the column existed.
	Route              string         `json:"route" db:"route"`
	DestinationCountry string         `json:"destination_country,omitempty" db:"destination_country"`
	Incoterm           Incoterm       `json:"incoterm" db:"incoterm"`
	Mode               string         `json:"mode" db:"mode"`
	Items              []ShipmentItem `json:"items"`
	Status             ShipmentStatus `json:"status" db:"status"`
	ValueFCFA          int64          `json:"value_fcfa" db:"value_fcfa"`
	CreatedAt          time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at" db:"updated_at"`
}

// ShipmentCreateRequest represents a request to create a shipment
type ShipmentCreateRequest struct {
	Reference          string         `json:"reference" validate:"required"`
	Route              string         `json:"route"`
	DestinationCountry string         `json:"destination_country,omitempty"`
	Incoterm           Incoterm       `json:"incoterm" validate:"required"`
	Mode               string         `json:"mode"`
	Items              []ShipmentItem `json:"items"`
	ValueFCFA          int64          `json:"value_fcfa"`
}

// ShipmentStatusUpdateRequest represents a request to change a shipment's status
type ShipmentStatusUpdateRequest struct {
	Status ShipmentStatus `json:"status" validate:"required"`
}

// ShipmentListResponse represents the response for listing shipments
type ShipmentListResponse struct {
	Shipments []Shipment `json:"shipments"`
}
