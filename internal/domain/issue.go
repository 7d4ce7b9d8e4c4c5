package domain

import (
	"time"

	"github.com/google/uuid"
)

// IssueSeverity represents how strongly an issue blocks a shipment
type IssueSeverity string

const (
	IssueInfo     IssueSeverity = "info"
	IssueWarning  IssueSeverity = "warning"
	IssueBlocking IssueSeverity = "blocking"
)

// IssueStatus represents the lifecycle state of an issue
type IssueStatus string

const (
	IssueOpen     IssueStatus = "open"
	IssueResolved IssueStatus = "resolved"
)

// Issue represents a compliance issue raised against a shipment
type Issue struct {
	ID         uuid.UUID     `json:"id" db:"id"`
	ShipmentID uuid.UUID     `json:"shipment_id" db:"shipment_id"`
	Severity   IssueSeverity `json:"severity" db:"severity"`
	Status     IssueStatus   `json:"status" db:"status"`
	Message    string        `json:"message" db:"message"`
	CreatedAt  time.Time     `json:"created_at" db:"created_at"`
	ResolvedAt *time.Time    `json:"resolved_at,omitempty" db:"resolved_at"`
}

// IssueCreateRequest represents a request to raise an issue
type IssueCreateRequest struct {
	Severity IssueSeverity `json:"severity"`
	Message  string        `json:"message" validate:"required"`
}

// IssueListResponse represents the response for listing issues
type IssueListResponse struct {
	Issues []Issue `json:"issues"`
}
