package domain

import (
	"time"

	"github.com/google/uuid"
)

// DocumentSummary is one entry in a submission pack: the state of a single
// required document at the moment the shipment was submitted
type DocumentSummary struct {
	Key          DocKey `json:"key" db:"key"`
	Label        string `json:"label" db:"label"`
	VersionLabel string `json:"version_label" db:"version_label"`
	StatusLabel  string `json:"status_label" db:"status_label"`
	Note         string `json:"note,omitempty" db:"note"`
}

// SubmissionPack is an immutable snapshot of a shipment's document bundle,
// recorded at submission time. Exactly one pack per shipment is primary;
// older packs are retained for audit history.
type SubmissionPack struct {
	ID         uuid.UUID         `json:"id" db:"id"`
	ShipmentID uuid.UUID         `json:"shipment_id" db:"shipment_id"`
	Name       string            `json:"name" db:"name"`
	CreatedAt  time.Time         `json:"created_at" db:"created_at"`
	CreatedBy  string            `json:"created_by" db:"created_by"`
	Contents   []DocumentSummary `json:"contents"`
	IsPrimary  bool              `json:"is_primary" db:"is_primary"`
	ShareURL   string            `json:"share_url" db:"share_url"`
	HelperLine string            `json:"helper_line" db:"helper_line"`
}

// PackListResponse represents the response for listing a shipment's packs
type PackListResponse struct {
	Packs []SubmissionPack `json:"packs"`
}
