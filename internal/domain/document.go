package domain

import (
	"time"

	"github.com/google/uuid"
)

// DocKey identifies one of the compliance documents a shipment can require
type DocKey string

const (
	DocCOO               DocKey = "COO"
	DocPhyto             DocKey = "PHYTO"
	DocInsurance         DocKey = "INSURANCE"
	DocInvoice           DocKey = "INVOICE"
	DocPackingList       DocKey = "PACKING_LIST"
	DocBillOfLading      DocKey = "BILL_OF_LADING"
	DocCustomsExportDecl DocKey = "CUSTOMS_EXPORT_DECLARATION"
)

// Label returns the human-readable document name
func (k DocKey) Label() string {
	switch k {
	case DocCOO:
		return "Certificate of Origin"
	case DocPhyto:
		return "Phytosanitary Certificate"
	case DocInsurance:
		return "Insurance Certificate"
	case DocInvoice:
		return "Commercial Invoice"
	case DocPackingList:
		return "Packing List"
	case DocBillOfLading:
		return "Bill of Lading"
	case DocCustomsExportDecl:
		return "Customs Export Declaration"
	default:
		return string(k)
	}
}

// DocumentRequirement is the derived set of documents a shipment needs.
// Required preserves rule-evaluation order; the consuming UI treats it as
// priority order.
type DocumentRequirement struct {
	Required []DocKey          `json:"required"`
	Reasons  map[DocKey]string `json:"reasons"`
}

// DocType identifies a numbered document family
type DocType string

const (
	DocTypeInvoice     DocType = "invoice"
	DocTypePackingList DocType = "packing_list"
)

// Prefix returns the document-number prefix for the family
func (t DocType) Prefix() string {
	switch t {
	case DocTypeInvoice:
		return "INV"
	case DocTypePackingList:
		return "PKL"
	default:
		return "DOC"
	}
}

// CertificateStatus represents the state of a manually uploaded certificate
type CertificateStatus string

const (
	CertificatePending  CertificateStatus = "pending"
	CertificateUploaded CertificateStatus = "uploaded"
)

// CertificateUpload represents the metadata of a manually uploaded
// compliance certificate attached to a shipment
type CertificateUpload struct {
	ID         uuid.UUID         `json:"id" db:"id"`
	ShipmentID uuid.UUID         `json:"shipment_id" db:"shipment_id"`
	DocKey     DocKey            `json:"doc_key" db:"doc_key"`
	Filename   string            `json:"filename" db:"filename"`
	Status     CertificateStatus `json:"status" db:"status"`
	UploadedAt time.Time         `json:"uploaded_at" db:"uploaded_at"`
}

// CertificateCreateRequest represents a request to record an uploaded certificate
type CertificateCreateRequest struct {
	DocKey   DocKey `json:"doc_key" validate:"required"`
	Filename string `json:"filename" validate:"required"`
}

// CertificateListResponse represents the response for listing a shipment's certificates
type CertificateListResponse struct {
	Certificates []CertificateUpload `json:"certificates"`
}

// NumberPreviewResponse represents the next document numbers that would be
// issued for a shipment, without consuming them
type NumberPreviewResponse struct {
	Invoice     string `json:"invoice"`
	PackingList string `json:"packing_list"`
}
