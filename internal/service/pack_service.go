package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/prolist/prolist/internal/domain"
)

// ShipmentStore is the shipment access the pack composer needs
type ShipmentStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Shipment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ShipmentStatus) error
}

// ProductStore is the catalog access the pack composer needs
type ProductStore interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
}

// CertificateStore is the uploaded-certificate access the pack composer needs
type CertificateStore interface {
	FindByShipment(ctx context.Context, shipmentID uuid.UUID) ([]domain.CertificateUpload, error)
}

// PackStore is the persistence boundary for submission packs
type PackStore interface {
	Create(ctx context.Context, pack *domain.SubmissionPack) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.SubmissionPack, error)
	FindByShipment(ctx context.Context, shipmentID uuid.UUID) ([]domain.SubmissionPack, error)
	CountByShipment(ctx context.Context, shipmentID uuid.UUID) (int, error)
	DemotePrimary(ctx context.Context, shipmentID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Document status labels used in pack contents
const (
	statusGenerated = "Generated"
	statusUploaded  = "Uploaded"
	statusMissing   = "Missing"
)

// PackService assembles immutable submission-pack snapshots at shipment
// submission time
type PackService struct {
	shipments    ShipmentStore
	products     ProductStore
	certificates CertificateStore
	packs        PackStore
	requirements *RequirementService
	numbering    *NumberingService
	baseURL      string
	now          func() time.Time
}

// NewPackService creates a pack service
func NewPackService(
	shipments ShipmentStore,
	products ProductStore,
	certificates CertificateStore,
	packs PackStore,
	requirements *RequirementService,
	numbering *NumberingService,
	baseURL string,
) *PackService {
	return &PackService{
		shipments:    shipments,
		products:     products,
		certificates: certificates,
		packs:        packs,
		requirements: requirements,
		numbering:    numbering,
		baseURL:      baseURL,
		now:          time.Now,
	}
}

// Submit composes a new submission pack for the shipment: the documents the
// rule engine currently requires, freshly issued invoice and packing-list
// numbers, and the status of any uploaded certificates. The new pack becomes
// the shipment's primary; the previous primary is demoted but retained for
// audit history. Each call issues new document numbers.
func (s *PackService) Submit(ctx context.Context, shipmentID uuid.UUID, createdBy string) (*domain.SubmissionPack, error) {
	shipment, err := s.shipments.FindByID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, ErrNotFound
	}

	catalog, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	required := s.requirements.Evaluate(shipment, catalog)

	// Numbering degradation is logged, never fatal to a submission
	invoiceNo, err := s.numbering.Next(ctx, domain.DocTypeInvoice)
	if err != nil && errors.Is(err, ErrCounterUnavailable) {
		log.Printf("pack: invoice numbering degraded for shipment %s: %v", shipmentID, err)
	}
	packingNo, err := s.numbering.Next(ctx, domain.DocTypePackingList)
	if err != nil && errors.Is(err, ErrCounterUnavailable) {
		log.Printf("pack: packing-list numbering degraded for shipment %s: %v", shipmentID, err)
	}

	certs, err := s.certificates.FindByShipment(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	contents := buildContents(required, invoiceNo, packingNo, certs)

	count, err := s.packs.CountByShipment(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	if err := s.packs.DemotePrimary(ctx, shipmentID); err != nil {
		return nil, err
	}

	now := s.now()
	pack := &domain.SubmissionPack{
		ID:         uuid.New(),
		ShipmentID: shipmentID,
		Name:       fmt.Sprintf("Submission pack #%d", count+1),
		CreatedAt:  now,
		CreatedBy:  createdBy,
		Contents:   contents,
		IsPrimary:  true,
		HelperLine: fmt.Sprintf("%d documents, generated %s", len(contents), now.Format("2006-01-02")),
	}
	pack.ShareURL = fmt.Sprintf("%s/share/packs/%s", s.baseURL, pack.ID)

	if err := s.packs.Create(ctx, pack); err != nil {
		return nil, err
	}

	if err := s.shipments.UpdateStatus(ctx, shipmentID, domain.ShipmentSubmitted); err != nil {
		return nil, err
	}

	return pack, nil
}

// buildContents snapshots the document bundle: required documents in rule
// order with their certificate status, then the generated invoice and
// packing list carrying their issued numbers, then uploads that were not
// otherwise required.
func buildContents(required domain.DocumentRequirement, invoiceNo, packingNo string, certs []domain.CertificateUpload) []domain.DocumentSummary {
	latestCert := make(map[domain.DocKey]domain.CertificateUpload)
	for _, cert := range certs {
		// FindByShipment returns newest first; keep the latest per key
		if _, ok := latestCert[cert.DocKey]; !ok {
			latestCert[cert.DocKey] = cert
		}
	}

	seen := make(map[domain.DocKey]bool)
	var contents []domain.DocumentSummary

	for _, key := range required.Required {
		summary := domain.DocumentSummary{
			Key:          key,
			Label:        key.Label(),
			VersionLabel: "v1",
			StatusLabel:  statusMissing,
			Note:         required.Reasons[key],
		}
		if cert, ok := latestCert[key]; ok && cert.Status == domain.CertificateUploaded {
			summary.StatusLabel = statusUploaded
			summary.Note = cert.Filename
		}
		contents = append(contents, summary)
		seen[key] = true
	}

	contents = append(contents,
		domain.DocumentSummary{
			Key:          domain.DocInvoice,
			Label:        domain.DocInvoice.Label(),
			VersionLabel: invoiceNo,
			StatusLabel:  statusGenerated,
		},
		domain.DocumentSummary{
			Key:          domain.DocPackingList,
			Label:        domain.DocPackingList.Label(),
			VersionLabel: packingNo,
			StatusLabel:  statusGenerated,
		},
	)
	seen[domain.DocInvoice] = true
	seen[domain.DocPackingList] = true

	for _, cert := range certs {
		if seen[cert.DocKey] {
			continue
		}
		contents = append(contents, domain.DocumentSummary{
			Key:          cert.DocKey,
			Label:        cert.DocKey.Label(),
			VersionLabel: "v1",
			StatusLabel:  statusUploaded,
			Note:         cert.Filename,
		})
		seen[cert.DocKey] = true
	}

	return contents
}

// List returns a shipment's packs, newest first
func (s *PackService) List(ctx context.Context, shipmentID uuid.UUID) ([]domain.SubmissionPack, error) {
	return s.packs.FindByShipment(ctx, shipmentID)
}

// Delete removes a non-primary pack. The primary pack is protected while it
// remains primary; attempting to delete it leaves the pack list unchanged
// and returns ErrPrimaryPack for the caller to surface.
func (s *PackService) Delete(ctx context.Context, shipmentID, packID uuid.UUID) error {
	pack, err := s.packs.FindByID(ctx, packID)
	if err != nil {
		return err
	}
	if pack == nil || pack.ShipmentID != shipmentID {
		return ErrNotFound
	}
	if pack.IsPrimary {
		return ErrPrimaryPack
	}

	return s.packs.Delete(ctx, packID)
}
