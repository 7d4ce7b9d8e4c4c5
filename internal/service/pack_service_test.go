package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/prolist/prolist/internal/domain"
	"github.com/prolist/prolist/internal/repository"
)

// --- MOCKS ---

// mockShipmentStore serves a single shipment
type mockShipmentStore struct {
	shipment      *domain.Shipment
	updatedStatus domain.ShipmentStatus
}

func (m *mockShipmentStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Shipment, error) {
	if m.shipment != nil && m.shipment.ID == id {
		return m.shipment, nil
	}
	return nil, nil
}

func (m *mockShipmentStore) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ShipmentStatus) error {
	m.updatedStatus = status
	return nil
}

// mockProductStore serves a fixed catalog
type mockProductStore struct {
	catalog []domain.Product
}

func (m *mockProductStore) FindAll(ctx context.Context) ([]domain.Product, error) {
	return m.catalog, nil
}

// mockCertificateStore serves fixed certificates
type mockCertificateStore struct {
	certs []domain.CertificateUpload
}

func (m *mockCertificateStore) FindByShipment(ctx context.Context, shipmentID uuid.UUID) ([]domain.CertificateUpload, error) {
	return m.certs, nil
}

// mockPackStore keeps packs in memory
type mockPackStore struct {
	packs []domain.SubmissionPack
}

func (m *mockPackStore) Create(ctx context.Context, pack *domain.SubmissionPack) error {
	m.packs = append(m.packs, *pack)
	return nil
}

func (m *mockPackStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.SubmissionPack, error) {
	for i := range m.packs {
		if m.packs[i].ID == id {
			return &m.packs[i], nil
		}
	}
	return nil, nil
}

func (m *mockPackStore) FindByShipment(ctx context.Context, shipmentID uuid.UUID) ([]domain.SubmissionPack, error) {
	var out []domain.SubmissionPack
	for _, p := range m.packs {
		if p.ShipmentID == shipmentID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPackStore) CountByShipment(ctx context.Context, shipmentID uuid.UUID) (int, error) {
	n := 0
	for _, p := range m.packs {
		if p.ShipmentID == shipmentID {
			n++
		}
	}
	return n, nil
}

func (m *mockPackStore) DemotePrimary(ctx context.Context, shipmentID uuid.UUID) error {
	for i := range m.packs {
		if m.packs[i].ShipmentID == shipmentID {
			m.packs[i].IsPrimary = false
		}
	}
	return nil
}

func (m *mockPackStore) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range m.packs {
		if m.packs[i].ID == id {
			m.packs = append(m.packs[:i], m.packs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockPackStore) primaryCount(shipmentID uuid.UUID) int {
	n := 0
	for _, p := range m.packs {
		if p.ShipmentID == shipmentID && p.IsPrimary {
			n++
		}
	}
	return n
}

// --- TESTS ---

func newTestPackService(shipment *domain.Shipment, catalog []domain.Product, certs []domain.CertificateUpload) (*PackService, *mockPackStore, *mockShipmentStore) {
	shipments := &mockShipmentStore{shipment: shipment}
	packs := &mockPackStore{}
	numbering := newTestNumbering(repository.NewMemoryCounterStore(), 2026)

	svc := NewPackService(
		shipments,
		&mockProductStore{catalog: catalog},
		&mockCertificateStore{certs: certs},
		packs,
		NewRequirementService(),
		numbering,
		"http://localhost:8080",
	)
	return svc, packs, shipments
}

func euShipment() *domain.Shipment {
	return &domain.Shipment{
		ID:                 uuid.New(),
		Reference:          "SHP-001",
		Route:              "Douala → Le Havre FR",
		DestinationCountry: "FR",
		Incoterm:           domain.IncotermCIF,
		Status:             domain.ShipmentDraft,
		Items:              []domain.ShipmentItem{{ProductID: coffeeID, Quantity: 120}},
	}
}

func TestSubmitComposesPrimaryPack(t *testing.T) {
	ctx := context.Background()
	shipment := euShipment()
	svc, packs, shipments := newTestPackService(shipment, testCatalog(), nil)

	pack, err := svc.Submit(ctx, shipment.ID, "Demo Workspace")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if !pack.IsPrimary {
		t.Error("new pack is not primary")
	}
	if pack.Name != "Submission pack #1" {
		t.Errorf("pack name = %q, want Submission pack #1", pack.Name)
	}
	if pack.CreatedBy != "Demo Workspace" {
		t.Errorf("created by = %q", pack.CreatedBy)
	}
	if pack.ShareURL == "" || pack.HelperLine == "" {
		t.Error("share URL and helper line must be set")
	}
	if shipments.updatedStatus != domain.ShipmentSubmitted {
		t.Errorf("shipment status = %q, want submitted", shipments.updatedStatus)
	}
	if got := len(packs.packs); got != 1 {
		t.Fatalf("stored packs = %d, want 1", got)
	}

	// Required documents appear in rule order, then the generated documents
	// with their issued numbers.
	wantKeys := []domain.DocKey{
		domain.DocCOO, domain.DocPhyto, domain.DocInsurance,
		domain.DocInvoice, domain.DocPackingList,
	}
	if len(pack.Contents) != len(wantKeys) {
		t.Fatalf("contents = %d entries, want %d", len(pack.Contents), len(wantKeys))
	}
	for i, key := range wantKeys {
		if pack.Contents[i].Key != key {
			t.Errorf("contents[%d].Key = %s, want %s", i, pack.Contents[i].Key, key)
		}
	}
	if pack.Contents[3].VersionLabel != "INV-2026-0001" {
		t.Errorf("invoice version = %q, want INV-2026-0001", pack.Contents[3].VersionLabel)
	}
	if pack.Contents[4].VersionLabel != "PKL-2026-0001" {
		t.Errorf("packing list version = %q, want PKL-2026-0001", pack.Contents[4].VersionLabel)
	}
}

func TestSubmitSnapshotsCertificateStatus(t *testing.T) {
	ctx := context.Background()
	shipment := euShipment()
	certs := []domain.CertificateUpload{
		{
			ID:         uuid.New(),
			ShipmentID: shipment.ID,
			DocKey:     domain.DocCOO,
			Filename:   "coo-shp-001.pdf",
			Status:     domain.CertificateUploaded,
		},
		{
			ID:         uuid.New(),
			ShipmentID: shipment.ID,
			DocKey:     domain.DocBillOfLading,
			Filename:   "bl-shp-001.pdf",
			Status:     domain.CertificateUploaded,
		},
	}
	svc, _, _ := newTestPackService(shipment, testCatalog(), certs)

	pack, err := svc.Submit(ctx, shipment.ID, "Demo Workspace")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	var coo, phyto, bl *domain.DocumentSummary
	for i := range pack.Contents {
		switch pack.Contents[i].Key {
		case domain.DocCOO:
			coo = &pack.Contents[i]
		case domain.DocPhyto:
			phyto = &pack.Contents[i]
		case domain.DocBillOfLading:
			bl = &pack.Contents[i]
		}
	}

	if coo == nil || coo.StatusLabel != "Uploaded" || coo.Note != "coo-shp-001.pdf" {
		t.Errorf("COO summary = %+v, want uploaded with filename note", coo)
	}
	if phyto == nil || phyto.StatusLabel != "Missing" {
		t.Errorf("PHYTO summary = %+v, want missing", phyto)
	}
	if bl == nil || bl.StatusLabel != "Uploaded" {
		t.Errorf("bill of lading summary = %+v, want included as uploaded extra", bl)
	}
}

func TestResubmitDemotesPreviousPrimary(t *testing.T) {
	ctx := context.Background()
	shipment := euShipment()
	svc, packs, _ := newTestPackService(shipment, testCatalog(), nil)

	first, err := svc.Submit(ctx, shipment.ID, "Demo Workspace")
	if err != nil {
		t.Fatalf("first Submit() error = %v", err)
	}

	second, err := svc.Submit(ctx, shipment.ID, "Demo Workspace")
	if err != nil {
		t.Fatalf("second Submit() error = %v", err)
	}

	if got := len(packs.packs); got != 2 {
		t.Fatalf("stored packs = %d, want 2", got)
	}
	if got := packs.primaryCount(shipment.ID); got != 1 {
		t.Errorf("primary packs = %d, want exactly 1", got)
	}

	stored, _ := packs.FindByID(ctx, first.ID)
	if stored.IsPrimary {
		t.Error("previous primary was not demoted")
	}
	if !second.IsPrimary {
		t.Error("new pack is not primary")
	}
	if second.Name != "Submission pack #2" {
		t.Errorf("second pack name = %q, want Submission pack #2", second.Name)
	}

	// Re-submission issues fresh document numbers
	var invoiceVersion string
	for _, c := range second.Contents {
		if c.Key == domain.DocInvoice {
			invoiceVersion = c.VersionLabel
		}
	}
	if invoiceVersion != "INV-2026-0002" {
		t.Errorf("second invoice number = %q, want INV-2026-0002", invoiceVersion)
	}
}

func TestSubmitUnknownShipment(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestPackService(euShipment(), testCatalog(), nil)

	_, err := svc.Submit(ctx, uuid.New(), "Demo Workspace")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Submit() error = %v, want ErrNotFound", err)
	}
}

func TestDeletePrimaryPackRejected(t *testing.T) {
	ctx := context.Background()
	shipment := euShipment()
	svc, packs, _ := newTestPackService(shipment, testCatalog(), nil)

	pack, err := svc.Submit(ctx, shipment.ID, "Demo Workspace")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	err = svc.Delete(ctx, shipment.ID, pack.ID)
	if !errors.Is(err, ErrPrimaryPack) {
		t.Errorf("Delete(primary) error = %v, want ErrPrimaryPack", err)
	}
	if got := len(packs.packs); got != 1 {
		t.Errorf("pack list changed: %d packs, want 1", got)
	}
}

func TestDeleteNonPrimaryPack(t *testing.T) {
	ctx := context.Background()
	shipment := euShipment()
	svc, packs, _ := newTestPackService(shipment, testCatalog(), nil)

	first, err := svc.Submit(ctx, shipment.ID, "Demo Workspace")
	if err != nil {
		t.Fatalf("first Submit() error = %v", err)
	}
	second, err := svc.Submit(ctx, shipment.ID, "Demo Workspace")
	if err != nil {
		t.Fatalf("second Submit() error = %v", err)
	}

	if err := svc.Delete(ctx, shipment.ID, first.ID); err != nil {
		t.Fatalf("Delete(non-primary) error = %v", err)
	}

	if got := len(packs.packs); got != 1 {
		t.Fatalf("stored packs = %d, want 1", got)
	}
	if packs.packs[0].ID != second.ID {
		t.Error("wrong pack was deleted")
	}
}

func TestDeleteUnknownPack(t *testing.T) {
	ctx := context.Background()
	shipment := euShipment()
	svc, _, _ := newTestPackService(shipment, testCatalog(), nil)

	err := svc.Delete(ctx, shipment.ID, uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestDeletePackFromOtherShipmentRejected(t *testing.T) {
	ctx := context.Background()
	shipment := euShipment()
	svc, _, _ := newTestPackService(shipment, testCatalog(), nil)

	pack, err := svc.Submit(ctx, shipment.ID, "Demo Workspace")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	err = svc.Delete(ctx, uuid.New(), pack.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(wrong shipment) error = %v, want ErrNotFound", err)
	}
}
