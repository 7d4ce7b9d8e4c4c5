package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prolist/prolist/internal/domain"
	"github.com/prolist/prolist/internal/repository"
)

// failingCounterStore simulates an unavailable backing store
type failingCounterStore struct{}

func (failingCounterStore) Get(ctx context.Context, key string) (int, error) {
	return 0, errors.New("store unavailable")
}

func (failingCounterStore) Set(ctx context.Context, key string, value int) error {
	return errors.New("store unavailable")
}

func fixedYear(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.March, 14, 12, 0, 0, 0, time.UTC)
	}
}

func newTestNumbering(store repository.CounterStore, year int) *NumberingService {
	s := NewNumberingService(store)
	s.now = fixedYear(year)
	return s
}

func TestNextIssuesConsecutiveNumbers(t *testing.T) {
	ctx := context.Background()
	s := newTestNumbering(repository.NewMemoryCounterStore(), 2026)

	for i := 1; i <= 5; i++ {
		got, err := s.Next(ctx, domain.DocTypeInvoice)
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		want := fmt.Sprintf("INV-2026-%04d", i)
		if got != want {
			t.Errorf("Next() call %d = %q, want %q", i, got, want)
		}
	}
}

func TestNextContinuesFromStoredValue(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryCounterStore()
	if err := store.Set(ctx, "prolist_mvp_packing_list_counter_2026", 41); err != nil {
		t.Fatalf("seeding store: %v", err)
	}

	s := newTestNumbering(store, 2026)
	got, err := s.Next(ctx, domain.DocTypePackingList)
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if got != "PKL-2026-0042" {
		t.Errorf("Next() = %q, want PKL-2026-0042", got)
	}
}

func TestPeekIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryCounterStore()
	s := newTestNumbering(store, 2026)

	if _, err := s.Next(ctx, domain.DocTypeInvoice); err != nil {
		t.Fatalf("Next() error = %v", err)
	}

	for i := 0; i < 3; i++ {
		got, err := s.Peek(ctx, domain.DocTypeInvoice)
		if err != nil {
			t.Fatalf("Peek() error = %v", err)
		}
		if got != "INV-2026-0002" {
			t.Errorf("Peek() call %d = %q, want INV-2026-0002", i+1, got)
		}
	}

	// Peek must not have consumed anything
	got, err := s.Next(ctx, domain.DocTypeInvoice)
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if got != "INV-2026-0002" {
		t.Errorf("Next() after Peek = %q, want INV-2026-0002", got)
	}
}

func TestYearRolloverRestartsSequence(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryCounterStore()

	// Last year's counter is well advanced
	if err := store.Set(ctx, "prolist_mvp_invoice_counter_2025", 812); err != nil {
		t.Fatalf("seeding store: %v", err)
	}

	s := newTestNumbering(store, 2026)
	got, err := s.Next(ctx, domain.DocTypeInvoice)
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if got != "INV-2026-0001" {
		t.Errorf("Next() in new year = %q, want INV-2026-0001", got)
	}

	// The old year's counter is orphaned, never deleted
	old, err := store.Get(ctx, "prolist_mvp_invoice_counter_2025")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if old != 812 {
		t.Errorf("previous year counter = %d, want 812 untouched", old)
	}
}

func TestNextFallsBackWhenStoreUnavailable(t *testing.T) {
	ctx := context.Background()
	s := newTestNumbering(failingCounterStore{}, 2026)

	got, err := s.Next(ctx, domain.DocTypeInvoice)
	if !errors.Is(err, ErrCounterUnavailable) {
		t.Errorf("Next() error = %v, want ErrCounterUnavailable", err)
	}
	if got != "INV-2026-0001" {
		t.Errorf("Next() fallback = %q, want INV-2026-0001", got)
	}

	peeked, err := s.Peek(ctx, domain.DocTypeInvoice)
	if !errors.Is(err, ErrCounterUnavailable) {
		t.Errorf("Peek() error = %v, want ErrCounterUnavailable", err)
	}
	if peeked != "INV-2026-0001" {
		t.Errorf("Peek() fallback = %q, want INV-2026-0001", peeked)
	}
}

func TestNextFallsBackOnCorruptCounter(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryCounterStore()
	store.Seed("prolist_mvp_invoice_counter_2026", "not-a-number")

	s := newTestNumbering(store, 2026)
	got, err := s.Next(ctx, domain.DocTypeInvoice)
	if !errors.Is(err, ErrCounterUnavailable) {
		t.Errorf("Next() error = %v, want ErrCounterUnavailable", err)
	}
	if got != "INV-2026-0001" {
		t.Errorf("Next() with corrupt counter = %q, want INV-2026-0001", got)
	}

	// The corrupt value was overwritten; numbering recovers
	next, err := s.Next(ctx, domain.DocTypeInvoice)
	if err != nil {
		t.Fatalf("Next() after recovery error = %v", err)
	}
	if next != "INV-2026-0002" {
		t.Errorf("Next() after recovery = %q, want INV-2026-0002", next)
	}
}

func TestDocTypesUseSeparateCounters(t *testing.T) {
	ctx := context.Background()
	s := newTestNumbering(repository.NewMemoryCounterStore(), 2026)

	if _, err := s.Next(ctx, domain.DocTypeInvoice); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if _, err := s.Next(ctx, domain.DocTypeInvoice); err != nil {
		t.Fatalf("Next() error = %v", err)
	}

	got, err := s.Next(ctx, domain.DocTypePackingList)
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if got != "PKL-2026-0001" {
		t.Errorf("packing list Next() = %q, want PKL-2026-0001", got)
	}
}
