package repository

import (
	"context"
	"testing"
)

func TestMemoryCounterStoreDefaultsToZero(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCounterStore()

	got, err := store.Get(ctx, "prolist_mvp_invoice_counter_2026")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != 0 {
		t.Errorf("Get() on missing key = %d, want 0", got)
	}
}

func TestMemoryCounterStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCounterStore()
	key := "prolist_mvp_packing_list_counter_2026"

	if err := store.Set(ctx, key, 17); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := store.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != 17 {
		t.Errorf("Get() = %d, want 17", got)
	}

	// Keys are independent
	other, err := store.Get(ctx, "prolist_mvp_invoice_counter_2026")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if other != 0 {
		t.Errorf("Get() on untouched key = %d, want 0", other)
	}
}

func TestMemoryCounterStoreCorruptValue(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCounterStore()
	key := "prolist_mvp_invoice_counter_2026"

	store.Seed(key, "garbage")

	got, err := store.Get(ctx, key)
	if err == nil {
		t.Error("Get() on corrupt value: want error, got nil")
	}
	if got != 0 {
		t.Errorf("Get() on corrupt value = %d, want 0", got)
	}

	// A write repairs the key
	if err := store.Set(ctx, key, 3); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err = store.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get() after repair error = %v", err)
	}
	if got != 3 {
		t.Errorf("Get() after repair = %d, want 3", got)
	}
}
