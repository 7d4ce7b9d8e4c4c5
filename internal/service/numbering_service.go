package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/prolist/prolist/internal/domain"
	"github.com/prolist/prolist/internal/repository"
)

// NumberingService issues year-scoped sequential document numbers for the
// generated document families (invoice, packing list). Sequences restart at
// 1 each calendar year because the counter key embeds the year.
//
// With a plain CounterStore the read-increment-write cycle is not safe for
// concurrent writers on the same (type, year) key; stores implementing
// AtomicCounterStore close that gap.
type NumberingService struct {
	store repository.CounterStore
	now   func() time.Time
}

// NewNumberingService creates a numbering service on top of a counter store
func NewNumberingService(store repository.CounterStore) *NumberingService {
	return &NumberingService{
		store: store,
		now:   time.Now,
	}
}

// counterKey builds the storage key for a document family and year. The
// prolist_mvp_ prefix is the storage contract shared with the workspace
// settings exporter.
func counterKey(docType domain.DocType, year int) string {
	return fmt.Sprintf("prolist_mvp_%s_counter_%d", docType, year)
}

// formatNumber renders PREFIX-YEAR-NNNN with a 4-digit zero-padded sequence
func formatNumber(docType domain.DocType, year, seq int) string {
	return fmt.Sprintf("%s-%d-%04d", docType.Prefix(), year, seq)
}

// Next issues the next number for the document family. A valid-looking
// number is always returned: when the counter store fails, the sequence
// falls back to 1 and the returned error wraps ErrCounterUnavailable so the
// caller can decide whether to surface the degradation. Numbers are
// immutable once issued; gaps from unused numbers are tolerated.
func (s *NumberingService) Next(ctx context.Context, docType domain.DocType) (string, error) {
	year := s.now().Year()
	key := counterKey(docType, year)

	if atomic, ok := s.store.(repository.AtomicCounterStore); ok {
		seq, err := atomic.Incr(ctx, key)
		if err != nil {
			log.Printf("numbering: increment failed for %s, using fallback: %v", key, err)
			return formatNumber(docType, year, 1), fmt.Errorf("%w: %v", ErrCounterUnavailable, err)
		}
		return formatNumber(docType, year, seq), nil
	}

	current, readErr := s.store.Get(ctx, key)
	if readErr != nil {
		log.Printf("numbering: read failed for %s, treating counter as 0: %v", key, readErr)
		current = 0
	}

	seq := current + 1
	if err := s.store.Set(ctx, key, seq); err != nil {
		log.Printf("numbering: write failed for %s: %v", key, err)
		return formatNumber(docType, year, seq), fmt.Errorf("%w: %v", ErrCounterUnavailable, err)
	}

	if readErr != nil {
		return formatNumber(docType, year, seq), fmt.Errorf("%w: %v", ErrCounterUnavailable, readErr)
	}

	return formatNumber(docType, year, seq), nil
}

// Peek returns the number Next would issue, without consuming it
func (s *NumberingService) Peek(ctx context.Context, docType domain.DocType) (string, error) {
	year := s.now().Year()
	key := counterKey(docType, year)

	current, err := s.store.Get(ctx, key)
	if err != nil {
		log.Printf("numbering: read failed for %s, treating counter as 0: %v", key, err)
		return formatNumber(docType, year, 1), fmt.Errorf("%w: %v", ErrCounterUnavailable, err)
	}

	return formatNumber(docType, year, current+1), nil
}
