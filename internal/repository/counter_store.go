package repository

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// CounterStore is the persistence boundary for document-number sequences.
// Keys are opaque strings; values are non-negative integers stored as
// base-10 strings.
type CounterStore interface {
	Get(ctx context.Context, key string) (int, error)
	Set(ctx context.Context, key string, value int) error
}

// AtomicCounterStore is implemented by stores that can increment a counter
// atomically. The numbering service prefers it over the read-increment-write
// path when available.
type AtomicCounterStore interface {
	CounterStore
	Incr(ctx context.Context, key string) (int, error)
}

// RedisCounterStore is a durable counter store backed by Redis
type RedisCounterStore struct {
	client *redis.Client
}

// NewRedisCounterStore connects to Redis and returns a counter store
func NewRedisCounterStore(redisURL string) (*RedisCounterStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCounterStore{client: client}, nil
}

// Get reads a counter value. Missing keys read as 0; a stored value that is
// not a base-10 integer also reads as 0, with an error the caller can log.
func (s *RedisCounterStore) Get(ctx context.Context, key string) (int, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read counter %s: %w", key, err)
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("corrupt counter value %q for %s: %w", val, key, err)
	}

	return n, nil
}

// Set writes a counter value
func (s *RedisCounterStore) Set(ctx context.Context, key string, value int) error {
	if err := s.client.Set(ctx, key, strconv.Itoa(value), 0).Err(); err != nil {
		return fmt.Errorf("failed to write counter %s: %w", key, err)
	}
	return nil
}

// Incr atomically increments a counter and returns the new value
func (s *RedisCounterStore) Incr(ctx context.Context, key string) (int, error) {
	n, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment counter %s: %w", key, err)
	}
	return int(n), nil
}

// Close closes the Redis connection
func (s *RedisCounterStore) Close() error {
	return s.client.Close()
}

// MemoryCounterStore is an in-memory counter store. It keeps the plain
// get/set contract (no atomic increment), matching the single-writer model
// the numbering service documents.
type MemoryCounterStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryCounterStore creates an empty in-memory counter store
func NewMemoryCounterStore() *MemoryCounterStore {
	return &MemoryCounterStore{values: make(map[string]string)}
}

// Get reads a counter value; missing keys read as 0
func (s *MemoryCounterStore) Get(ctx context.Context, key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	val, ok := s.values[key]
	if !ok {
		return 0, nil
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("corrupt counter value %q for %s: %w", val, key, err)
	}

	return n, nil
}

// Set writes a counter value
func (s *MemoryCounterStore) Set(ctx context.Context, key string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = strconv.Itoa(value)
	return nil
}

// Seed stores a raw string value under a key, bypassing integer encoding.
// Intended for tests exercising corrupt-store behavior.
func (s *MemoryCounterStore) Seed(key, raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = raw
}
