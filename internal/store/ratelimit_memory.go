package store

import (
	"context"
	"sync"
	"time"
)

// RateLimitMemoryStore is an in-memory implementation of ratelimit.Store.
type RateLimitMemoryStore struct {
	mu       sync.Mutex
	requests map[string][]time.Time
}

// NewRateLimitMemoryStore creates a new in-memory rate limit store.
func NewRateLimitMemoryStore() *RateLimitMemoryStore {
	return &RateLimitMemoryStore{
		requests: make(map[string][]time.Time),
	}
}

// Record adds a hit for key and returns the hits within window, the new one included.
func (s *RateLimitMemoryStore) Record(_ context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-window)

	hits := s.requests[key]
	kept := hits[:0]

	for _, ts := range hits {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	kept = append(kept, now)
	s.requests[key] = kept

	return int64(len(kept)), nil
}
