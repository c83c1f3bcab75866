package ratelimit

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// MetadataKey marks huma operations that are subject to the limiter.
const MetadataKey = "rateLimit"

// Limiter defines the interface for rate limiting.
type Limiter interface {
	// Allow checks if a request from the given key should be allowed.
	Allow(ctx context.Context, key string) (allowed bool, err error)
}

// SlidingWindowLimiter allows at most limit hits per key within window.
type SlidingWindowLimiter struct {
	store  Store
	limit  int64
	window time.Duration
}

// NewSlidingWindowLimiter creates a new sliding window rate limiter.
func NewSlidingWindowLimiter(store Store, limit int64, window time.Duration) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		store:  store,
		limit:  limit,
		window: window,
	}
}

func (l *SlidingWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := l.store.Record(ctx, key, l.window)
	if err != nil {
		return false, err
	}

	return count <= l.limit, nil
}

// Limited reports whether op opted into rate limiting.
func Limited(op *huma.Operation) bool {
	if op == nil || op.Metadata == nil {
		return false
	}

	limited, _ := op.Metadata[MetadataKey].(bool)

	return limited
}
