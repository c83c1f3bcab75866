package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/link-form/internal/form"
	"github.com/serroba/link-form/internal/session"
)

// RedisStore is a Redis implementation of session.Repository. Each save resets the
// key's TTL.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a new Redis-backed session store.
func NewRedisStore(client redis.UniversalClient, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "form-session:",
		ttl:    ttl,
	}
}

func (r *RedisStore) Save(ctx context.Context, id string, state form.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	return r.client.Set(ctx, r.prefix+id, payload, r.ttl).Err()
}

func (r *RedisStore) Load(ctx context.Context, id string) (form.State, error) {
	payload, err := r.client.Get(ctx, r.prefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return form.State{}, session.ErrNotFound
		}

		return form.State{}, err
	}

	var state form.State
	if err := json.Unmarshal(payload, &state); err != nil {
		return form.State{}, fmt.Errorf("decode session: %w", err)
	}

	return state, nil
}

var _ session.Repository = (*RedisStore)(nil)
