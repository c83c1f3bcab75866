package store

import (
	"context"
	"sync"
	"time"

	"github.com/serroba/link-form/internal/form"
	"github.com/serroba/link-form/internal/session"
)

type memorySession struct {
	state     form.State
	expiresAt time.Time
}

// MemoryStore is an in-memory implementation of session.Repository.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
	ttl      time.Duration
}

// NewMemoryStore creates a store whose sessions expire ttl after their last save.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memorySession),
		ttl:      ttl,
	}
}

func (m *MemoryStore) Save(_ context.Context, id string, state form.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()

	for key, s := range m.sessions {
		if now.After(s.expiresAt) {
			delete(m.sessions, key)
		}
	}

	m.sessions[id] = memorySession{state: state, expiresAt: now.Add(m.ttl)}

	return nil
}

func (m *MemoryStore) Load(_ context.Context, id string) (form.State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok || time.Now().After(s.expiresAt) {
		return form.State{}, session.ErrNotFound
	}

	return s.state, nil
}

// Len returns the number of sessions held, expired ones included.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}

var _ session.Repository = (*MemoryStore)(nil)
