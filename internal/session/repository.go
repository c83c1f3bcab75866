package session

import (
	"context"
	"errors"

	"github.com/serroba/link-form/internal/form"
)

var ErrNotFound = errors.New("session not found")

// Repository keeps one form snapshot per session. Implementations expire sessions
// that have not been saved for their configured TTL.
type Repository interface {
	Save(ctx context.Context, id string, state form.State) error
	// Load returns ErrNotFound for unknown or expired sessions.
	Load(ctx context.Context, id string) (form.State, error)
}
