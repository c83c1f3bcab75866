package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serroba/link-form/internal/analytics"
)

// Schema creates the table Postgres writes into.
const Schema = `
CREATE TABLE IF NOT EXISTS form_events (
	id          BIGSERIAL PRIMARY KEY,
	topic       TEXT        NOT NULL,
	session_id  TEXT        NOT NULL,
	short_url   TEXT,
	payload     JSONB       NOT NULL,
	occurred_at TIMESTAMPTZ NOT NULL
)`

// Postgres stores analytics events in a form_events table.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a new PostgreSQL-backed analytics store.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// Migrate creates the events table if it does not exist.
func (p *Postgres) Migrate(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("migrate form_events: %w", err)
	}

	return nil
}

func (p *Postgres) SaveLinksShortened(ctx context.Context, event *analytics.LinksShortenedEvent) error {
	return p.insert(ctx, analytics.TopicLinksShortened, event.SessionID, "", event.ShortenedAt, event)
}

func (p *Postgres) SaveLinkOpened(ctx context.Context, event *analytics.LinkOpenedEvent) error {
	return p.insert(ctx, analytics.TopicLinkOpened, event.SessionID, event.ShortURL, event.OpenedAt, event)
}

func (p *Postgres) SavePasswordRejected(ctx context.Context, event *analytics.PasswordRejectedEvent) error {
	return p.insert(ctx, analytics.TopicPasswordRejected, event.SessionID, event.ShortURL, event.RejectedAt, event)
}

func (p *Postgres) insert(
	ctx context.Context, topic, sessionID, shortURL string, at time.Time, event any,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO form_events (topic, session_id, short_url, payload, occurred_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err = p.pool.Exec(ctx, query, topic, sessionID, nullableString(shortURL), payload, at)

	return err
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

var _ analytics.Store = (*Postgres)(nil)
