package store

import (
	"context"

	"github.com/serroba/link-form/internal/analytics"
	"go.uber.org/zap"
)

// Noop is a no-op implementation of analytics.Store that logs events.
type Noop struct {
	logger *zap.Logger
}

// NewNoop creates a new no-op analytics store.
func NewNoop(logger *zap.Logger) *Noop {
	return &Noop{logger: logger}
}

func (n *Noop) SaveLinksShortened(_ context.Context, event *analytics.LinksShortenedEvent) error {
	n.logger.Info("links shortened event received",
		zap.String("session", event.SessionID),
		zap.Int("count", event.Count),
		zap.Time("shortenedAt", event.ShortenedAt),
	)

	return nil
}

func (n *Noop) SaveLinkOpened(_ context.Context, event *analytics.LinkOpenedEvent) error {
	n.logger.Info("link opened event received",
		zap.String("session", event.SessionID),
		zap.String("shortUrl", event.ShortURL),
		zap.Bool("protected", event.Protected),
		zap.Time("openedAt", event.OpenedAt),
	)

	return nil
}

func (n *Noop) SavePasswordRejected(_ context.Context, event *analytics.PasswordRejectedEvent) error {
	n.logger.Info("password rejected event received",
		zap.String("session", event.SessionID),
		zap.String("shortUrl", event.ShortURL),
		zap.Time("rejectedAt", event.RejectedAt),
	)

	return nil
}

var _ analytics.Store = (*Noop)(nil)
