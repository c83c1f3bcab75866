package analytics

import "context"

// Store defines the interface for persisting analytics events.
type Store interface {
	SaveLinksShortened(ctx context.Context, event *LinksShortenedEvent) error
	SaveLinkOpened(ctx context.Context, event *LinkOpenedEvent) error
	SavePasswordRejected(ctx context.Context, event *PasswordRejectedEvent) error
}
