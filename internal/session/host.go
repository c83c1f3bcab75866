package session

import "context"

// Host carries out effects in the user's environment.
type Host interface {
	// Open opens url in a new browsing context.
	Open(url string)
	// Alert shows a blocking notification.
	Alert(message string)
	// WriteClipboard copies text.
	WriteClipboard(ctx context.Context, text string) error
}
