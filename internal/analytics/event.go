package analytics

import "time"

const (
	TopicLinksShortened   = "links.shortened"
	TopicLinkOpened       = "link.opened"
	TopicPasswordRejected = "password.rejected"
)

// LinksShortenedEvent is emitted when a form submission produces short links.
type LinksShortenedEvent struct {
	SessionID   string    `json:"sessionId"`
	Count       int       `json:"count"`
	ShortenedAt time.Time `json:"shortenedAt"`
	ClientIP    string    `json:"clientIp"`
	UserAgent   string    `json:"userAgent"`
}

// LinkOpenedEvent is emitted when a short link is followed, directly or after the
// password gate.
type LinkOpenedEvent struct {
	SessionID string    `json:"sessionId"`
	ShortURL  string    `json:"shortUrl"`
	Protected bool      `json:"protected"`
	OpenedAt  time.Time `json:"openedAt"`
	ClientIP  string    `json:"clientIp"`
	UserAgent string    `json:"userAgent"`
	Referrer  string    `json:"referrer,omitempty"`
}

// PasswordRejectedEvent is emitted for every wrong password attempt.
type PasswordRejectedEvent struct {
	SessionID  string    `json:"sessionId"`
	ShortURL   string    `json:"shortUrl"`
	RejectedAt time.Time `json:"rejectedAt"`
	ClientIP   string    `json:"clientIp"`
}
