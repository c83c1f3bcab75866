package form

import "time"

// EffectKind identifies a side effect requested from the host environment.
type EffectKind string

const (
	EffectOpen          EffectKind = "open"
	EffectAlert         EffectKind = "alert"
	EffectClipboard     EffectKind = "clipboard"
	EffectScheduleClear EffectKind = "schedule-clear"
)

// Effect is a side effect produced by a transition. Transitions never perform
// effects themselves.
type Effect struct {
	Kind       EffectKind    `json:"kind"`
	URL        string        `json:"url,omitempty"`
	Message    string        `json:"message,omitempty"`
	Text       string        `json:"text,omitempty"`
	Index      int           `json:"-"`
	Generation uint64        `json:"-"`
	After      time.Duration `json:"-"`
}

// OpenURL asks the host to open url in a new browsing context.
func OpenURL(url string) Effect {
	return Effect{Kind: EffectOpen, URL: url}
}

// Alert asks the host for a blocking notification.
func Alert(message string) Effect {
	return Effect{Kind: EffectAlert, Message: message}
}

// Clipboard asks the host to copy text on behalf of row index.
func Clipboard(text string, index int) Effect {
	return Effect{Kind: EffectClipboard, Text: text, Index: index}
}

// ScheduleClear asks for ClearCopied(generation) to run after the indicator window.
func ScheduleClear(generation uint64) Effect {
	return Effect{Kind: EffectScheduleClear, Generation: generation, After: CopiedIndicatorWindow}
}
