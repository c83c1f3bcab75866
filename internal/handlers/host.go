package handlers

import (
	"context"
	"errors"

	"github.com/serroba/link-form/internal/form"
)

var errNoClipboard = errors.New("no clipboard write reported")

// effectRecorder collects effects for the page to carry out after the response.
// The page writes the clipboard itself before asking to copy, so WriteClipboard
// replays the outcome it reported.
type effectRecorder struct {
	effects   []Effect
	clipboard error
}

func newEffectRecorder() *effectRecorder {
	return &effectRecorder{effects: []Effect{}, clipboard: errNoClipboard}
}

// clipboardReported creates a recorder for a copy whose write the page already tried.
func clipboardReported(written bool, reason string) *effectRecorder {
	r := newEffectRecorder()

	switch {
	case written:
		r.clipboard = nil
	case reason != "":
		r.clipboard = errors.New(reason)
	}

	return r
}

func (r *effectRecorder) Open(url string) {
	r.effects = append(r.effects, Effect{Kind: string(form.EffectOpen), URL: url})
}

func (r *effectRecorder) Alert(message string) {
	r.effects = append(r.effects, Effect{Kind: string(form.EffectAlert), Message: message})
}

func (r *effectRecorder) WriteClipboard(_ context.Context, _ string) error {
	return r.clipboard
}
