// Package form implements the shortening form as a reducer over immutable snapshots.
//
// Every transition returns a new State and leaves its receiver untouched; side
// effects are returned as Effect values for the caller to carry out.
package form

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/serroba/link-form/internal/modal"
	"github.com/serroba/link-form/internal/shortener"
)

const (
	MaxEntries             = 10
	DefaultValidityMinutes = 30
	DefaultBaseDomain      = "https://sho.rt/"
	CopiedIndicatorWindow  = 2 * time.Second
	WrongPasswordMessage   = "❌ Wrong password!"
)

var (
	ErrIndexOutOfRange = errors.New("entry index out of range")
	ErrNotShortened    = errors.New("entry has no short link")
)

// State is one snapshot of the form.
type State struct {
	Entries []Entry `json:"entries"`
	// CopiedIndex is the row showing the copied indicator, nil when none.
	CopiedIndex *int `json:"copiedIndex,omitempty"`
	// CopyGeneration increases on every successful copy.
	CopyGeneration uint64 `json:"copyGeneration"`
	ModalOpen      bool   `json:"modalOpen"`
	// ActiveLink is a copy of the entry awaiting password verification.
	ActiveLink *Entry      `json:"activeLink,omitempty"`
	Modal      modal.Modal `json:"modal"`
}

// New returns a form with one blank entry.
func New() State {
	return State{Entries: []Entry{{}}}
}

// Copied returns the row showing the copied indicator.
func (s State) Copied() (int, bool) {
	if s.CopiedIndex == nil {
		return 0, false
	}

	return *s.CopiedIndex, true
}

// CanAddRow reports whether another entry fits.
func (s State) CanAddRow() bool {
	return len(s.Entries) < MaxEntries
}

func (s State) entry(index int) (Entry, error) {
	if index < 0 || index >= len(s.Entries) {
		return Entry{}, ErrIndexOutOfRange
	}

	return s.Entries[index], nil
}

// EditField replaces one field of the entry at index.
func (s State) EditField(index int, field Field, value string) (State, error) {
	if _, err := ParseField(string(field)); err != nil {
		return s, err
	}

	e, err := s.entry(index)
	if err != nil {
		return s, err
	}

	next := s
	next.Entries = slices.Clone(s.Entries)
	next.Entries[index] = e.with(field, value)

	return next, nil
}

// AddRow appends a blank entry unless the form is full.
func (s State) AddRow() State {
	if !s.CanAddRow() {
		return s
	}

	next := s
	next.Entries = append(slices.Clone(s.Entries), Entry{})

	return next
}

// SubmitAll derives a short link for every entry with a long URL. Entries without
// one are carried over unchanged.
func (s State) SubmitAll(generate shortener.CodeGenerator, baseDomain string) State {
	next := s
	next.Entries = make([]Entry, len(s.Entries))

	for i, e := range s.Entries {
		if strings.TrimSpace(e.LongURL) == "" {
			next.Entries[i] = e

			continue
		}

		slug := e.CustomCode
		if strings.TrimSpace(slug) == "" {
			slug = generate()
		}

		e.ShortURL = shortener.Compose(baseDomain, slug)
		e.ValidityMinutes = EffectiveValidity(e.ValidityMinutes)
		next.Entries[i] = e
	}

	return next
}

// ActivateLink opens an unprotected entry right away. A protected entry becomes the
// active link and the gate opens.
func (s State) ActivateLink(index int) (State, []Effect, error) {
	e, err := s.entry(index)
	if err != nil {
		return s, nil, err
	}

	if !e.Shortened() {
		return s, nil, ErrNotShortened
	}

	if !e.Protected() {
		return s, []Effect{OpenURL(e.LongURL)}, nil
	}

	next := s
	next.ActiveLink = &e
	next.ModalOpen = true

	return next, nil, nil
}

// Verify compares attempt with the active link's password in plaintext. This is a
// cosmetic gate and offers no confidentiality.
func (s State) Verify(attempt string) (State, []Effect) {
	if s.ActiveLink == nil {
		return s, nil
	}

	if attempt != s.ActiveLink.Password {
		return s, []Effect{Alert(WrongPasswordMessage)}
	}

	effects := []Effect{OpenURL(s.ActiveLink.LongURL)}

	return s.CloseModal(), effects
}

// CloseModal hides the gate and forgets the active link.
func (s State) CloseModal() State {
	next := s
	next.ModalOpen = false
	next.ActiveLink = nil

	return next
}

// InputPassword records text typed into the gate.
func (s State) InputPassword(value string) State {
	next := s
	next.Modal = s.Modal.Input(value)

	return next
}

// SubmitPassword submits the gate and verifies the typed password.
func (s State) SubmitPassword() (State, []Effect) {
	next, effects := s, []Effect(nil)

	s.Modal.Submit(func(attempt string) {
		next, effects = s.Verify(attempt)
	})

	return next, effects
}

// CancelModal dismisses the gate.
func (s State) CancelModal() State {
	next := s

	s.Modal.Cancel(func() {
		next = s.CloseModal()
	})

	return next
}

// RequestCopy returns the clipboard write for the entry's short link.
func (s State) RequestCopy(index int) (Effect, error) {
	e, err := s.entry(index)
	if err != nil {
		return Effect{}, err
	}

	if !e.Shortened() {
		return Effect{}, ErrNotShortened
	}

	return Clipboard(e.ShortURL, index), nil
}

// CopySucceeded shows the copied indicator on index and asks for it to be cleared
// once the indicator window has passed.
func (s State) CopySucceeded(index int) (State, []Effect, error) {
	if _, err := s.entry(index); err != nil {
		return s, nil, err
	}

	next := s
	next.CopyGeneration = s.CopyGeneration + 1
	next.CopiedIndex = &index

	return next, []Effect{ScheduleClear(next.CopyGeneration)}, nil
}

// ClearCopied hides the indicator if no newer copy happened since generation.
func (s State) ClearCopied(generation uint64) State {
	if s.CopyGeneration != generation {
		return s
	}

	next := s
	next.CopiedIndex = nil

	return next
}
