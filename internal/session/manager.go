// Package session runs form transitions for page sessions: it loads and saves
// snapshots, carries out effects and emits analytics events.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/serroba/link-form/internal/analytics"
	"github.com/serroba/link-form/internal/form"
	"github.com/serroba/link-form/internal/messaging"
	"github.com/serroba/link-form/internal/shortener"
	"go.uber.org/zap"
)

var ErrClipboard = errors.New("clipboard write failed")

const clearTimeout = 5 * time.Second

// Publishers are the analytics event sinks used by Manager.
type Publishers struct {
	LinksShortened   messaging.Publish[analytics.LinksShortenedEvent]
	LinkOpened       messaging.Publish[analytics.LinkOpenedEvent]
	PasswordRejected messaging.Publish[analytics.PasswordRejectedEvent]
}

// DiscardPublishers drops every event.
func DiscardPublishers() Publishers {
	return Publishers{
		LinksShortened:   messaging.Discard[analytics.LinksShortenedEvent](),
		LinkOpened:       messaging.Discard[analytics.LinkOpenedEvent](),
		PasswordRejected: messaging.Discard[analytics.PasswordRejectedEvent](),
	}
}

// Manager applies form transitions to stored sessions. Events for one session are
// applied one at a time.
type Manager struct {
	repo       Repository
	generate   shortener.CodeGenerator
	baseDomain string
	scheduler  Scheduler
	publish    Publishers
	logger     *zap.Logger
	locks      stripedLocks
	now        func() time.Time
}

// NewManager creates a session manager.
func NewManager(
	repo Repository,
	generate shortener.CodeGenerator,
	baseDomain string,
	scheduler Scheduler,
	publish Publishers,
	logger *zap.Logger,
) *Manager {
	return &Manager{
		repo:       repo,
		generate:   generate,
		baseDomain: baseDomain,
		scheduler:  scheduler,
		publish:    publish,
		logger:     logger,
		now:        time.Now,
	}
}

// Create starts a session holding a fresh form.
func (m *Manager) Create(ctx context.Context) (string, form.State, error) {
	id := uuid.NewString()
	state := form.New()

	if err := m.repo.Save(ctx, id, state); err != nil {
		return "", form.State{}, fmt.Errorf("create session: %w", err)
	}

	m.logger.Debug("session created", zap.String("session", id))

	return id, state, nil
}

// Get returns the current snapshot.
func (m *Manager) Get(ctx context.Context, id string) (form.State, error) {
	return m.repo.Load(ctx, id)
}

// EditField replaces one field of one entry.
func (m *Manager) EditField(ctx context.Context, id string, index int, field form.Field, value string) (form.State, error) {
	return m.update(ctx, id, nil, func(s form.State) (form.State, []form.Effect, error) {
		next, err := s.EditField(index, field, value)

		return next, nil, err
	})
}

// AddRow appends a blank entry if there is room.
func (m *Manager) AddRow(ctx context.Context, id string) (form.State, error) {
	return m.update(ctx, id, nil, func(s form.State) (form.State, []form.Effect, error) {
		return s.AddRow(), nil, nil
	})
}

// SubmitAll derives short links for every filled entry.
func (m *Manager) SubmitAll(ctx context.Context, id string) (form.State, error) {
	next, err := m.update(ctx, id, nil, func(s form.State) (form.State, []form.Effect, error) {
		return s.SubmitAll(m.generate, m.baseDomain), nil, nil
	})
	if err != nil {
		return next, err
	}

	count := 0

	for _, e := range next.Entries {
		if e.Shortened() {
			count++
		}
	}

	meta := analytics.RequestMetaFromContext(ctx)
	m.emit("links shortened", m.publish.LinksShortened(&analytics.LinksShortenedEvent{
		SessionID:   id,
		Count:       count,
		ShortenedAt: m.now(),
		ClientIP:    meta.ClientIP,
		UserAgent:   meta.UserAgent,
	}))

	return next, nil
}

// ActivateLink follows the short link of entry index, or opens the password gate
// when the entry is protected.
func (m *Manager) ActivateLink(ctx context.Context, id string, index int, host Host) (form.State, error) {
	var opened string

	next, err := m.update(ctx, id, host, func(s form.State) (form.State, []form.Effect, error) {
		next, effects, err := s.ActivateLink(index)
		if err == nil && len(effects) > 0 {
			opened = s.Entries[index].ShortURL
		}

		return next, effects, err
	})
	if err != nil {
		return next, err
	}

	if opened != "" {
		m.linkOpened(ctx, id, opened, false)
	}

	return next, nil
}

// SubmitPassword types attempt into the gate and submits it.
func (m *Manager) SubmitPassword(ctx context.Context, id, attempt string, host Host) (form.State, error) {
	var (
		link     string
		accepted bool
		rejected bool
	)

	next, err := m.update(ctx, id, host, func(s form.State) (form.State, []form.Effect, error) {
		if s.ActiveLink != nil {
			link = s.ActiveLink.ShortURL
		}

		next, effects := s.InputPassword(attempt).SubmitPassword()

		for _, e := range effects {
			switch e.Kind {
			case form.EffectOpen:
				accepted = true
			case form.EffectAlert:
				rejected = true
			}
		}

		return next, effects, nil
	})
	if err != nil {
		return next, err
	}

	switch {
	case accepted:
		m.linkOpened(ctx, id, link, true)
	case rejected:
		meta := analytics.RequestMetaFromContext(ctx)
		m.emit("password rejected", m.publish.PasswordRejected(&analytics.PasswordRejectedEvent{
			SessionID:  id,
			ShortURL:   link,
			RejectedAt: m.now(),
			ClientIP:   meta.ClientIP,
		}))
	}

	return next, nil
}

// CancelModal dismisses the password gate.
func (m *Manager) CancelModal(ctx context.Context, id string) (form.State, error) {
	return m.update(ctx, id, nil, func(s form.State) (form.State, []form.Effect, error) {
		return s.CancelModal(), nil, nil
	})
}

// Copy writes the short link of entry index through host. On success the copied
// indicator shows for form.CopiedIndicatorWindow. A failed write leaves the state
// unchanged and returns ErrClipboard.
func (m *Manager) Copy(ctx context.Context, id string, index int, host Host) (form.State, error) {
	var writeErr error

	next, err := m.update(ctx, id, host, func(s form.State) (form.State, []form.Effect, error) {
		effect, err := s.RequestCopy(index)
		if err != nil {
			return s, nil, err
		}

		if writeErr = host.WriteClipboard(ctx, effect.Text); writeErr != nil {
			return s, nil, nil
		}

		return s.CopySucceeded(index)
	})
	if err != nil {
		return next, err
	}

	if writeErr != nil {
		m.logger.Warn("clipboard write failed",
			zap.String("session", id),
			zap.Int("index", index),
			zap.Error(writeErr),
		)

		return next, fmt.Errorf("%w: %w", ErrClipboard, writeErr)
	}

	return next, nil
}

func (m *Manager) clearCopied(id string, generation uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), clearTimeout)
	defer cancel()

	_, err := m.update(ctx, id, nil, func(s form.State) (form.State, []form.Effect, error) {
		return s.ClearCopied(generation), nil, nil
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		m.logger.Error("failed to clear copied indicator",
			zap.String("session", id),
			zap.Error(err),
		)
	}
}

type transition func(form.State) (form.State, []form.Effect, error)

// update loads the session, applies fn, saves the result and performs its effects
// while holding the session's lock.
func (m *Manager) update(ctx context.Context, id string, host Host, fn transition) (form.State, error) {
	unlock := m.locks.lock(id)
	defer unlock()

	current, err := m.repo.Load(ctx, id)
	if err != nil {
		return form.State{}, err
	}

	next, effects, err := fn(current)
	if err != nil {
		return current, err
	}

	if err := m.repo.Save(ctx, id, next); err != nil {
		return current, fmt.Errorf("save session: %w", err)
	}

	for _, effect := range effects {
		m.perform(id, effect, host)
	}

	return next, nil
}

func (m *Manager) perform(id string, effect form.Effect, host Host) {
	switch effect.Kind {
	case form.EffectOpen:
		if host != nil {
			host.Open(effect.URL)
		}
	case form.EffectAlert:
		if host != nil {
			host.Alert(effect.Message)
		}
	case form.EffectScheduleClear:
		generation := effect.Generation
		m.scheduler.AfterFunc(effect.After, func() { m.clearCopied(id, generation) })
	}
}

func (m *Manager) linkOpened(ctx context.Context, id, shortURL string, protected bool) {
	meta := analytics.RequestMetaFromContext(ctx)
	m.emit("link opened", m.publish.LinkOpened(&analytics.LinkOpenedEvent{
		SessionID: id,
		ShortURL:  shortURL,
		Protected: protected,
		OpenedAt:  m.now(),
		ClientIP:  meta.ClientIP,
		UserAgent: meta.UserAgent,
		Referrer:  meta.Referrer,
	}))
}

func (m *Manager) emit(what string, err error) {
	if err != nil {
		m.logger.Error("failed to publish analytics event",
			zap.String("event", what),
			zap.Error(err),
		)
	}
}
