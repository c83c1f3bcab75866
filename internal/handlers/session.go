package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/link-form/internal/form"
	"github.com/serroba/link-form/internal/session"
	"go.uber.org/zap"
)

const clipboardNotice = "Could not copy the link"

// SessionHandler exposes form transitions over HTTP.
type SessionHandler struct {
	manager *session.Manager
	logger  *zap.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(manager *session.Manager, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{manager: manager, logger: logger}
}

func respond(id string, state form.State, recorder *effectRecorder) *SessionResponse {
	resp := &SessionResponse{}
	resp.Body.View = NewView(id, state)
	resp.Body.Effects = []Effect{}

	if recorder != nil {
		resp.Body.Effects = recorder.effects
	}

	return resp
}

func (h *SessionHandler) fail(id string, err error) error {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return huma.Error404NotFound("session not found")
	case errors.Is(err, form.ErrIndexOutOfRange),
		errors.Is(err, form.ErrUnknownField),
		errors.Is(err, form.ErrNotShortened):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		h.logger.Error("session update failed", zap.String("session", id), zap.Error(err))

		return huma.Error500InternalServerError("failed to update session")
	}
}

func (h *SessionHandler) Create(ctx context.Context, _ *struct{}) (*SessionResponse, error) {
	id, state, err := h.manager.Create(ctx)
	if err != nil {
		return nil, h.fail("", err)
	}

	return respond(id, state, nil), nil
}

func (h *SessionHandler) Get(ctx context.Context, req *SessionPath) (*SessionResponse, error) {
	state, err := h.manager.Get(ctx, req.ID)
	if err != nil {
		return nil, h.fail(req.ID, err)
	}

	return respond(req.ID, state, nil), nil
}

func (h *SessionHandler) EditField(ctx context.Context, req *EditFieldRequest) (*SessionResponse, error) {
	field, err := form.ParseField(req.Field)
	if err != nil {
		return nil, h.fail(req.ID, err)
	}

	state, err := h.manager.EditField(ctx, req.ID, req.Index, field, req.Body.Value)
	if err != nil {
		return nil, h.fail(req.ID, err)
	}

	return respond(req.ID, state, nil), nil
}

func (h *SessionHandler) AddRow(ctx context.Context, req *SessionPath) (*SessionResponse, error) {
	state, err := h.manager.AddRow(ctx, req.ID)
	if err != nil {
		return nil, h.fail(req.ID, err)
	}

	return respond(req.ID, state, nil), nil
}

func (h *SessionHandler) Shorten(ctx context.Context, req *SessionPath) (*SessionResponse, error) {
	state, err := h.manager.SubmitAll(ctx, req.ID)
	if err != nil {
		return nil, h.fail(req.ID, err)
	}

	return respond(req.ID, state, nil), nil
}

func (h *SessionHandler) Activate(ctx context.Context, req *EntryPath) (*SessionResponse, error) {
	recorder := newEffectRecorder()

	state, err := h.manager.ActivateLink(ctx, req.ID, req.Index, recorder)
	if err != nil {
		return nil, h.fail(req.ID, err)
	}

	return respond(req.ID, state, recorder), nil
}

func (h *SessionHandler) Copy(ctx context.Context, req *CopyRequest) (*SessionResponse, error) {
	recorder := clipboardReported(req.Body.Written, req.Body.Error)

	state, err := h.manager.Copy(ctx, req.ID, req.Index, recorder)
	if err != nil && !errors.Is(err, session.ErrClipboard) {
		return nil, h.fail(req.ID, err)
	}

	resp := respond(req.ID, state, recorder)
	if err != nil {
		resp.Body.Notice = clipboardNotice
	}

	return resp, nil
}

func (h *SessionHandler) Verify(ctx context.Context, req *VerifyRequest) (*SessionResponse, error) {
	recorder := newEffectRecorder()

	state, err := h.manager.SubmitPassword(ctx, req.ID, req.Body.Password, recorder)
	if err != nil {
		return nil, h.fail(req.ID, err)
	}

	return respond(req.ID, state, recorder), nil
}

func (h *SessionHandler) Cancel(ctx context.Context, req *SessionPath) (*SessionResponse, error) {
	state, err := h.manager.CancelModal(ctx, req.ID)
	if err != nil {
		return nil, h.fail(req.ID, err)
	}

	return respond(req.ID, state, nil), nil
}
