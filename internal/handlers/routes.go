package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/link-form/internal/ratelimit"
)

// RegisterRoutes registers the form session routes.
func RegisterRoutes(api huma.API, h *SessionHandler) {
	// POST /sessions - one session per page load; rate limited per client
	huma.Register(api, huma.Operation{
		OperationID:   "create-session",
		Method:        http.MethodPost,
		Path:          "/sessions",
		Summary:       "Start a form session",
		Tags:          []string{"Sessions"},
		DefaultStatus: http.StatusCreated,
		Metadata:      map[string]any{ratelimit.MetadataKey: true},
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID: "get-session",
		Method:      http.MethodGet,
		Path:        "/sessions/{id}",
		Summary:     "Render the form",
		Tags:        []string{"Sessions"},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID: "edit-field",
		Method:      http.MethodPut,
		Path:        "/sessions/{id}/entries/{index}/{field}",
		Summary:     "Edit one field of an entry",
		Tags:        []string{"Entries"},
	}, h.EditField)

	huma.Register(api, huma.Operation{
		OperationID: "add-row",
		Method:      http.MethodPost,
		Path:        "/sessions/{id}/entries",
		Summary:     "Add a blank entry",
		Description: "Appends a blank entry. Does nothing once the form holds the maximum number of entries.",
		Tags:        []string{"Entries"},
	}, h.AddRow)

	huma.Register(api, huma.Operation{
		OperationID: "shorten-all",
		Method:      http.MethodPost,
		Path:        "/sessions/{id}/shorten",
		Summary:     "Shorten all filled entries",
		Tags:        []string{"Entries"},
	}, h.Shorten)

	huma.Register(api, huma.Operation{
		OperationID: "activate-link",
		Method:      http.MethodPost,
		Path:        "/sessions/{id}/entries/{index}/activate",
		Summary:     "Follow a short link",
		Description: "Returns an open effect for unprotected entries and opens the password gate otherwise.",
		Tags:        []string{"Links"},
	}, h.Activate)

	huma.Register(api, huma.Operation{
		OperationID: "copy-link",
		Method:      http.MethodPost,
		Path:        "/sessions/{id}/entries/{index}/copy",
		Summary:     "Record a copy of a short link",
		Description: "The page writes the clipboard first and reports the outcome. The copied indicator only shows when the write succeeded.",
		Tags:        []string{"Links"},
	}, h.Copy)

	huma.Register(api, huma.Operation{
		OperationID: "verify-password",
		Method:      http.MethodPost,
		Path:        "/sessions/{id}/modal/verify",
		Summary:     "Submit the password gate",
		Tags:        []string{"Password gate"},
	}, h.Verify)

	huma.Register(api, huma.Operation{
		OperationID: "cancel-password",
		Method:      http.MethodPost,
		Path:        "/sessions/{id}/modal/cancel",
		Summary:     "Dismiss the password gate",
		Tags:        []string{"Password gate"},
	}, h.Cancel)
}
