package handlers

import (
	"github.com/serroba/link-form/internal/form"
	"github.com/serroba/link-form/internal/modal"
)

// EntryView is one rendered form row. Passwords are never sent back.
type EntryView struct {
	Index           int    `json:"index"`
	LongURL         string `json:"longUrl"`
	CustomCode      string `json:"customCode"`
	ValidityMinutes string `json:"validityMinutes"`
	Protected       bool   `json:"protected"`
	ShortURL        string `json:"shortUrl,omitempty"`
	ValidFor        string `json:"validFor,omitempty"`
	Copied          bool   `json:"copied"`
}

// View is the rendered page state.
type View struct {
	SessionID  string      `json:"sessionId"`
	Entries    []EntryView `json:"entries"`
	CanAddRow  bool        `json:"canAddRow"`
	MaxEntries int         `json:"maxEntries"`
	Modal      *modal.View `json:"modal,omitempty"`
}

// Effect is a side effect the page must carry out.
type Effect struct {
	Kind    string `json:"kind"              doc:"open or alert" enum:"open,alert"`
	URL     string `json:"url,omitempty"`
	Message string `json:"message,omitempty"`
}

// SessionResponse carries the new view and the effects it produced.
type SessionResponse struct {
	Body struct {
		View    View     `json:"view"`
		Effects []Effect `json:"effects"`
		Notice  string   `json:"notice,omitempty" doc:"Non-blocking message for the page"`
	}
}

// SessionPath addresses a session.
type SessionPath struct {
	ID string `doc:"Session id" format:"uuid" path:"id"`
}

// EntryPath addresses one entry of a session.
type EntryPath struct {
	ID    string `doc:"Session id"  format:"uuid" path:"id"`
	Index int    `doc:"Entry index" minimum:"0"   path:"index"`
}

// EditFieldRequest replaces one field of an entry.
type EditFieldRequest struct {
	ID    string `doc:"Session id"  format:"uuid"                                     path:"id"`
	Index int    `doc:"Entry index" minimum:"0"                                       path:"index"`
	Field string `doc:"Field name"  enum:"longUrl,customCode,validityMinutes,password" path:"field"`
	Body  struct {
		Value string `doc:"New field text" json:"value"`
	}
}

// CopyRequest reports the page's clipboard write of an entry's short link.
type CopyRequest struct {
	ID    string `doc:"Session id"  format:"uuid" path:"id"`
	Index int    `doc:"Entry index" minimum:"0"   path:"index"`
	Body  struct {
		Written bool   `doc:"Whether the clipboard write succeeded" json:"written"`
		Error   string `doc:"Failure reported by the page"          json:"error,omitempty"`
	}
}

// VerifyRequest submits the password gate.
type VerifyRequest struct {
	ID   string `doc:"Session id" format:"uuid" path:"id"`
	Body struct {
		Password string `doc:"Password attempt" json:"password"`
	}
}

// NewView renders state for the page.
func NewView(id string, state form.State) View {
	copied, hasCopied := state.Copied()

	view := View{
		SessionID:  id,
		Entries:    make([]EntryView, len(state.Entries)),
		CanAddRow:  state.CanAddRow(),
		MaxEntries: form.MaxEntries,
		Modal:      state.Modal.Render(state.ModalOpen),
	}

	for i, e := range state.Entries {
		row := EntryView{
			Index:           i,
			LongURL:         e.LongURL,
			CustomCode:      e.CustomCode,
			ValidityMinutes: e.ValidityMinutes,
			Protected:       e.Protected(),
			ShortURL:        e.ShortURL,
			Copied:          hasCopied && copied == i,
		}

		if e.Shortened() {
			row.ValidFor = "Valid for: " + form.EffectiveValidity(e.ValidityMinutes) + " minutes"
		}

		view.Entries[i] = row
	}

	return view
}
