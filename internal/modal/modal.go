// Package modal holds the password gate shown before a protected link opens.
package modal

// Labels rendered by the gate.
const (
	Title       = "Enter Password"
	Placeholder = "Enter password"
	SubmitLabel = "Submit"
	CancelLabel = "Cancel"
)

// Modal is the gate's local state. Text typed into the field survives closing and
// reopening the gate.
type Modal struct {
	Password string `json:"password"`
}

// View is what the gate renders while open.
type View struct {
	Title       string `json:"title"`
	Placeholder string `json:"placeholder"`
	Password    string `json:"password"`
	SubmitLabel string `json:"submitLabel"`
	CancelLabel string `json:"cancelLabel"`
}

// Input replaces the typed password.
func (m Modal) Input(value string) Modal {
	m.Password = value

	return m
}

// Submit reports the typed password to onVerify.
func (m Modal) Submit(onVerify func(attempt string)) {
	onVerify(m.Password)
}

// Cancel invokes onClose.
func (m Modal) Cancel(onClose func()) {
	onClose()
}

// Render returns nil when the gate is closed.
func (m Modal) Render(open bool) *View {
	if !open {
		return nil
	}

	return &View{
		Title:       Title,
		Placeholder: Placeholder,
		Password:    m.Password,
		SubmitLabel: SubmitLabel,
		CancelLabel: CancelLabel,
	}
}
