package shell

import (
	"sync"

	"go.uber.org/zap"

	"github.com/ziadkadry99/siteshell/internal/relay"
	"github.com/ziadkadry99/siteshell/internal/submission"
)

var contactRequired = []submission.Field{
	submission.FieldFirstName,
	submission.FieldLastName,
	submission.FieldEmail,
	submission.FieldSubject,
	submission.FieldMessage,
}

// ContactForm is the contact page form. On success it resets at once and
// shows a separate confirmation overlay until the visitor dismisses it.
type ContactForm struct {
	mu          sync.Mutex
	confirmOpen bool

	ctrl *submission.Controller
}

// NewContactForm creates an empty form.
func NewContactForm(sender relay.Sender, logger *zap.Logger) *ContactForm {
	f := &ContactForm{}
	f.ctrl = submission.NewController(sender, submission.Confirm{Show: f.showConfirmation}, logger)
	return f
}

// Controller returns the form's submission controller.
func (f *ContactForm) Controller() *submission.Controller { return f.ctrl }

// Edit sets a form field.
func (f *ContactForm) Edit(field submission.Field, value string) {
	f.ctrl.Edit(field, value)
}

// Missing returns the required fields that are still blank. Phone is optional.
func (f *ContactForm) Missing() []submission.Field {
	return missing(f.ctrl.Payload(), contactRequired)
}

// Submit sends the form. It returns false when a required field is blank or a
// send is already in flight.
func (f *ContactForm) Submit() bool {
	if len(f.Missing()) > 0 {
		return false
	}
	return f.ctrl.Submit(f.ctrl.Payload())
}

// ConfirmationOpen reports whether the confirmation overlay is showing.
func (f *ContactForm) ConfirmationOpen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.confirmOpen
}

// DismissConfirmation hides the confirmation overlay.
func (f *ContactForm) DismissConfirmation() {
	f.mu.Lock()
	f.confirmOpen = false
	f.mu.Unlock()
}

func (f *ContactForm) showConfirmation() {
	f.mu.Lock()
	f.confirmOpen = true
	f.mu.Unlock()
}

func (f *ContactForm) teardown() {
	f.DismissConfirmation()
	f.ctrl.Reset()
}
