package shell

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ziadkadry99/siteshell/internal/relay"
	"github.com/ziadkadry99/siteshell/internal/submission"
)

// ChatSubject is the fixed subject of every chat widget message.
const ChatSubject = "Chat Message"

// DefaultChatResetDelay is how long the chat widget shows its success
// acknowledgement before closing.
const DefaultChatResetDelay = 3000 * time.Millisecond

var chatRequired = []submission.Field{
	submission.FieldFirstName,
	submission.FieldLastName,
	submission.FieldEmail,
	submission.FieldMessage,
}

// ChatWidget is the floating chat popover. Closing it resets its submission
// controller, so a reopened popover never shows a stale outcome.
type ChatWidget struct {
	mu        sync.Mutex
	open      bool
	listening bool // outside-click listener registered

	ctrl *submission.Controller
}

// NewChatWidget creates a closed widget whose success acknowledgement lasts
// resetDelay before the popover closes itself.
func NewChatWidget(sender relay.Sender, resetDelay time.Duration, logger *zap.Logger) *ChatWidget {
	if resetDelay <= 0 {
		resetDelay = DefaultChatResetDelay
	}
	w := &ChatWidget{}
	w.ctrl = submission.NewController(sender, submission.AutoReset{
		Delay: resetDelay,
		Then:  w.Close,
	}, logger)
	return w
}

// Controller returns the widget's submission controller.
func (w *ChatWidget) Controller() *submission.Controller { return w.ctrl }

// IsOpen reports whether the popover is showing.
func (w *ChatWidget) IsOpen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.open
}

// Listening reports whether the outside-click listener is registered.
func (w *ChatWidget) Listening() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.listening
}

// Open shows the popover and registers the outside-click listener.
func (w *ChatWidget) Open() {
	w.mu.Lock()
	w.open = true
	w.listening = true
	w.mu.Unlock()
}

// Close hides the popover, drops the outside-click listener and resets the
// controller to Idle.
func (w *ChatWidget) Close() {
	w.mu.Lock()
	wasOpen := w.open
	w.open = false
	w.listening = false
	w.mu.Unlock()

	if wasOpen {
		w.ctrl.Reset()
	}
}

// Toggle flips the popover.
func (w *ChatWidget) Toggle() {
	if w.IsOpen() {
		w.Close()
		return
	}
	w.Open()
}

// OutsideClick handles a click outside the popover.
func (w *ChatWidget) OutsideClick() {
	if w.Listening() {
		w.Close()
	}
}

// Edit sets a field of the chat message.
func (w *ChatWidget) Edit(f submission.Field, value string) {
	w.ctrl.Edit(f, value)
}

// Missing returns the required chat fields that are still blank.
func (w *ChatWidget) Missing() []submission.Field {
	return missing(w.ctrl.Payload(), chatRequired)
}

// Send submits the current fields with the chat subject. It returns false when
// a required field is blank or a send is already in flight.
func (w *ChatWidget) Send() bool {
	if len(w.Missing()) > 0 {
		return false
	}
	p := w.ctrl.Payload()
	p.Subject = ChatSubject
	return w.ctrl.Submit(p)
}

// teardown hides the widget and resets its controller, cancelling the
// pending auto-reset and dropping any in-flight result. The widget can be
// used again after the shell is remounted.
func (w *ChatWidget) teardown() {
	w.mu.Lock()
	w.open = false
	w.listening = false
	w.mu.Unlock()
	w.ctrl.Reset()
}
