// Package submission implements the delivery state machine shared by the
// contact form and the chat widget.
package submission

// Kind names the active member of a State.
type Kind int

const (
	KindIdle Kind = iota
	KindSubmitting
	KindSuccess
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindIdle:
		return "idle"
	case KindSubmitting:
		return "submitting"
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// State is exactly one of Idle, Submitting, Success or Error. Message is set
// only for Error.
type State struct {
	Kind    Kind
	Message string
}

// FailureMessage is the user-facing text for any delivery failure.
const FailureMessage = "Failed to send message. Please try again."

var (
	Idle       = State{Kind: KindIdle}
	Submitting = State{Kind: KindSubmitting}
	Success    = State{Kind: KindSuccess}
)

// Error returns the Error state carrying msg.
func Error(msg string) State { return State{Kind: KindError, Message: msg} }

func (s State) String() string {
	if s.Kind == KindError {
		return "error(" + s.Message + ")"
	}
	return s.Kind.String()
}
