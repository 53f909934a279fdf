package relay

import (
	"context"
	"fmt"
)

// MessagePayload is a visitor-authored message as submitted by the contact
// form or the chat widget. An empty Phone means the visitor did not provide
// one.
type MessagePayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// Sender delivers a payload to the relay endpoint with a single attempt.
// A non-nil error is always a *DeliveryError.
type Sender interface {
	Send(ctx context.Context, p MessagePayload) error
}

// DeliveryError reports that the relay call failed, either in transport or
// because the remote answered with a non-success status.
type DeliveryError struct {
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *DeliveryError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("relay delivery failed: status %d", e.StatusCode)
	}
	return fmt.Sprintf("relay delivery failed: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }
