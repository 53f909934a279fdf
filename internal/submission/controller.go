package submission

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ziadkadry99/siteshell/internal/event"
	"github.com/ziadkadry99/siteshell/internal/relay"
	"github.com/ziadkadry99/siteshell/internal/timer"
)

// Field identifies one editable payload field.
type Field string

const (
	FieldFirstName Field = "firstName"
	FieldLastName  Field = "lastName"
	FieldEmail     Field = "email"
	FieldPhone     Field = "phone"
	FieldSubject   Field = "subject"
	FieldMessage   Field = "message"
)

// Controller owns the state of one form's submissions.
//
// Transitions happen under mu and are published through an ordered bus.
// gen increases whenever a submission starts or the controller is reset, so a
// relay result or auto-reset that belongs to an older generation is dropped.
type Controller struct {
	mu      sync.Mutex
	state   State
	payload relay.MessagePayload
	gen     uint64
	closed  bool

	sender    relay.Sender
	onSuccess SuccessStrategy
	logger    *zap.Logger

	resetTimer timer.Handle
	inflight   sync.WaitGroup
	bus        event.Bus[State]
}

// NewController creates a Controller in the Idle state. A nil logger disables
// logging.
func NewController(sender relay.Sender, onSuccess SuccessStrategy, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		state:     Idle,
		sender:    sender,
		onSuccess: onSuccess,
		logger:    logger,
	}
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Payload returns the current field values.
func (c *Controller) Payload() relay.MessagePayload {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.payload
}

// Subscribe registers fn to receive every state transition in order.
func (c *Controller) Subscribe(fn func(State)) (unsubscribe func()) {
	return c.bus.Subscribe(fn)
}

// Edit sets one field. Editing while in Error clears the error.
func (c *Controller) Edit(f Field, value string) {
	c.mu.Lock()
	setField(&c.payload, f, value)
	if c.state.Kind == KindError {
		c.setLocked(Idle)
	}
	c.mu.Unlock()
	c.bus.Flush()
}

// Submit stores p as the current fields and starts delivering it. It returns
// false without doing anything when a submission is already in flight or the
// controller is closed. A pending auto-reset from an earlier success is
// cancelled.
func (c *Controller) Submit(p relay.MessagePayload) bool {
	c.mu.Lock()
	if c.closed || c.state.Kind == KindSubmitting {
		c.mu.Unlock()
		return false
	}

	c.resetTimer.Cancel()
	if c.state.Kind != KindIdle {
		c.setLocked(Idle)
	}
	c.payload = p
	c.gen++
	gen := c.gen
	c.setLocked(Submitting)
	c.inflight.Add(1)
	c.mu.Unlock()
	c.bus.Flush()

	id := uuid.New().String()
	c.logger.Debug("submission started",
		zap.String("submission_id", id),
		zap.String("subject", p.Subject))

	go func() {
		defer c.inflight.Done()
		err := c.sender.Send(context.Background(), p)
		c.complete(gen, id, err)
	}()
	return true
}

// complete applies a relay result if it still belongs to the current
// generation.
func (c *Controller) complete(gen uint64, id string, err error) {
	c.mu.Lock()
	if c.closed || gen != c.gen || c.state.Kind != KindSubmitting {
		c.mu.Unlock()
		c.logger.Debug("discarding stale relay result", zap.String("submission_id", id))
		return
	}

	if err != nil {
		c.setLocked(Error(FailureMessage))
		c.mu.Unlock()
		c.bus.Flush()
		c.logger.Warn("submission failed", zap.String("submission_id", id), zap.Error(err))
		return
	}

	c.payload = relay.MessagePayload{}
	c.setLocked(Success)

	var after func()
	switch s := c.onSuccess.(type) {
	case AutoReset:
		c.resetTimer.Schedule(s.Delay, func() { c.expire(gen, s.Then) })
	case Confirm:
		c.setLocked(Idle)
		after = s.Show
	}
	c.mu.Unlock()
	c.bus.Flush()

	c.logger.Info("submission delivered", zap.String("submission_id", id))
	if after != nil {
		after()
	}
}

// expire is the AutoReset timer callback.
func (c *Controller) expire(gen uint64, then func()) {
	c.mu.Lock()
	if c.closed || gen != c.gen || c.state.Kind != KindSuccess {
		c.mu.Unlock()
		return
	}
	c.setLocked(Idle)
	c.mu.Unlock()
	c.bus.Flush()

	if then != nil {
		then()
	}
}

// Reset returns to Idle right away, as when the owning surface is closed. Any
// pending auto-reset is cancelled and an in-flight result will be ignored.
// Field values are kept.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.resetTimer.Cancel()
	c.gen++
	if c.state.Kind != KindIdle {
		c.setLocked(Idle)
	}
	c.mu.Unlock()
	c.bus.Flush()
}

// Close tears the controller down: timers are cancelled and later relay
// results are dropped. Submit is a no-op afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.gen++
	c.resetTimer.Cancel()
	c.mu.Unlock()
}

// Wait blocks until every relay call started by this controller has returned.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

// setLocked records s and queues it for subscribers. Caller holds mu.
func (c *Controller) setLocked(s State) {
	c.state = s
	c.bus.Post(s)
}

func setField(p *relay.MessagePayload, f Field, v string) {
	switch f {
	case FieldFirstName:
		p.FirstName = v
	case FieldLastName:
		p.LastName = v
	case FieldEmail:
		p.Email = v
	case FieldPhone:
		p.Phone = v
	case FieldSubject:
		p.Subject = v
	case FieldMessage:
		p.Message = v
	}
}
