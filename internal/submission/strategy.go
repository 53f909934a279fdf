package submission

import "time"

// SuccessStrategy decides what happens after a submission succeeds. It is
// either AutoReset or Confirm.
type SuccessStrategy interface {
	successStrategy()
}

// AutoReset keeps the Success state visible for Delay, then returns to Idle
// and calls Then (if set). The chat widget uses it to close its popover.
type AutoReset struct {
	Delay time.Duration
	Then  func()
}

// Confirm returns to Idle immediately and calls Show, which surfaces a
// confirmation outside the controller.
type Confirm struct {
	Show func()
}

func (AutoReset) successStrategy() {}
func (Confirm) successStrategy()   {}
