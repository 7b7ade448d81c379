package viewer

import "time"

// Clock is the time source for timed behaviour.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// IdleReturn is a cancellable one-shot timer polled from the frame loop, so the
// callback always runs on the loop thread.
type IdleReturn struct {
	clock    Clock
	fire     func()
	deadline time.Time
	armed    bool
}

// NewIdleReturn creates a disarmed timer that calls fire when it elapses.
func NewIdleReturn(clock Clock, fire func()) *IdleReturn {
	return &IdleReturn{clock: clock, fire: fire}
}

// Arm cancels any pending deadline and starts a new one delay from now.
func (t *IdleReturn) Arm(delay time.Duration) {
	t.deadline = t.clock.Now().Add(delay)
	t.armed = true
}

// Cancel drops the pending deadline, if any.
func (t *IdleReturn) Cancel() {
	t.armed = false
}

// Armed reports whether a deadline is pending.
func (t *IdleReturn) Armed() bool {
	return t.armed
}

// Poll fires the callback once if the deadline has passed.
func (t *IdleReturn) Poll() {
	if !t.armed || t.clock.Now().Before(t.deadline) {
		return
	}
	t.armed = false
	t.fire()
}
