package frame

import "time"

// Timer fires a callback once after a duration of stepped frame time.
//
// A Timer owns at most one system on its scheduler. It removes that system
// before invoking the callback, and Stop removes it early, so a stopped or
// fired timer never calls back again until restarted.
type Timer struct {
	scheduler Scheduler
	duration  time.Duration
	callback  func()

	remaining time.Duration
	id        SystemID
	active    bool
}

// NewTimer returns a stopped timer.
func NewTimer(scheduler Scheduler, duration time.Duration, callback func()) *Timer {
	return &Timer{
		scheduler: scheduler,
		duration:  duration,
		callback:  callback,
		remaining: duration,
	}
}

// Start begins counting down. It does nothing if the timer is already running
// or has no scheduler.
func (t *Timer) Start() {
	if t.active || t.scheduler == nil {
		return
	}
	t.remaining = t.duration
	t.id = t.scheduler.AddSystem(t.step)
	t.active = true
}

// Stop cancels the countdown and resets it.
func (t *Timer) Stop() {
	if !t.active {
		return
	}
	t.scheduler.RemoveSystem(t.id)
	t.active = false
	t.id = 0
	t.remaining = t.duration
}

// Active reports whether the timer is counting down.
func (t *Timer) Active() bool {
	return t.active
}

// Remaining returns the time left before the callback fires.
func (t *Timer) Remaining() time.Duration {
	return t.remaining
}

// Duration returns the configured countdown.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

func (t *Timer) step(dt time.Duration) {
	if !t.active {
		return
	}
	t.remaining -= dt
	if t.remaining > 0 {
		return
	}
	t.Stop()
	if t.callback != nil {
		t.callback()
	}
}
