package core

import (
	"time"

	"github.com/go-drift/sceneui/pkg/frame"
)

// DelayedHiding is an element that hides itself once it has been shown for
// a given duration. A zero duration never hides automatically.
//
// Embed it in a widget allocated on the heap and call Init once; the
// countdown callback refers back to the embedded value.
type DelayedHiding struct {
	Object
	duration time.Duration
	timer    *frame.Timer
}

// Init configures the element. If it starts visible with a positive
// duration the countdown begins immediately.
func (d *DelayedHiding) Init(startHidden bool, duration time.Duration, scheduler frame.Scheduler) {
	d.Object = NewObject(startHidden)
	d.duration = duration
	if duration > 0 {
		d.timer = frame.NewTimer(scheduler, duration, d.expire)
	}
	if d.visible {
		d.startTimer()
	}
}

// Show makes the element visible and starts the countdown if none is
// running.
func (d *DelayedHiding) Show() {
	d.Object.Show()
	d.startTimer()
}

// Hide makes the element invisible and cancels the countdown.
func (d *DelayedHiding) Hide() {
	d.Object.Hide()
	d.stopTimer()
}

// Dispose cancels any pending countdown so no callback outlives the widget.
func (d *DelayedHiding) Dispose() {
	d.stopTimer()
}

// Duration returns the auto-hide delay.
func (d *DelayedHiding) Duration() time.Duration { return d.duration }

// Counting reports whether an auto-hide countdown is pending.
func (d *DelayedHiding) Counting() bool {
	return d.timer != nil && d.timer.Active()
}

func (d *DelayedHiding) expire() {
	d.Object.Hide()
}

func (d *DelayedHiding) startTimer() {
	if d.timer != nil {
		d.timer.Start()
	}
}

func (d *DelayedHiding) stopTimer() {
	if d.timer != nil {
		d.timer.Stop()
	}
}
