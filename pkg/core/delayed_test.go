package core

import (
	"testing"
	"time"

	"github.com/go-drift/sceneui/pkg/frame"
)

type flash struct {
	DelayedHiding
}

func newFlash(startHidden bool, d time.Duration, s frame.Scheduler) *flash {
	f := &flash{}
	f.Init(startHidden, d, s)
	return f
}

func TestDelayedHiding_AutoHide(t *testing.T) {
	loop := frame.NewLoop()
	f := newFlash(true, 3*time.Second, loop)
	if f.Counting() || loop.Len() != 0 {
		t.Fatal("hidden element must not count down")
	}

	f.Show()
	if !f.Counting() {
		t.Fatal("Show should start the countdown")
	}
	loop.Step(2 * time.Second)
	if !f.Visible() {
		t.Fatal("hid too early")
	}
	loop.Step(time.Second)
	if f.Visible() {
		t.Error("should hide after the duration")
	}
	if loop.Len() != 0 {
		t.Error("countdown should unregister once fired")
	}
}

func TestDelayedHiding_StartsVisible(t *testing.T) {
	loop := frame.NewLoop()
	f := newFlash(false, time.Second, loop)
	if !f.Counting() {
		t.Fatal("visible element with a duration should count down at once")
	}
	loop.Step(time.Second)
	if f.Visible() {
		t.Error("should have hidden")
	}
}

func TestDelayedHiding_HideCancels(t *testing.T) {
	loop := frame.NewLoop()
	f := newFlash(true, time.Second, loop)
	f.Show()
	f.Hide()
	if loop.Len() != 0 {
		t.Error("Hide should cancel the countdown")
	}
	f.Show()
	loop.Step(500 * time.Millisecond)
	f.Dispose()
	loop.Step(time.Second)
	if !f.Visible() || loop.Len() != 0 {
		t.Error("Dispose should cancel without hiding")
	}
}

func TestDelayedHiding_ZeroDuration(t *testing.T) {
	loop := frame.NewLoop()
	f := newFlash(false, 0, loop)
	f.Show()
	loop.Step(time.Hour)
	if !f.Visible() || loop.Len() != 0 {
		t.Error("zero duration should never auto-hide")
	}
}
