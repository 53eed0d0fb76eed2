// Package frame drives per-frame callbacks ("systems") for widgets that
// need to act over time, such as auto-hiding announcements.
//
// The host calls [Loop.Step] or [Loop.Tick] once per frame. Widgets only see
// the [Scheduler] interface and use [Timer] for single-shot callbacks.
package frame

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-drift/sceneui/pkg/errors"
)

// System is called once per frame with the time since the previous frame.
type System func(dt time.Duration)

// SystemID identifies a registered system. Zero is never issued.
type SystemID uint64

// Scheduler registers per-frame systems.
type Scheduler interface {
	AddSystem(system System) SystemID
	RemoveSystem(id SystemID)
}

type entry struct {
	id     SystemID
	system System
}

// Loop is a Scheduler stepped explicitly by its owner. Systems run in
// registration order. A system removed during a step is not called later in
// that step; a system added during a step first runs on the next one.
type Loop struct {
	mu      sync.Mutex
	nextID  SystemID
	systems []entry
	last    time.Time
	frames  uint64
}

// NewLoop returns an empty loop.
func NewLoop() *Loop {
	return &Loop{}
}

// AddSystem registers system and returns its id.
func (l *Loop) AddSystem(system System) SystemID {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	l.systems = append(l.systems, entry{id: l.nextID, system: system})
	return l.nextID
}

// RemoveSystem unregisters a system. Unknown ids are ignored.
func (l *Loop) RemoveSystem(id SystemID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, e := range l.systems {
		if e.id == id {
			l.systems = append(l.systems[:i], l.systems[i+1:]...)
			return
		}
	}
}

// Step runs every registered system with dt. Negative deltas are reported
// and treated as zero.
func (l *Loop) Step(dt time.Duration) {
	if dt < 0 {
		errors.Report(&errors.UIError{
			Op:   "frame.Step",
			Kind: errors.KindSchedule,
			Err:  fmt.Errorf("negative frame delta %v", dt),
		})
		dt = 0
	}

	l.mu.Lock()
	l.frames++
	snapshot := make([]entry, len(l.systems))
	copy(snapshot, l.systems)
	l.mu.Unlock()

	for _, e := range snapshot {
		if !l.registered(e.id) {
			continue
		}
		run(e.system, dt)
	}
}

// Tick steps the loop with the time elapsed since the previous Tick. The
// first Tick steps with a zero delta.
func (l *Loop) Tick(now time.Time) {
	l.mu.Lock()
	var dt time.Duration
	if !l.last.IsZero() {
		dt = now.Sub(l.last)
	}
	l.last = now
	l.mu.Unlock()
	l.Step(dt)
}

// Len returns the number of registered systems.
func (l *Loop) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.systems)
}

// Frames returns how many steps have run.
func (l *Loop) Frames() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frames
}

func (l *Loop) registered(id SystemID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.systems {
		if e.id == id {
			return true
		}
	}
	return false
}

func run(system System, dt time.Duration) {
	defer errors.Recover("frame.Step")
	system(dt)
}
