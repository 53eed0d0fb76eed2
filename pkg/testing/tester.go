package testing

import (
	"time"

	"github.com/go-drift/sceneui/pkg/errors"
	"github.com/go-drift/sceneui/pkg/render"
)

// Renderable is anything that produces a render tree.
type Renderable interface {
	Render(key string) render.Node
}

// SceneTester renders a widget the way a host renderer would and routes
// taps and text edits back into it. It installs a recording error handler
// for the duration of the test.
type SceneTester struct {
	t      TestingT
	widget Renderable
	key    string
	root   render.Node
	clock  *FakeClock

	errs   []*errors.UIError
	panics []*errors.PanicError
}

// NewSceneTester renders widget once and returns a tester. The previous
// error handler is restored on test cleanup.
func NewSceneTester(t TestingT, widget Renderable) *SceneTester {
	st := &SceneTester{
		t:      t,
		widget: widget,
		key:    "root",
		clock:  NewFakeClock(),
	}
	prev := errors.SetHandler(recorder{st})
	t.Cleanup(func() { errors.SetHandler(prev) })
	st.Pump()
	return st
}

type recorder struct{ st *SceneTester }

func (r recorder) HandleError(err *errors.UIError)    { r.st.errs = append(r.st.errs, err) }
func (r recorder) HandlePanic(err *errors.PanicError) { r.st.panics = append(r.st.panics, err) }

// Pump re-renders the widget and returns the new tree.
func (st *SceneTester) Pump() *render.Node {
	st.root = st.widget.Render(st.key)
	return &st.root
}

// Root returns the most recently rendered tree.
func (st *SceneTester) Root() *render.Node {
	return &st.root
}

// Find evaluates f against the current tree.
func (st *SceneTester) Find(f Finder) FinderResult {
	return Find(&st.root, f)
}

// Tap presses the first displayed match of f, then re-renders.
func (st *SceneTester) Tap(f Finder) error {
	if err := Tap(&st.root, f); err != nil {
		return err
	}
	st.Pump()
	return nil
}

// EnterText types text into the first displayed input matched by f, then
// re-renders.
func (st *SceneTester) EnterText(f Finder, text string) error {
	if err := EnterText(&st.root, f, text); err != nil {
		return err
	}
	st.Pump()
	return nil
}

// Clock returns the tester's fake clock.
func (st *SceneTester) Clock() *FakeClock {
	return st.clock
}

// Advance moves the fake clock forward one frame of d, then re-renders.
func (st *SceneTester) Advance(d time.Duration) {
	st.clock.Advance(d)
	st.Pump()
}

// Snapshot captures the current tree.
func (st *SceneTester) Snapshot() *Snapshot {
	st.t.Helper()
	snap, err := CaptureSnapshot(st.root)
	if err != nil {
		st.t.Fatalf("snapshot: %v", err)
	}
	return snap
}

// Errors returns the errors reported since the tester was created.
func (st *SceneTester) Errors() []*errors.UIError {
	return st.errs
}

// Panics returns the panics recovered since the tester was created.
func (st *SceneTester) Panics() []*errors.PanicError {
	return st.panics
}

// ExpectVisible fails the test unless f matches a displayed node.
func (st *SceneTester) ExpectVisible(f Finder) {
	st.t.Helper()
	if !st.Find(Visible(f)).Exists() {
		st.t.Errorf("expected %s to be visible", f.Description())
	}
}

// ExpectHidden fails the test if f matches any displayed node.
func (st *SceneTester) ExpectHidden(f Finder) {
	st.t.Helper()
	if st.Find(Visible(f)).Exists() {
		st.t.Errorf("expected %s to be hidden", f.Description())
	}
}
