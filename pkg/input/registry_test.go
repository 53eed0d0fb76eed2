package input

import (
	"testing"

	"github.com/go-drift/sceneui/pkg/errors"
)

type recordingHandler struct {
	errs   []*errors.UIError
	panics []*errors.PanicError
}

func (h *recordingHandler) HandleError(err *errors.UIError)    { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(err *errors.PanicError) { h.panics = append(h.panics, err) }

func record(t *testing.T) *recordingHandler {
	t.Helper()
	h := &recordingHandler{}
	prev := errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(prev) })
	return h
}

func TestRegistry_RegisterDispatch(t *testing.T) {
	r := NewRegistry()
	var calls []string
	r.Register(ActionPrimary, func() { calls = append(calls, "a") })
	r.Register(ActionSecondary, func() { calls = append(calls, "b") })
	r.Register(ActionPrimary, func() { calls = append(calls, "c") })

	if n := r.Dispatch(ActionPrimary); n != 2 {
		t.Errorf("Dispatch returned %d, want 2", n)
	}
	if len(calls) != 2 || calls[0] != "a" || calls[1] != "c" {
		t.Errorf("calls = %v, want [a c]", calls)
	}
	if r.Active(ActionPrimary) != 2 || r.Active(ActionSecondary) != 1 {
		t.Errorf("active = %d/%d", r.Active(ActionPrimary), r.Active(ActionSecondary))
	}
}

// TestRegistry_Unregister verifies only the identified binding is removed.
func TestRegistry_Unregister(t *testing.T) {
	h := record(t)
	r := NewRegistry()
	first := r.Register(ActionPrimary, func() {})
	second := r.Register(ActionPrimary, func() {})
	if first == second || !first.Valid() {
		t.Fatalf("handles must be distinct and valid: %v %v", first, second)
	}

	r.Unregister(first)
	if r.IsActive(first) || !r.IsActive(second) {
		t.Error("wrong binding removed")
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}

	r.Unregister(NoBinding)
	if len(h.errs) != 0 {
		t.Errorf("NoBinding should be ignored, got %v", h.errs)
	}

	r.Unregister(first)
	if len(h.errs) != 1 || h.errs[0].Kind != errors.KindBinding {
		t.Errorf("expected one binding report, got %v", h.errs)
	}
}

// TestRegistry_DispatchPanic verifies a panicking callback is reported and
// the remaining callbacks still run.
func TestRegistry_DispatchPanic(t *testing.T) {
	h := record(t)
	r := NewRegistry()
	ran := false
	r.Register(ActionSecondary, func() { panic("boom") })
	r.Register(ActionSecondary, func() { ran = true })

	r.Dispatch(ActionSecondary)
	if !ran {
		t.Error("second callback did not run")
	}
	if len(h.panics) != 1 || h.panics[0].Op != "input.Dispatch" {
		t.Errorf("panics = %v", h.panics)
	}
}

// TestRegistry_UnregisterDuringDispatch verifies callbacks may remove their
// own binding.
func TestRegistry_UnregisterDuringDispatch(t *testing.T) {
	r := NewRegistry()
	var id BindingID
	count := 0
	id = r.Register(ActionPrimary, func() {
		count++
		r.Unregister(id)
	})
	r.Dispatch(ActionPrimary)
	r.Dispatch(ActionPrimary)
	if count != 1 {
		t.Errorf("callback ran %d times, want 1", count)
	}
}

func TestAction_String(t *testing.T) {
	if ActionPrimary.String() != "primary" || ActionSecondary.String() != "secondary" || Action(9).String() != "unknown" {
		t.Error("unexpected action names")
	}
}
