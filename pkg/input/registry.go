// Package input binds platform actions (the primary and secondary buttons)
// to widget callbacks.
//
// Widgets depend only on the [ActionRegistry] interface. [Registry] is the
// in-process implementation used by scenes and tests; a host integration can
// supply its own.
package input

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/go-drift/sceneui/pkg/errors"
)

// Action is a platform input action.
type Action int

const (
	// ActionPrimary is the primary action key ("E").
	ActionPrimary Action = iota
	// ActionSecondary is the secondary action key ("F").
	ActionSecondary
)

func (a Action) String() string {
	switch a {
	case ActionPrimary:
		return "primary"
	case ActionSecondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// BindingID identifies one registration. The zero value is never issued.
type BindingID uuid.UUID

// NoBinding is the zero BindingID.
var NoBinding BindingID

// Valid reports whether id was issued by a registry.
func (id BindingID) Valid() bool {
	return id != NoBinding
}

func (id BindingID) String() string {
	return uuid.UUID(id).String()
}

// ActionRegistry accepts action bindings. Unregister must remove exactly the
// registration identified by id.
type ActionRegistry interface {
	Register(action Action, callback func()) BindingID
	Unregister(id BindingID)
}

type binding struct {
	id       BindingID
	action   Action
	callback func()
}

// Registry is an in-memory ActionRegistry. Callbacks for an action run in
// registration order. All methods are safe for concurrent use.
type Registry struct {
	mu       sync.Mutex
	bindings []binding
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a binding and returns its handle.
func (r *Registry) Register(action Action, callback func()) BindingID {
	id := BindingID(uuid.New())
	r.mu.Lock()
	r.bindings = append(r.bindings, binding{id: id, action: action, callback: callback})
	r.mu.Unlock()
	return id
}

// Unregister removes a binding. Unknown handles are reported.
func (r *Registry) Unregister(id BindingID) {
	if !id.Valid() {
		return
	}
	r.mu.Lock()
	for i, b := range r.bindings {
		if b.id == id {
			r.bindings = append(r.bindings[:i], r.bindings[i+1:]...)
			r.mu.Unlock()
			return
		}
	}
	r.mu.Unlock()
	errors.Report(&errors.UIError{
		Op:   "input.Unregister",
		Kind: errors.KindBinding,
		Key:  id.String(),
		Err:  fmt.Errorf("binding for %s is not registered", id),
	})
}

// Dispatch runs every callback bound to action and returns how many ran.
// A panicking callback is reported and does not stop the others.
func (r *Registry) Dispatch(action Action) int {
	r.mu.Lock()
	var callbacks []func()
	for _, b := range r.bindings {
		if b.action == action && b.callback != nil {
			callbacks = append(callbacks, b.callback)
		}
	}
	r.mu.Unlock()

	for _, cb := range callbacks {
		invoke(cb)
	}
	return len(callbacks)
}

func invoke(cb func()) {
	defer errors.Recover("input.Dispatch")
	cb()
}

// Active returns the number of bindings for action.
func (r *Registry) Active(action Action) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, b := range r.bindings {
		if b.action == action {
			n++
		}
	}
	return n
}

// IsActive reports whether id is currently registered.
func (r *Registry) IsActive(id BindingID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bindings {
		if b.id == id {
			return true
		}
	}
	return false
}

// Len returns the total number of bindings.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bindings)
}
