// Package errors provides structured error reporting for scene widgets.
//
// Widgets never fail loudly during a frame. Problems such as an unknown
// atlas region or a panicking scene callback are turned into values from
// this package and handed to the global [ErrorHandler].
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid resource table or widget configuration.
	KindConfig
	// KindAtlas indicates an atlas region that could not be resolved.
	KindAtlas
	// KindBinding indicates a misuse of the action registry.
	KindBinding
	// KindSchedule indicates a frame scheduler failure.
	KindSchedule
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindAtlas:
		return "atlas"
	case KindBinding:
		return "binding"
	case KindSchedule:
		return "schedule"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// UIError represents a structured error raised while building or driving widgets.
type UIError struct {
	// Op is the operation that failed (e.g., "resources.Section").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Key names the widget or region involved, if applicable.
	Key string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *UIError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s [%s] key=%s: %v", e.Op, e.Kind, e.Key, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *UIError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "input.Dispatch").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// LookupError reports a missing entry in a resource table.
type LookupError struct {
	// Group is the table group (e.g., "buttons").
	Group string
	// Name is the entry that was requested.
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("no region %q in group %q", e.Name, e.Group)
}

// ErrorHandler receives errors reported by widgets and their collaborators.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *UIError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
