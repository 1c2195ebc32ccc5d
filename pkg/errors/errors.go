// Package errors provides structured error reporting for the motion engine.
//
// The engine never returns errors from its per-tick operations. Problems it
// can recover from locally (a panicking client callback, a negative start
// delay) are reported to a process-wide [ErrorHandler] instead.
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
	// KindCallback indicates a value-changed or completion callback that
	// panicked. Err is the *PanicError.
	KindCallback
	// KindConfig indicates invalid configuration.
	KindConfig
	// KindDriver indicates misuse of the frame driver or a deferred start.
	KindDriver
)

func (k ErrorKind) String() string {
	switch k {
	case KindCallback:
		return "callback"
	case KindConfig:
		return "config"
	case KindDriver:
		return "driver"
	default:
		return "unknown"
	}
}

// AnimationError represents a structured error in the motion engine.
type AnimationError struct {
	// Op is the operation that failed (e.g., "animation.Start").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// AnimationID identifies the animation involved, if any.
	AnimationID uint64
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *AnimationError) Error() string {
	if e.AnimationID != 0 {
		return fmt.Sprintf("%s [%s] animation=%d: %v", e.Op, e.Kind, e.AnimationID, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *AnimationError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "animation.ValueChanged").
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

// ErrorHandler receives errors reported by the motion engine.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *AnimationError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
