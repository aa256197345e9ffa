// Package errors provides structured error handling for the Motion toolkit.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindEasing indicates an unrecognized easing kind was requested.
	KindEasing
	// KindValue indicates mismatched or non-interpolatable animation values.
	KindValue
	// KindFramework indicates an unknown or unavailable toolkit framework.
	KindFramework
	// KindCallback indicates an update or completion callback failed.
	KindCallback
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindEasing:
		return "easing"
	case KindValue:
		return "value"
	case KindFramework:
		return "framework"
	case KindCallback:
		return "callback"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the Motion toolkit.
type Error struct {
	// Op is the operation that failed (e.g., "animation.Animate").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// ID is the animation or widget key involved, if applicable.
	ID string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s [%s] id=%s: %v", e.Op, e.Kind, e.ID, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an *Error for the given operation and kind. The message is
// formatted fmt.Errorf-style.
func New(op string, kind Kind, format string, args ...any) *Error {
	return &Error{
		Op:        op,
		Kind:      kind,
		Err:       fmt.Errorf(format, args...),
		Timestamp: time.Now(),
	}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}

// Handler receives errors reported by the toolkit. Synchronous validation
// errors are returned to callers directly; the handler only sees errors
// detected asynchronously (callback failures, recovered panics).
type Handler interface {
	HandleError(err *Error)
}
