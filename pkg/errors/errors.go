// Package errors provides structured error reporting for badger.
//
// Badges are decorations: a failure while binding or painting one must never
// take down the host's render pass. Components therefore report problems
// through [Report] and degrade, and callers that care install an
// [ErrorHandler] with [SetHandler].
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
	// KindBind indicates a failure to attach a badge to a host node.
	KindBind
	// KindRender indicates a painting or font error.
	KindRender
	// KindConfig indicates an invalid or unreadable configuration.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindBind:
		return "bind"
	case KindRender:
		return "render"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// BadgeError represents a structured error raised by a badger component.
type BadgeError struct {
	// Op is the operation that failed (e.g., "badge.Bind").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Node is the ID of the view node involved, if any.
	Node string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BadgeError) Error() string {
	if e.Node != "" {
		return fmt.Sprintf("%s [%s] node=%s: %v", e.Op, e.Kind, e.Node, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *BadgeError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "badge.Paint").
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

// ErrorHandler receives errors reported by badger components.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *BadgeError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
