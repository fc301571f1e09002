// Package apperr defines the error values shared across timecard.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error so that callers can react to the category
// without matching on message text.
type Kind string

const (
	Unknown         Kind = "unknown"
	Validation      Kind = "validation"
	NotFound        Kind = "not_found"
	Transport       Kind = "transport"
	Conflict        Kind = "conflict"
	TimerRunning    Kind = "timer_running"
	TimerNotRunning Kind = "timer_not_running"
)

// Error is the concrete error type used throughout the application.
type Error struct {
	Err     error
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches two *Error values by their Kind so that sentinel errors
// can be compared with errors.Is after being wrapped with a cause.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return e.Kind == t.Kind && (t.Message == "" || t.Message == e.Message)
}

// Wrap returns a copy of e with err recorded as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Err:     err,
		Kind:    e.Kind,
		Message: e.Message,
	}
}

// Fmt returns a copy of e with its message formatted with args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Err:     e.Err,
		Kind:    e.Kind,
		Message: fmt.Sprintf(e.Message, args...),
	}
}

// IsKind reports whether err is an *Error of the specified kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}

	return e.Kind == kind
}
