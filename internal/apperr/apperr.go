// Package apperr classifies errors returned by the service layer so that
// transports can map them without inspecting messages.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrDependency = errors.New("dependency failed")
)

// Error carries the failing operation and a caller-facing message
type Error struct {
	Kind error
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.Msg != "":
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Msg)
	}
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Validation reports a violated input constraint
func Validation(op, format string, args ...any) error {
	return &Error{Kind: ErrValidation, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// NotFound reports a missing or foreign-owned record
func NotFound(op, what string) error {
	return &Error{Kind: ErrNotFound, Op: op, Msg: what + " not found"}
}

// Dependency wraps an unexpected storage failure. Already classified errors
// pass through untouched.
func Dependency(op string, err error) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return err
	}
	return &Error{Kind: ErrDependency, Op: op, Err: err}
}

// Message returns the caller-facing text of err. Dependency causes are hidden.
func Message(err error) string {
	var ae *Error
	if !errors.As(err, &ae) {
		return "internal error"
	}
	if errors.Is(ae.Kind, ErrDependency) {
		return "internal error"
	}
	return ae.Msg
}
