package task

import (
	"errors"
	"fmt"
)

// Failure kinds. Every error produced by this module unwraps to exactly one
// of these, so callers can branch with errors.Is.
var (
	ErrIO              = errors.New("IO error")
	ErrParse           = errors.New("parse error")
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("not found")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrSerialization   = errors.New("serialization error")
)

// Error is the concrete error type shared by the task, storage and command
// layers.
type Error struct {
	Kind error
	Msg  string
	ID   uint32 // set for ErrNotFound
	Err  error  // underlying cause, if any
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case errors.Is(e.Kind, ErrNotFound):
		return fmt.Sprintf("task #%d not found", e.ID)
	case e.Err != nil && e.Msg != "":
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	default:
		return e.Kind.Error()
	}
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// IOError wraps a file system failure.
func IOError(msg string, err error) error {
	return &Error{Kind: ErrIO, Msg: msg, Err: err}
}

func ParseErrorf(format string, args ...any) error {
	return &Error{Kind: ErrParse, Msg: fmt.Sprintf(format, args...)}
}

func ValidationErrorf(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Msg: fmt.Sprintf(format, args...)}
}

func NotFound(id uint32) error {
	return &Error{Kind: ErrNotFound, ID: id}
}

func InvalidPriority(text string) error {
	return &Error{Kind: ErrInvalidPriority, Msg: text}
}

func InvalidStatus(text string) error {
	return &Error{Kind: ErrInvalidStatus, Msg: text}
}

func SerializationErrorf(format string, args ...any) error {
	return &Error{Kind: ErrSerialization, Msg: fmt.Sprintf(format, args...)}
}
