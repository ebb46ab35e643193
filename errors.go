package tether

import (
	"context"
	"errors"
	"fmt"
)

const (
	canceledMsg = "Operation was canceled"
	deadlineMsg = "Context deadline was exceeded"
)

// A CanceledError is the generic stop signal captured when a Canceler
// fires. It optionally wraps the error that provoked the cancellation.
type CanceledError struct {
	msg   string
	cause error
}

func (e *CanceledError) Error() string { return e.msg }

// Unwrap returns the wrapped provoking error, if any.
func (e *CanceledError) Unwrap() error { return e.cause }

// Canceled marks e as a cancellation cause for IsCanceled. It always
// reports true.
func (e *CanceledError) Canceled() bool { return true }

// A DeadlineError is a stop signal attributable specifically to elapsed
// time. Every DeadlineError is also a CanceledError.
type DeadlineError struct {
	CanceledError
}

// DeadlineExceeded marks e as a deadline cause for IsDeadline. It
// always reports true.
func (e *DeadlineError) DeadlineExceeded() bool { return true }

// IsCanceled reports whether err, anywhere in its wrap chain, is a
// cancellation cause: a CanceledError or DeadlineError, any error
// exposing a Canceled() bool method reporting true, or one of the
// stdlib context sentinels.
func IsCanceled(err error) bool {
	var m interface{ Canceled() bool }
	if errors.As(err, &m) && m.Canceled() {
		return true
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsDeadline reports whether err, anywhere in its wrap chain, is a
// deadline cause: a DeadlineError, any error exposing a
// DeadlineExceeded() bool method reporting true, or the stdlib
// context.DeadlineExceeded sentinel.
func IsDeadline(err error) bool {
	var m interface{ DeadlineExceeded() bool }
	if errors.As(err, &m) && m.DeadlineExceeded() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// AsCanceled decorates err so IsCanceled reports true for it. If err
// already satisfies IsCanceled it is returned unchanged; the decoration
// otherwise wraps err, keeping its message and leaving it reachable via
// Unwrap and errors.Is. AsCanceled(nil) is nil.
func AsCanceled(err error) error {
	if err == nil {
		return nil
	}
	if IsCanceled(err) {
		return err
	}
	return &CanceledError{msg: err.Error(), cause: err}
}

// AsDeadline decorates err so IsDeadline (and therefore IsCanceled)
// reports true for it, following the same identity-preserving rules as
// AsCanceled.
func AsDeadline(err error) error {
	if err == nil {
		return nil
	}
	if IsDeadline(err) {
		return err
	}
	return &DeadlineError{CanceledError{msg: err.Error(), cause: err}}
}

// NewCanceled normalizes reason into a cancellation cause. A nil reason
// yields a generic CanceledError; a string becomes the error message;
// an error already satisfying IsCanceled is returned as-is; any other
// error is decorated; any other value is stringified into the message.
func NewCanceled(reason interface{}) error {
	switch r := reason.(type) {
	case nil:
		return &CanceledError{msg: canceledMsg}
	case string:
		return &CanceledError{msg: r}
	case error:
		return AsCanceled(r)
	default:
		return &CanceledError{msg: fmt.Sprint(r)}
	}
}

// NewDeadline normalizes reason into a deadline cause, following the
// same rules as NewCanceled.
func NewDeadline(reason interface{}) error {
	switch r := reason.(type) {
	case nil:
		return &DeadlineError{CanceledError{msg: deadlineMsg}}
	case string:
		return &DeadlineError{CanceledError{msg: r}}
	case error:
		return AsDeadline(r)
	default:
		return &DeadlineError{CanceledError{msg: fmt.Sprint(r)}}
	}
}
