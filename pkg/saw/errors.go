package saw

import (
	"context"
	"errors"
	"fmt"
)

// Kind classifies a saw error for errors.Is-style matching by callers.
type Kind int

const (
	// KindInvalidArgument covers an empty parent directory, an unknown
	// column type tag, or malformed metadata.
	KindInvalidArgument Kind = iota
	// KindIO covers any underlying filesystem or stream failure.
	KindIO
	// KindCorrupt covers a structurally unreadable file: a truncated
	// stream, bad UTF-8, or a row count / unique-count mismatch.
	KindCorrupt
	// KindInterrupted covers cooperative cancellation surfaced to the
	// driver.
	KindInterrupted
	// KindInternal covers a worker task that panicked or failed for a
	// non-I/O reason.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindIO:
		return "IoError"
	case KindCorrupt:
		return "Corrupt"
	case KindInterrupted:
		return "Interrupted"
	case KindInternal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// Error is the error type every saw operation returns. Callers classify
// failures with errors.Is against the Err* sentinels, or by inspecting
// Kind directly via errors.As.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func newError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("saw: %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("saw: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is one of the Err* sentinels matching e's
// Kind, so callers can write errors.Is(err, saw.ErrCorrupt).
func (e *Error) Is(target error) bool {
	sentinel, ok := target.(*Error)
	if !ok {
		return false
	}
	return sentinel.Kind == e.Kind && sentinel.Message == ""
}

// Sentinels for errors.Is matching. Each carries only a Kind; compare
// with errors.Is(err, saw.ErrCorrupt), not with equality.
var (
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	ErrIO              = &Error{Kind: KindIO}
	ErrCorrupt         = &Error{Kind: KindCorrupt}
	ErrInterrupted     = &Error{Kind: KindInterrupted}
	ErrInternal        = &Error{Kind: KindInternal}
)

func invalidArgument(format string, args ...any) *Error {
	return newError(KindInvalidArgument, fmt.Sprintf(format, args...), nil)
}

func ioError(message string, cause error) *Error {
	return newError(KindIO, message, cause)
}

func corrupt(format string, args ...any) *Error {
	return newError(KindCorrupt, fmt.Sprintf(format, args...), nil)
}

func internal(message string, cause error) *Error {
	return newError(KindInternal, message, cause)
}

// classify wraps err as an *Error if it is not already one, defaulting
// to KindInternal since any task failure that wasn't already classified
// by a codec is, by construction, a non-I/O computation failure.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return newError(KindInterrupted, "operation canceled", err)
	}
	return internal("worker task failed", err)
}
