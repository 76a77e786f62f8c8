// Package rterrors defines the runtime's error categories.
//
// Every Core IL operation that can fail reports exactly one of these
// categories (spec §7); the runtime never retries or recovers internally.
package rterrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is one of the error categories a runtime operation can raise.
type Kind string

const (
	TypeMismatch    Kind = "TypeMismatch"
	OutOfRange      Kind = "OutOfRange"
	DivisionByZero  Kind = "DivisionByZero"
	EmptyContainer  Kind = "EmptyContainer"
	MissingKey      Kind = "MissingKey"
	ParseFailure    Kind = "ParseFailure"
	Unsupported     Kind = "Unsupported"
)

// RuntimeError is the single error type every runtime operation returns.
type RuntimeError struct {
	Kind    Kind
	Op      string
	Message string
	cause   error
}

func (e *RuntimeError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *RuntimeError) Unwrap() error { return e.cause }

// New creates a RuntimeError whose cause carries a pkg/errors stack
// trace; an embedding compiler reaches it through Unwrap and prints it
// with %+v. RuntimeError itself has no Cause method, so errors.Cause
// returns the RuntimeError unchanged.
func New(kind Kind, op, message string) *RuntimeError {
	return &RuntimeError{
		Kind:    kind,
		Op:      op,
		Message: message,
		cause:   errors.New(message),
	}
}

// Newf is New with Printf-style formatting of the message.
func Newf(kind Kind, op, format string, args ...interface{}) *RuntimeError {
	return New(kind, op, fmt.Sprintf(format, args...))
}

// Wrap attaches a runtime error category to an underlying cause (e.g. a
// strconv.ParseFloat failure surfaced as ParseFailure).
func Wrap(kind Kind, op string, cause error) *RuntimeError {
	return &RuntimeError{
		Kind:    kind,
		Op:      op,
		Message: cause.Error(),
		cause:   errors.Wrap(cause, op),
	}
}

// Is reports whether err is a RuntimeError of the given kind.
func Is(err error, kind Kind) bool {
	re, ok := err.(*RuntimeError)
	return ok && re.Kind == kind
}
