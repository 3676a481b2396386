// Package cindertypes defines the error taxonomy for command dispatch.
// Failures carry an explicit kind so the application shell can branch on
// failure class: batch mode recovers from unknown command names but aborts
// on execution errors, while interactive mode recovers from everything.
package cindertypes

import (
	"errors"
	"fmt"
)

// ErrorKind tags the failure class of a command dispatch.
type ErrorKind int

const (
	// KindNotFound means the attempted name matched no registered command.
	KindNotFound ErrorKind = iota
	// KindParseFailure means the argument text could not be tokenized,
	// typically an unterminated quote.
	KindParseFailure
	// KindExecution means argument binding failed or the command handler
	// itself returned an error.
	KindExecution
)

// String returns a short label for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindParseFailure:
		return "parse failure"
	case KindExecution:
		return "execution error"
	default:
		return "unknown"
	}
}

// RunError is the tagged error returned by the dispatcher and parser.
// Command holds the attempted command name when one is known.
type RunError struct {
	Kind    ErrorKind
	Command string
	Err     error
}

// Error renders a short human-readable description of the failure.
func (e *RunError) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("command %s not found", e.Command)
	case KindParseFailure:
		if e.Command != "" {
			return fmt.Sprintf("parse failure in %s: %v", e.Command, e.Err)
		}
		return fmt.Sprintf("parse failure: %v", e.Err)
	default:
		if e.Command != "" {
			return fmt.Sprintf("%s: %v", e.Command, e.Err)
		}
		return e.Err.Error()
	}
}

// Unwrap exposes the underlying error for errors.Is / errors.As chains.
func (e *RunError) Unwrap() error {
	return e.Err
}

// NewNotFound builds a RunError for an unresolved command name.
func NewNotFound(name string) *RunError {
	return &RunError{Kind: KindNotFound, Command: name}
}

// NewParseFailure builds a RunError for malformed argument text.
func NewParseFailure(command string, err error) *RunError {
	return &RunError{Kind: KindParseFailure, Command: command, Err: err}
}

// NewExecution builds a RunError wrapping a binding or handler failure.
func NewExecution(command string, err error) *RunError {
	return &RunError{Kind: KindExecution, Command: command, Err: err}
}

// KindOf reports the error kind of err when it is (or wraps) a RunError.
func KindOf(err error) (ErrorKind, bool) {
	var runErr *RunError
	if errors.As(err, &runErr) {
		return runErr.Kind, true
	}
	return 0, false
}

// IsNotFound reports whether err is a dispatch failure for an unknown name.
func IsNotFound(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindNotFound
}

// IsParseFailure reports whether err is a tokenization failure.
func IsParseFailure(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindParseFailure
}

// IsExecution reports whether err is a binding or handler failure.
func IsExecution(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindExecution
}
