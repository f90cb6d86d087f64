package prakriya

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes derivation errors.
type ErrorCode string

const (
	// ErrCodeInvariant indicates a violated structural post-condition, such as
	// it-samjna failing to find a term that was just inserted.
	ErrCodeInvariant ErrorCode = "INVARIANT_VIOLATION"

	// ErrCodeUnknownRoot indicates that the requested root could not be
	// turned into a term.
	ErrCodeUnknownRoot ErrorCode = "UNKNOWN_ROOT"
)

// InvariantError aborts the derivation attempt it occurs in.
//
// It is a programming-error class: once positions are inconsistent, no later
// rule can be trusted, so the error must never be absorbed by a cascade.
type InvariantError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Rule is the rule that was being applied.
	Rule Rule

	// Position is the term position the rule targeted.
	Position int

	// Message is a human-readable description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	msg := fmt.Sprintf("%s: %s (rule=%s, position=%d)", e.Code, e.Message, e.Rule, e.Position)
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *InvariantError) Unwrap() error {
	return e.Err
}

// NewInvariantError creates an InvariantError for rule at position.
func NewInvariantError(rule Rule, position int, message string) *InvariantError {
	return &InvariantError{
		Code:     ErrCodeInvariant,
		Rule:     rule,
		Position: position,
		Message:  message,
	}
}

// WrapInvariant attaches rule and position context to err.
func WrapInvariant(rule Rule, position int, message string, err error) *InvariantError {
	e := NewInvariantError(rule, position, message)
	e.Err = err
	return e
}

// IsInvariantError reports whether err is, or wraps, an InvariantError.
// Uses errors.As to handle wrapped errors.
func IsInvariantError(err error) bool {
	var ie *InvariantError
	return errors.As(err, &ie)
}
