package rules

import (
	"errors"
	"fmt"

	"github.com/roach88/prakriya/internal/prakriya"
)

// ErrUnsupported is matched by every UnsupportedError.
var ErrUnsupported = errors.New("derivation not covered")

// UnsupportedError reports that a branch needs a rule this grammar does not
// implement. The branch ends without a surface form; other branches of the
// same request are unaffected.
type UnsupportedError struct {
	// Rule is the rule the branch would need next.
	Rule prakriya.Rule

	// Reason is a short human-readable description.
	Reason string
}

// Error implements the error interface.
func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: %s (rule=%s)", ErrUnsupported, e.Reason, e.Rule)
}

// Is makes errors.Is(err, ErrUnsupported) hold.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

func unsupported(rule prakriya.Rule, reason string) error {
	return &UnsupportedError{Rule: rule, Reason: reason}
}

// IsUnsupported reports whether err ends a branch without a result.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupported)
}
