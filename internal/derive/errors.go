package derive

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes driver errors.
type ErrorCode string

const (
	// ErrCodeBranchLimit indicates the request needed more choice
	// configurations than allowed.
	ErrCodeBranchLimit ErrorCode = "BRANCH_LIMIT"
)

// BranchLimitError is returned when exploration exceeds the branch limit.
// No partial results accompany it.
type BranchLimitError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Request is the request being derived.
	Request Request

	// Limit is the configured maximum number of branches.
	Limit int
}

// Error implements the error interface.
func (e *BranchLimitError) Error() string {
	return fmt.Sprintf("%s: %s exceeded %d branches", e.Code, e.Request, e.Limit)
}

// IsBranchLimitError reports whether err is, or wraps, a BranchLimitError.
// Uses errors.As to handle wrapped errors.
func IsBranchLimitError(err error) bool {
	var be *BranchLimitError
	return errors.As(err, &be)
}
