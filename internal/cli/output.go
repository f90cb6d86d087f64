package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/prakriya/internal/ir"
	"github.com/roach88/prakriya/internal/prakriya"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Failed scenarios, replay mismatch, invariant violation
	ExitCommandError = 2 // Command error (bad flags, missing database, etc.)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// deriveError maps an engine error to an exit code: broken invariants are
// failures, everything else is a command error.
func deriveError(err error) *ExitError {
	if prakriya.IsInvariantError(err) {
		return WrapExitError(ExitFailure, "derivation failed", err)
	}
	return WrapExitError(ExitCommandError, "derivation failed", err)
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`    // "E_REPLAY", "E_TEST_FAILED", etc.
	Message string `json:"message"` // human-readable message
}

// writeJSON writes an indented response. A non-nil cliErr marks it failed.
func writeJSON(w io.Writer, data any, cliErr *CLIError) error {
	resp := CLIResponse{Status: "ok", Data: data}
	if cliErr != nil {
		resp.Status = "error"
		resp.Error = cliErr
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(resp)
}

// writeHistory prints one derivation as "{rule:<10} | {state}" lines
// followed by its rule choices.
func writeHistory(w io.Writer, history []ir.Step, choices []ir.Choice) {
	for _, s := range history {
		if s.Declined {
			fmt.Fprintf(w, "%-10s | %s (declined)\n", s.Rule, s.Result)
			continue
		}
		fmt.Fprintf(w, "%-10s | %s\n", s.Rule, s.Result)
	}
	if len(choices) == 0 {
		return
	}
	fmt.Fprintln(w, "Rule choices:")
	for _, c := range choices {
		fmt.Fprintf(w, "  %s: %s\n", c.Rule, c.Decision)
	}
}
