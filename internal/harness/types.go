package harness

import "github.com/roach88/prakriya/internal/ir"

// CaseResult holds the stored records of one case.
type CaseResult struct {
	Request ir.Request `json:"request"`

	// Derivations are the records in exploration order, one per surface.
	Derivations []ir.Derivation `json:"derivations"`
}

// Forms returns the surfaces of the case in order.
func (c CaseResult) Forms() []string {
	out := make([]string, len(c.Derivations))
	for i, d := range c.Derivations {
		out[i] = d.Surface
	}
	return out
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true if every expectation, replay, and assertion held.
	Pass bool `json:"pass"`

	Cases []CaseResult `json:"cases"`

	// Errors contains failure messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Cases:  []CaseResult{},
		Errors: []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
