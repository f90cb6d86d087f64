package harness

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/prakriya/internal/ir"
)

// AssertionError is returned when an assertion fails.
// It includes the case's forms and first history to help debug the failure.
type AssertionError struct {
	Type     string     // Assertion type for categorization
	Case     int        // Index into Scenario.Cases
	Expected string     // Human-readable expected outcome
	Actual   string     // Human-readable actual outcome
	Result   CaseResult // Case records for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s (case %d)\n", e.Type, e.Case)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nForms: %s\n", strings.Join(e.Result.Forms(), ", "))
	if len(e.Result.Derivations) > 0 {
		fmt.Fprintf(&buf, "History:\n")
		for _, s := range e.Result.Derivations[0].History {
			mark := ""
			if s.Declined {
				mark = " (declined)"
			}
			fmt.Fprintf(&buf, "  %-10s | %s%s\n", s.Rule, s.Result, mark)
		}
	}
	return buf.String()
}

// EvaluateAssertions runs every assertion and returns the failure messages.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var errs []string
	for _, a := range assertions {
		if err := evaluate(result, a); err != nil {
			errs = append(errs, err.Error())
		}
	}
	return errs
}

func evaluate(result *Result, a Assertion) error {
	if a.Case < 0 || a.Case >= len(result.Cases) {
		return fmt.Errorf("assertion %s: case %d out of range", a.Type, a.Case)
	}
	cr := result.Cases[a.Case]

	switch a.Type {
	case AssertFormsInclude:
		return assertFormsInclude(a, cr)
	case AssertFormsExact:
		return assertFormsExact(a, cr)
	case AssertFormCount:
		return assertFormCount(a, cr)
	case AssertHistoryContains:
		return assertHistoryContains(a, cr)
	case AssertHistoryOrder:
		return assertHistoryOrder(a, cr)
	case AssertChoice:
		return assertChoice(a, cr)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

func failure(a Assertion, cr CaseResult, expected, actual string) error {
	return &AssertionError{Type: a.Type, Case: a.Case, Expected: expected, Actual: actual, Result: cr}
}

func assertFormsInclude(a Assertion, cr CaseResult) error {
	forms := cr.Forms()
	for _, want := range a.Forms {
		if !slices.Contains(forms, want) {
			return failure(a, cr, fmt.Sprintf("forms include %v", a.Forms), fmt.Sprintf("missing %s", want))
		}
	}
	return nil
}

func assertFormsExact(a Assertion, cr CaseResult) error {
	if forms := cr.Forms(); !slices.Equal(forms, a.Forms) {
		return failure(a, cr, fmt.Sprintf("forms %v", a.Forms), fmt.Sprintf("forms %v", forms))
	}
	return nil
}

func assertFormCount(a Assertion, cr CaseResult) error {
	if n := len(cr.Derivations); n != a.Count {
		return failure(a, cr, fmt.Sprintf("%d forms", a.Count), fmt.Sprintf("%d forms", n))
	}
	return nil
}

// assertHistoryContains passes if any derivation of the case applied the rule.
// Declined steps do not count.
func assertHistoryContains(a Assertion, cr CaseResult) error {
	for _, d := range cr.Derivations {
		if applied(d.History, a.Rule) >= 0 {
			return nil
		}
	}
	return failure(a, cr, fmt.Sprintf("rule %s applied", a.Rule), "not found in history")
}

// assertHistoryOrder checks the first derivation. Rules don't need to be
// consecutive.
func assertHistoryOrder(a Assertion, cr CaseResult) error {
	if len(cr.Derivations) == 0 {
		return failure(a, cr, fmt.Sprintf("rules in order: %v", a.Rules), "no derivation")
	}
	history := cr.Derivations[0].History

	prev, prevRule := -1, ""
	for _, rule := range a.Rules {
		pos := applied(history, rule)
		if pos < 0 {
			return failure(a, cr, fmt.Sprintf("all rules present: %v", a.Rules), fmt.Sprintf("missing rule: %s", rule))
		}
		if pos <= prev {
			return failure(a, cr, fmt.Sprintf("rules in order: %v", a.Rules),
				fmt.Sprintf("%s (step %d) should be before %s (step %d)", prevRule, prev+1, rule, pos+1))
		}
		prev, prevRule = pos, rule
	}
	return nil
}

func assertChoice(a Assertion, cr CaseResult) error {
	var seen []string
	for _, d := range cr.Derivations {
		for _, c := range d.Choices {
			if c.Rule != a.Rule {
				continue
			}
			if c.Decision == a.Decision {
				return nil
			}
			seen = append(seen, c.Decision)
		}
	}
	actual := "rule never offered"
	if len(seen) > 0 {
		actual = fmt.Sprintf("decisions %v", seen)
	}
	return failure(a, cr, fmt.Sprintf("%s %s", a.Rule, a.Decision), actual)
}

// applied returns the first step index at which rule was applied, or -1.
func applied(history []ir.Step, rule string) int {
	return slices.IndexFunc(history, func(s ir.Step) bool {
		return s.Rule == rule && !s.Declined
	})
}
