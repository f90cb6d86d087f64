package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/prakriya/internal/ir"
)

func fixtureResult() *Result {
	r := NewResult()
	r.Cases = []CaseResult{{
		Request: ir.Request{Dhatu: "qukf\\Y", Code: "08.0010", La: "liw", Prayoga: "kartari", Purusha: "uttama", Vacana: "eka"},
		Derivations: []ir.Derivation{
			{
				Surface: "cakAra",
				History: []ir.Step{
					{Rule: "1.3.1", Result: "kf"},
					{Rule: "3.2.115", Result: "kf li~w"},
					{Rule: "7.1.91", Result: "kf Ral"},
					{Rule: "7.2.115", Result: "kAr a"},
				},
				Choices: []ir.Choice{{Rule: "7.1.91", Decision: "accept"}},
			},
			{
				Surface: "cakara",
				History: []ir.Step{
					{Rule: "1.3.1", Result: "kf"},
					{Rule: "3.2.115", Result: "kf li~w"},
					{Rule: "7.1.91", Result: "kf Ral", Declined: true},
				},
				Choices: []ir.Choice{{Rule: "7.1.91", Decision: "decline"}},
			},
		},
	}}
	return r
}

func TestEvaluateAssertions_Pass(t *testing.T) {
	assertions := []Assertion{
		{Type: AssertFormsInclude, Forms: []string{"cakara"}},
		{Type: AssertFormsExact, Forms: []string{"cakAra", "cakara"}},
		{Type: AssertFormCount, Count: 2},
		{Type: AssertHistoryContains, Rule: "7.2.115"},
		{Type: AssertHistoryOrder, Rules: []string{"1.3.1", "7.1.91", "7.2.115"}},
		{Type: AssertChoice, Rule: "7.1.91", Decision: "decline"},
	}

	assert.Empty(t, EvaluateAssertions(fixtureResult(), assertions))
}

func TestEvaluateAssertions_Fail(t *testing.T) {
	tests := []struct {
		name      string
		assertion Assertion
		want      string
	}{
		{"missing form", Assertion{Type: AssertFormsInclude, Forms: []string{"cakre"}}, "missing cakre"},
		{"exact order", Assertion{Type: AssertFormsExact, Forms: []string{"cakara", "cakAra"}}, "forms [cakAra cakara]"},
		{"count", Assertion{Type: AssertFormCount, Count: 1}, "2 forms"},
		{"history", Assertion{Type: AssertHistoryContains, Rule: "6.1.77"}, "not found in history"},
		{"order", Assertion{Type: AssertHistoryOrder, Rules: []string{"7.1.91", "3.2.115"}}, "should be before"},
		{"order missing", Assertion{Type: AssertHistoryOrder, Rules: []string{"8.4.2"}}, "missing rule: 8.4.2"},
		{"choice never offered", Assertion{Type: AssertChoice, Rule: "7.2.63", Decision: "accept"}, "rule never offered"},
		{"case range", Assertion{Type: AssertFormCount, Case: 4}, "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := EvaluateAssertions(fixtureResult(), []Assertion{tt.assertion})
			require.Len(t, errs, 1)
			assert.Contains(t, errs[0], tt.want)
		})
	}
}

func TestHistoryContains_IgnoresDeclinedSteps(t *testing.T) {
	r := fixtureResult()
	r.Cases[0].Derivations = r.Cases[0].Derivations[1:]

	errs := EvaluateAssertions(r, []Assertion{{Type: AssertHistoryContains, Rule: "7.1.91"}})
	require.Len(t, errs, 1)
}

func TestAssertionError_Format(t *testing.T) {
	err := &AssertionError{
		Type:     AssertFormCount,
		Expected: "1 forms",
		Actual:   "2 forms",
		Result:   fixtureResult().Cases[0],
	}

	msg := err.Error()
	assert.Contains(t, msg, "Assertion failed: form_count (case 0)")
	assert.Contains(t, msg, "Forms: cakAra, cakara")
	assert.Contains(t, msg, "3.2.115    | kf li~w")
}
