package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/prakriya/internal/ir"
)

// Snapshot captures the surfaces and choice ledgers of a scenario execution.
// Histories are left out so that golden files stay reviewable; their digests
// are covered by replay.
type Snapshot struct {
	ScenarioName string
	Cases        []CaseResult
}

// Value converts the snapshot to canonical IR.
func (s Snapshot) Value() ir.Value {
	cases := make(ir.Array, len(s.Cases))
	for i, c := range s.Cases {
		forms := make(ir.Array, len(c.Derivations))
		for j, d := range c.Derivations {
			choices := make(ir.Array, len(d.Choices))
			for k, ch := range d.Choices {
				choices[k] = ir.Object{"rule": ir.String(ch.Rule), "decision": ir.String(ch.Decision)}
			}
			forms[j] = ir.Object{"surface": ir.String(d.Surface), "choices": choices}
		}
		cases[i] = ir.Object{
			"request": ir.Object{
				"dhatu":   ir.String(c.Request.Dhatu),
				"code":    ir.String(c.Request.Code),
				"la":      ir.String(c.Request.La),
				"prayoga": ir.String(c.Request.Prayoga),
				"purusha": ir.String(c.Request.Purusha),
				"vacana":  ir.String(c.Request.Vacana),
			},
			"forms": forms,
		}
	}
	return ir.Object{
		"scenario_name": ir.String(s.ScenarioName),
		"cases":         cases,
	}
}

// MarshalSnapshot returns the canonical JSON of a result's snapshot.
func MarshalSnapshot(name string, result *Result) ([]byte, error) {
	return ir.MarshalCanonical(Snapshot{ScenarioName: name, Cases: result.Cases}.Value())
}

// RunWithGolden executes a scenario and compares its snapshot against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(t.Context(), scenario)
	if err != nil {
		return nil, err
	}
	return result, AssertGolden(t, scenario.Name, result)
}

// AssertGolden compares an existing result against a golden file without
// re-running the scenario.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	data, err := MarshalSnapshot(scenarioName, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)
	return nil
}
