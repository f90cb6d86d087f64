package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Scenarios(t *testing.T) {
	for _, name := range []string{"bhu_lat", "kr_lit", "edh_lut"} {
		t.Run(name, func(t *testing.T) {
			s, err := LoadScenario("testdata/scenarios/" + name + ".yaml")
			require.NoError(t, err)

			result, err := Run(t.Context(), s)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
			assert.Len(t, result.Cases, len(s.Cases))
		})
	}
}

func TestRun_DeterministicIDs(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/kr_lit.yaml")
	require.NoError(t, err)

	result, err := Run(t.Context(), s)
	require.NoError(t, err)

	derivations := result.Cases[0].Derivations
	require.NotEmpty(t, derivations)
	assert.Equal(t, "kr_lit-0001", derivations[0].ID)
	for _, d := range derivations {
		assert.Equal(t, derivations[0].RequestID, d.RequestID)
		assert.NotEmpty(t, d.Digest)
	}
}

func TestRun_ReportsExpectationFailures(t *testing.T) {
	s, err := ParseScenario([]byte(`
name: wrong
description: "expects a form BU does not have"
dhatu: BU
code: "01.0001"
cases:
  - la: law
    purusha: prathama
    vacana: eka
    expect: [Bavate]
  - la: law
    purusha: prathama
    vacana: dvi
    expect: [BavantaH]
    exact: true
assertions:
  - type: form_count
    case: 0
    count: 2
`))
	require.NoError(t, err)

	result, err := Run(t.Context(), s)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 3)
	assert.Contains(t, result.Errors[0], "expected form Bavate")
	assert.Contains(t, result.Errors[1], "expected exactly [BavantaH]")
	assert.Contains(t, result.Errors[2], "form_count")
}

func TestRun_UnsupportedRootDerivesNothing(t *testing.T) {
	s, err := ParseScenario([]byte(`
name: rudh
description: "gana 7 roots are outside the grammar"
dhatu: "ru\\Di~^r"
code: "07.0001"
cases:
  - la: law
    purusha: prathama
    vacana: eka
assertions:
  - type: form_count
    case: 0
    count: 0
`))
	require.NoError(t, err)

	result, err := Run(t.Context(), s)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Empty(t, result.Cases[0].Derivations)
}
