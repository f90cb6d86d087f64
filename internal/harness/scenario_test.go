package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/prakriya/internal/args"
)

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/bhu_lat.yaml")
	require.NoError(t, err)

	assert.Equal(t, "bhu_lat", s.Name)
	assert.Equal(t, "BU", s.Dhatu)
	assert.Len(t, s.Cases, 3)
	assert.True(t, s.Cases[0].Exact)
	assert.Equal(t, AssertHistoryOrder, s.Assertions[0].Type)

	reqs, err := s.Requests()
	require.NoError(t, err)
	assert.Equal(t, args.Kartari, reqs[0].Prayoga)
	assert.Equal(t, args.Lat, reqs[0].La)
	assert.Equal(t, args.Bahu, reqs[2].Vacana)
}

func TestLoadScenario_UpadeshaEscapes(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/kr_lit.yaml")
	require.NoError(t, err)
	assert.Equal(t, "qukf\\Y", s.Dhatu)
}

func TestLoadScenario_RejectsUnknownFields(t *testing.T) {
	_, err := LoadScenario("testdata/invalid/unknown_field.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario("testdata/scenarios/nope.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestParseScenario_Validation(t *testing.T) {
	const head = "name: x\ndescription: d\ndhatu: BU\ncode: \"01.0001\"\n"
	const oneCase = "cases:\n  - {la: law, purusha: prathama, vacana: eka}\n"

	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"missing name", "description: d\ndhatu: BU\ncode: \"01.0001\"\n" + oneCase, "name is required"},
		{"missing description", "name: x\ndhatu: BU\ncode: \"01.0001\"\n" + oneCase, "description is required"},
		{"missing dhatu", "name: x\ndescription: d\ncode: \"01.0001\"\n" + oneCase, "dhatu is required"},
		{"bad code", "name: x\ndescription: d\ndhatu: BU\ncode: \"11.0001\"\n" + oneCase, "dhatu code"},
		{"no cases", head, "cases list is required"},
		{"bad la", head + "cases:\n  - {la: lax, purusha: prathama, vacana: eka}\n", "cases[0]"},
		{"bad prayoga", head + "prayoga: passive\n" + oneCase, "passive"},
		{"exact without expect", head + "cases:\n  - {la: law, purusha: prathama, vacana: eka, exact: true}\n", "exact requires expect"},
		{"unknown assertion", head + oneCase + "assertions:\n  - {type: nope, case: 0}\n", `unknown assertion type "nope"`},
		{"case out of range", head + oneCase + "assertions:\n  - {type: form_count, case: 3, count: 1}\n", "out of range"},
		{"order without rules", head + oneCase + "assertions:\n  - {type: history_order, case: 0}\n", "rules list is required"},
		{"contains without rule", head + oneCase + "assertions:\n  - {type: history_contains, case: 0}\n", "rule is required"},
		{"choice bad decision", head + oneCase + "assertions:\n  - {type: choice, case: 0, rule: \"7.1.91\", decision: maybe}\n", "accept or decline"},
		{"include without forms", head + oneCase + "assertions:\n  - {type: forms_include, case: 0}\n", "forms list is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
