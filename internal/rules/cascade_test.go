package rules

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/prakriya/internal/operators"
	"github.com/roach88/prakriya/internal/prakriya"
	"github.com/roach88/prakriya/internal/term"
)

func newState(opts []prakriya.Option, texts ...string) *prakriya.Prakriya {
	p := prakriya.New(opts...)
	for _, s := range texts {
		p.Push(term.MakeText(s))
	}
	return p
}

func endsWith(c byte) Cond {
	return func(p *prakriya.Prakriya, i int) bool {
		return p.Has(i, func(t *term.Term) bool { return t.HasAntya(c) })
	}
}

func rulesOf(p *prakriya.Prakriya) []prakriya.Rule {
	var out []prakriya.Rule
	for _, s := range p.History() {
		out = append(out, s.Rule)
	}
	return out
}

func TestCascade_FirstMatchWins(t *testing.T) {
	c := Cascade{
		{"specific", endsWith('u'), Do(operators.Antya("o"))},
		{"general", endsWith('u'), Do(operators.Antya("O"))},
	}
	p := newState(nil, "Bu")

	rule, ok, err := c.Run(p, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, prakriya.Rule("specific"), rule)
	assert.Equal(t, "Bo", p.Text())
	assert.Equal(t, []prakriya.Rule{"specific"}, rulesOf(p))
}

func TestCascade_NoMatch(t *testing.T) {
	c := Cascade{{"never", endsWith('f'), Do(operators.Antya("ar"))}}
	p := newState(nil, "Bu")

	rule, ok, err := c.Run(p, 0)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, rule)
	assert.Empty(t, p.History())
}

func TestCascade_NoopBlocksGeneralRule(t *testing.T) {
	c := Cascade{
		{"block", endsWith('u'), Noop},
		{"general", endsWith('u'), Do(operators.Antya("o"))},
	}
	p := newState(nil, "Bu")

	_, _, err := c.Run(p, 0)
	require.NoError(t, err)
	assert.Equal(t, "Bu", p.Text())
	assert.Equal(t, []prakriya.Rule{"block"}, rulesOf(p))
}

func TestCascade_ActionErrorPropagates(t *testing.T) {
	c := Cascade{{"3.1.78", endsWith('u'), func(*prakriya.Prakriya, prakriya.Rule, int) error {
		return unsupported("3.1.78", "not built")
	}}}

	_, ok, err := c.Run(newState(nil, "Bu"), 0)
	assert.True(t, ok)
	assert.True(t, IsUnsupported(err))
}

func TestStacking_EveryMemberRuns(t *testing.T) {
	s := Stacking{
		{{"a", endsWith('u'), Do(operators.Antya("o"))}},
		{{"b", endsWith('f'), Do(operators.Antya("ar"))}},
		// Sees the state the first member left behind.
		{{"c", endsWith('o'), Do(operators.Antya("av"))}},
	}
	p := newState(nil, "Bu")

	fired, err := s.Run(p, 0)
	require.NoError(t, err)
	assert.Equal(t, []prakriya.Rule{"a", "c"}, fired)
	assert.Equal(t, "Bav", p.Text())
}

func TestStacking_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	s := Stacking{
		{{"a", endsWith('u'), Do(operators.Antya("o"))}},
		{{"b", endsWith('o'), func(*prakriya.Prakriya, prakriya.Rule, int) error { return boom }}},
		{{"c", endsWith('o'), Do(operators.Antya("av"))}},
	}

	fired, err := s.Run(newState(nil, "Bu"), 0)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []prakriya.Rule{"a"}, fired)
}

func TestMaybe_FollowsDecision(t *testing.T) {
	c := Cascade{{"opt", endsWith('u'), Maybe(operators.Antya("o"))}}

	accepted := newState(nil, "Bu")
	_, _, err := c.Run(accepted, 0)
	require.NoError(t, err)
	assert.Equal(t, "Bo", accepted.Text())

	declined := newState([]prakriya.Option{prakriya.WithChoices(map[prakriya.Rule]prakriya.Decision{"opt": prakriya.Decline})}, "Bu")
	_, _, err = c.Run(declined, 0)
	require.NoError(t, err)
	assert.Equal(t, "Bu", declined.Text())

	ledger := declined.RuleChoices()
	require.Len(t, ledger, 1)
	assert.Equal(t, prakriya.Decline, ledger[0].Decision)
	assert.True(t, ledger[0].Forced)
}

func TestAllOf(t *testing.T) {
	p := newState(nil, "Bu")
	assert.True(t, AllOf(endsWith('u'))(p, 0))
	assert.False(t, AllOf(endsWith('u'), endsWith('f'))(p, 0))
	assert.True(t, AllOf()(p, 0))
}

func TestUnsupportedError(t *testing.T) {
	err := fmt.Errorf("vikarana: %w", unsupported("3.1.78", "Snam infix"))

	assert.True(t, IsUnsupported(err))
	assert.ErrorIs(t, err, ErrUnsupported)

	var ue *UnsupportedError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, prakriya.Rule("3.1.78"), ue.Rule)
	assert.Contains(t, err.Error(), "rule=3.1.78")

	assert.False(t, IsUnsupported(errors.New("other")))
}
