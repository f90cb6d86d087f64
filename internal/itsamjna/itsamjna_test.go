package itsamjna

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/prakriya/internal/prakriya"
	"github.com/roach88/prakriya/internal/term"
)

func classify(t *testing.T, tm *term.Term) *term.Term {
	t.Helper()
	p := prakriya.New()
	p.Push(tm)
	require.NoError(t, Run(p, 0))
	return tm
}

func pratyaya(u string, tags ...term.Tag) *term.Term {
	t := term.MakeUpadesha(u)
	t.AddTag(term.Pratyaya)
	t.AddTags(tags...)
	return t
}

// TestRun_Dhatu tests root markers and accents.
func TestRun_Dhatu(t *testing.T) {
	tests := []struct {
		upadesha string
		text     string
		tags     []term.Tag
		absent   []term.Tag
	}{
		{"BU", "BU", nil, []term.Tag{term.Anudatta}},
		{"qukf\\Y", "kf", []term.Tag{term.Qvit, term.Yit, term.Anudatta}, nil},
		{"zu\\Y", "zu", []term.Tag{term.Yit, term.Anudatta}, nil},
		{"tu\\da~^", "tud", []term.Tag{term.Adit, term.Svaritet, term.Anudatta}, []term.Tag{term.Anudattet}},
		{"eDa~\\", "eD", []term.Tag{term.Adit, term.Anudattet}, []term.Tag{term.Anudatta}},
		{"cura~", "cur", []term.Tag{term.Adit}, nil},
		{"Ra\\Sa~", "RaS", []term.Tag{term.Adit, term.Anudatta}, nil},
		{"ve\\Y", "ve", []term.Tag{term.Yit, term.Anudatta}, nil},
		{"Bi\\dir~", "Bid", []term.Tag{term.Irit, term.Anudatta}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.upadesha, func(t *testing.T) {
			tm := classify(t, term.MakeDhatu(tt.upadesha, 1, 1))
			assert.Equal(t, tt.text, tm.Text)
			for _, tag := range tt.tags {
				assert.True(t, tm.HasTag(tag), "missing %s", tag)
			}
			for _, tag := range tt.absent {
				assert.False(t, tm.HasTag(tag), "unexpected %s", tag)
			}
			assert.True(t, tm.HasU(tt.upadesha), "identity survives")
		})
	}
}

// TestRun_Pratyaya tests affix markers, including the exceptions for verb
// endings.
func TestRun_Pratyaya(t *testing.T) {
	tests := []struct {
		upadesha string
		tin      bool
		text     string
		tags     []term.Tag
	}{
		{"Sap", false, "a", []term.Tag{term.Sit, term.Pit}},
		{"Syan", false, "ya", []term.Tag{term.Sit}},
		{"Snu", false, "nu", []term.Tag{term.Sit}},
		{"Ric", false, "i", []term.Tag{term.Rit, term.Cit}},
		{"si~c", false, "s", []term.Tag{term.Idit, term.Cit}},
		{"tAsi~", false, "tAs", []term.Tag{term.Idit}},
		{"yak", false, "ya", []term.Tag{term.Kit}},
		{"tip", true, "ti", []term.Tag{term.Pit}},
		{"tas", true, "tas", nil},
		{"Ji", true, "Ji", nil},
		{"AtAm", true, "AtAm", nil},
		{"mahiN", true, "mahi", []term.Tag{term.Nit}},
		{"Ral", true, "a", []term.Tag{term.Rit, term.Lit}},
		{"Tal", true, "Ta", []term.Tag{term.Lit}},
		{"jus", true, "us", nil},
		{"qA", true, "A", []term.Tag{term.Qit}},
		{"eS", true, "e", []term.Tag{term.Sit}},
	}
	for _, tt := range tests {
		t.Run(tt.upadesha, func(t *testing.T) {
			tm := pratyaya(tt.upadesha)
			if tt.tin {
				tm.AddTag(term.Tin)
			}
			classify(t, tm)
			assert.Equal(t, tt.text, tm.Text)
			for _, tag := range tt.tags {
				assert.True(t, tm.HasTag(tag), "missing %s", tag)
			}
		})
	}
}

// TestRun_LakaraKeepsL tests that a lakara keeps its l.
func TestRun_LakaraKeepsL(t *testing.T) {
	tm := classify(t, pratyaya("la~w"))
	assert.Equal(t, "l", tm.Text)
	assert.True(t, tm.HasTag(term.Wit))

	tm = classify(t, pratyaya("li~N"))
	assert.Equal(t, "l", tm.Text)
	assert.True(t, tm.HasTag(term.Nit))
}

// TestRun_Agama tests augments, which lose only final markers.
func TestRun_Agama(t *testing.T) {
	for u, want := range map[string]string{
		"iw":     "i",
		"aw":     "a",
		"Aw":     "A",
		"yAsu~w": "yAs",
		"sIyu~w": "sIy",
		"vu~k":   "v",
	} {
		tm := classify(t, term.MakeAgama(u))
		assert.Equal(t, want, tm.Text, u)
	}
}

// TestRun_RecordsStepOnlyOnChange tests the history entry for removal.
func TestRun_RecordsStepOnlyOnChange(t *testing.T) {
	p := prakriya.New()
	p.Push(term.MakeDhatu("BU", 1, 1))
	require.NoError(t, Run(p, 0))
	assert.Empty(t, p.History())

	p.Push(term.MakeAgama("iw"))
	require.NoError(t, Run(p, 1))
	require.Len(t, p.History(), 1)
	assert.Equal(t, prakriya.Rule("1.3.9"), p.History()[0].Rule)
	assert.Equal(t, "BUi", p.History()[0].Result)
}

// TestRun_AbsentPositionIsInvariant tests the fatal path.
func TestRun_AbsentPositionIsInvariant(t *testing.T) {
	p := prakriya.New()
	err := Run(p, 0)
	require.Error(t, err)
	assert.True(t, prakriya.IsInvariantError(err))
}
