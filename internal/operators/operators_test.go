package operators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/prakriya/internal/prakriya"
	"github.com/roach88/prakriya/internal/term"
)

func apply(op prakriya.TermOp, text string) *term.Term {
	t := term.MakeText(text)
	op(t)
	return t
}

func TestSubstitution(t *testing.T) {
	tests := []struct {
		name string
		op   prakriya.TermOp
		in   string
		want string
	}{
		{"adi", Adi("g"), "ji", "gi"},
		{"antya", Antya(""), "ti", "t"},
		{"upadha", Upadha("A"), "sPur", "sPAr"},
		{"mit", Mit("n"), "vid", "vind"},
		{"ti", Ti("e"), "AtAm", "Ate"},
		{"text", Text("tip"), "l", "tip"},
		{"seq", Seq(Antya("a"), Adi("c")), "kf", "ca"},
		{"none", None, "BU", "BU"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apply(tt.op, tt.in).Text)
		})
	}
}

// TestUndefinedTargetsAreNoOps tests that operators whose target is missing
// leave the term unchanged.
func TestUndefinedTargetsAreNoOps(t *testing.T) {
	assert.Equal(t, "a", apply(Upadha("i"), "a").Text)
	assert.Equal(t, "", apply(Upadha("i"), "").Text)
	assert.Equal(t, "", apply(Adi("g"), "").Text)
	assert.Equal(t, "", apply(Antya("g"), "").Text)
	assert.Equal(t, "kr", apply(Mit("n"), "kr").Text)
	assert.Equal(t, "kr", apply(Ti("e"), "kr").Text)
}

// TestElision tests that each elision leaves a distinct tag behind.
func TestElision(t *testing.T) {
	tests := []struct {
		op  prakriya.TermOp
		tag term.Tag
	}{
		{Luk, term.Luk},
		{Slu, term.Slu},
		{Lup, term.Lup},
	}
	for _, tt := range tests {
		tm := apply(tt.op, "ti")
		assert.Equal(t, "", tm.Text)
		assert.True(t, tm.HasTag(tt.tag), tt.tag.String())
		for _, other := range tests {
			if other.tag != tt.tag {
				assert.False(t, tm.HasTag(other.tag))
			}
		}
	}

	tm := apply(Lopa, "ti")
	assert.Equal(t, "", tm.Text)
	assert.False(t, tm.Any(term.Luk, term.Slu, term.Lup))
}

func TestTags(t *testing.T) {
	tm := apply(AddTags(term.Kit, term.Pit), "ya")
	assert.True(t, tm.All(term.Kit, term.Pit))
	RemoveTag(term.Pit)(tm)
	assert.False(t, tm.HasTag(term.Pit))
	AddTag(term.Nit)(tm)
	assert.True(t, tm.HasTag(term.Nit))
}

// TestT_LiftsToPosition tests that a lifted operator touches one position and
// ignores absent ones.
func TestT_LiftsToPosition(t *testing.T) {
	p := prakriya.New()
	p.Push(term.MakeText("Bo"))
	p.Push(term.MakeText("a"))

	T(0, Antya("av"))(p)
	T(5, Antya("x"))(p)
	assert.Equal(t, "Bava", p.Text())
}

// TestUpadesha_ReplacesIdentity tests identity replacement and re-classification.
func TestUpadesha_ReplacesIdentity(t *testing.T) {
	p := prakriya.New()
	p.Push(term.MakeDhatu("BU", 1, 1))
	la := term.MakeUpadesha("la~w")
	la.AddTags(term.Pratyaya, term.Tin)
	p.Push(la)

	require.NoError(t, Upadesha(p, "3.4.78", 1, "tip"))

	assert.Equal(t, "BUti", p.Text())
	assert.True(t, la.HasU("tip"))
	assert.True(t, la.HasLakshana("la~w"))
	assert.True(t, la.HasTag(term.Pit))

	hist := p.History()
	require.Len(t, hist, 2)
	assert.Equal(t, prakriya.Step{Rule: "3.4.78", Result: "BUtip"}, hist[0])
	assert.Equal(t, prakriya.Step{Rule: "1.3.9", Result: "BUti"}, hist[1])
}

func TestUpadeshaYatha(t *testing.T) {
	p := prakriya.New()
	tin := term.MakeUpadesha("tas")
	tin.AddTags(term.Pratyaya, term.Tin)
	p.Push(tin)

	old := []string{"tip", "tas", "Ji"}
	sub := []string{"Ral", "atus", "us"}
	require.NoError(t, UpadeshaYatha(p, "3.4.82", 0, old, sub))
	assert.Equal(t, "atus", p.Text())
	assert.True(t, tin.HasLakshana("tas"))

	// Unlisted identity: nothing changes, nothing is recorded.
	n := len(p.History())
	require.NoError(t, UpadeshaYatha(p, "3.4.82", 0, old, sub))
	assert.Equal(t, "atus", p.Text())
	assert.Len(t, p.History(), n)

	assert.Panics(t, func() { _ = UpadeshaYatha(p, "x", 0, old, sub[:1]) })
}

func TestTextYatha(t *testing.T) {
	p := prakriya.New()
	p.Push(term.MakeUpadesha("graha~^"))
	p.Set(0, Text("grah"))
	before := []string{"vac", "grah"}
	after := []string{"uc", "gfh"}

	assert.True(t, TextYatha(p, "6.1.16", 0, before, after))
	tm, _ := p.Get(0)
	assert.Equal(t, "gfh", tm.Text)
	assert.True(t, tm.HasU("graha~^"))
	require.Len(t, p.History(), 1)
	assert.Equal(t, prakriya.Step{Rule: "6.1.16", Result: "gfh"}, p.History()[0])

	assert.False(t, TextYatha(p, "6.1.16", 0, before, after))
	assert.Len(t, p.History(), 1)
	assert.False(t, TextYatha(p, "6.1.16", 3, before, after))
	assert.Panics(t, func() { TextYatha(p, "x", 0, before, after[:1]) })
}

// TestInsertAgama tests augment insertion on both sides.
func TestInsertAgama(t *testing.T) {
	p := prakriya.New()
	p.Push(term.MakeDhatu("BU", 1, 1))
	p.Push(term.MakeText("sya"))

	require.NoError(t, InsertAgamaBefore(p, "7.2.35", 1, "iw"))
	assert.Equal(t, "BUisya", p.Text())
	iw, _ := p.Get(1)
	assert.True(t, iw.All(term.Agama, term.Wit))

	require.NoError(t, InsertAgamaAfter(p, "6.4.71", -1, "aw"))
	assert.Equal(t, "aBUisya", p.Text())
	assert.Equal(t, 4, p.Len())
	assert.Equal(t, p.Text(), p.History()[len(p.History())-1].Result)
}

// TestInsertAgama_OutOfRangeIsInvariant tests the fatal path of insertion.
func TestInsertAgama_OutOfRangeIsInvariant(t *testing.T) {
	p := prakriya.New()
	p.Push(term.MakeDhatu("BU", 1, 1))

	err := InsertAgamaBefore(p, "6.4.71", 5, "aw")
	require.Error(t, err)
	var ie *prakriya.InvariantError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, prakriya.Rule("6.4.71"), ie.Rule)
	assert.Equal(t, 5, ie.Position)
}

// TestAppendAgama tests that an appended augment becomes part of the term.
func TestAppendAgama(t *testing.T) {
	p := prakriya.New()
	p.Push(term.MakeDhatu("BU", 1, 1))
	p.Push(term.MakeText("a"))

	require.NoError(t, AppendAgama(p, "6.4.88", 0, "vu~k"))
	assert.Equal(t, "BUva", p.Text())
	assert.Equal(t, 2, p.Len())
	dhatu, _ := p.Get(0)
	assert.True(t, dhatu.HasAntya('v'))

	err := AppendAgama(p, "6.4.88", 9, "vu~k")
	assert.True(t, prakriya.IsInvariantError(err))
}
