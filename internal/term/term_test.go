package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/prakriya/internal/sounds"
)

func TestTermSoundAccessors(t *testing.T) {
	tm := MakeText("sPur")

	c, ok := tm.Adi()
	require.True(t, ok)
	assert.Equal(t, byte('s'), c)

	c, ok = tm.Antya()
	require.True(t, ok)
	assert.Equal(t, byte('r'), c)

	c, ok = tm.Upadha()
	require.True(t, ok)
	assert.Equal(t, byte('u'), c)

	assert.True(t, tm.HasUpadhaIn(sounds.S("ik")))
	assert.True(t, tm.HasAntyaIn(sounds.Hal))
	assert.False(t, tm.HasAdiIn(sounds.Ac))
}

func TestUpadhaAbsentOnShortTerms(t *testing.T) {
	for _, text := range []string{"", "a"} {
		tm := MakeText(text)
		_, ok := tm.Upadha()
		assert.False(t, ok, "text %q", text)
		assert.False(t, tm.HasUpadha('a'))
	}

	_, ok := MakeText("").Adi()
	assert.False(t, ok)
}

func TestIdentitySurvivesTextChange(t *testing.T) {
	tm := MakeUpadesha("tip")
	tm.Text = "ti"
	assert.True(t, tm.HasU("tip"))
	assert.False(t, tm.HasText("tip"))

	tm.ReplaceIdentity("Ral")
	assert.True(t, tm.HasU("Ral"))
	assert.True(t, tm.HasLakshana("tip"))
	assert.False(t, tm.HasLakshana("Ral"))
	assert.True(t, tm.HasLakshanaIn("sip", "tip"))
}

func TestUnknownIdentityNeverMatches(t *testing.T) {
	tm := MakeText("kf")
	assert.False(t, tm.HasU("never-interned-identity"))
	assert.False(t, tm.HasU(""))
	assert.False(t, tm.HasLakshana("never-interned-identity"))
}

func TestTagsAccumulate(t *testing.T) {
	tm := MakeDhatu("BU", 1, 1)
	tm.AddTags(Kit, Pit)

	assert.True(t, tm.All(Dhatu, Kit, Pit))
	assert.True(t, tm.Any(Nit, Kit))
	assert.False(t, tm.Any(Nit, Sit))

	tm.RemoveTag(Kit)
	assert.False(t, tm.HasTag(Kit))
	assert.Equal(t, []string{"Dhatu", "pit"}, tm.Tags().Names())
}

func TestCloneSharesNothing(t *testing.T) {
	a := MakeUpadesha("tip")
	a.ReplaceIdentity("Ral")
	b := a.Clone()

	b.Text = "a"
	b.AddTag(Rit)
	b.ReplaceIdentity("a")

	assert.Equal(t, "tip", a.Text)
	assert.False(t, a.HasTag(Rit))
	assert.Len(t, a.Lakshana, 1)
	assert.Len(t, b.Lakshana, 2)
}

func TestTagString(t *testing.T) {
	assert.Equal(t, "kit", Kit.String())
	assert.Equal(t, "Sarvadhatuka", Sarvadhatuka.String())
	assert.Equal(t, "invalid", Tag(255).String())
}

func TestInternIsStable(t *testing.T) {
	a := Intern("qukf\\Y")
	b := Intern("qukf\\Y")
	assert.Equal(t, a, b)
	assert.Equal(t, "qukf\\Y", a.String())
}

func viewTerms() []*Term {
	dhatu := MakeDhatu("BU", 1, 1)
	iw := MakeAgama("iw")
	iw.Text = "i"
	iw.AddTag(Wit)
	tal := MakeUpadesha("Tal")
	tal.Text = "Ta"
	tal.Lakshana = []Identity{Intern("li~w")}
	tal.AddTags(Pratyaya, Tin)
	return []*Term{dhatu, iw, tal}
}

func TestViewSkipsAugments(t *testing.T) {
	terms := viewTerms()

	v, ok := NewView(terms, 1)
	require.True(t, ok)
	assert.Equal(t, 1, v.Start())
	assert.Equal(t, 2, v.End())
	assert.Equal(t, 2, v.Len())
	assert.True(t, v.HasTag(Tin))
	assert.True(t, v.HasTag(Wit), "augment markers count for the window")
	assert.True(t, v.All(Tin, Wit))
	assert.False(t, v.Any(Kit, Nit))
	assert.True(t, v.HasU("Tal"))
	assert.False(t, v.HasU("iw"))
	assert.True(t, v.First().HasTag(Agama))
	assert.Equal(t, "iTa", v.Text())

	// Edges come from the window text, so the augment's vowel is the first sound.
	assert.True(t, v.HasAdi('i'))
	assert.True(t, v.HasAdiIn(sounds.Ac))
	assert.True(t, v.HasAntyaIn(sounds.Ac))
}

func TestViewIndexedLookahead(t *testing.T) {
	v, ok := NewView(viewTerms(), 1)
	require.True(t, ok)

	first, ok := v.Get(0)
	require.True(t, ok)
	assert.True(t, first.HasU("iw"))

	second, ok := v.Get(1)
	require.True(t, ok)
	assert.True(t, second.HasU("Tal"))

	_, ok = v.Get(2)
	assert.False(t, ok)
	_, ok = v.Get(-1)
	assert.False(t, ok)
}

func TestViewLakshanaCoversWindow(t *testing.T) {
	v, ok := NewView(viewTerms(), 1)
	require.True(t, ok)
	assert.True(t, v.HasLakshana("li~w"))
	assert.True(t, v.HasLakshanaIn("la~w", "li~w"))
	assert.False(t, v.HasLakshana("la~w"))
}

func TestViewAbsent(t *testing.T) {
	terms := viewTerms()

	_, ok := NewView(terms, 3)
	assert.False(t, ok)
	_, ok = NewView(terms, -1)
	assert.False(t, ok)

	// Only augments remain.
	_, ok = NewView([]*Term{MakeAgama("aw")}, 0)
	assert.False(t, ok)
}
