package term

import (
	"github.com/roach88/prakriya/internal/sounds"
)

// Term is one morphological unit of a derivation: a root, an affix or an
// augment.
//
// Text is the current phoneme string. U is the canonical identity the term
// was introduced with; Lakshana records every identity the term had before
// its current one, oldest first. Terms are never removed from a derivation:
// elision empties Text and adds one of the Luk/Slu/Lup tags.
type Term struct {
	Text     string
	U        Identity
	Lakshana []Identity

	// Gana and Number locate a root in the lexicon. Both are zero for affixes.
	Gana   int
	Number int

	tags TagSet
}

// MakeUpadesha creates a term whose identity and text are both u. The text
// still carries it markers until it-samjna runs.
func MakeUpadesha(u string) *Term {
	return &Term{Text: u, U: Intern(u)}
}

// MakeText creates a term with text and no identity.
func MakeText(text string) *Term {
	return &Term{Text: text}
}

// MakeAgama creates an augment. Augments carry no tags other than Agama until
// it-samjna classifies them.
func MakeAgama(u string) *Term {
	t := MakeUpadesha(u)
	t.AddTag(Agama)
	return t
}

// MakeDhatu creates a root term.
func MakeDhatu(u string, gana, number int) *Term {
	t := MakeUpadesha(u)
	t.Gana = gana
	t.Number = number
	t.AddTag(Dhatu)
	return t
}

// Clone returns a deep copy that shares no mutable state with t.
func (t *Term) Clone() *Term {
	out := *t
	if t.Lakshana != nil {
		out.Lakshana = append([]Identity(nil), t.Lakshana...)
	}
	return &out
}

// Upadesha returns the canonical identity as a string.
func (t *Term) Upadesha() string {
	return t.U.String()
}

// Tags returns a copy of the term's tag set.
func (t *Term) Tags() TagSet {
	return t.tags
}

// HasTag reports whether the term carries tag.
func (t *Term) HasTag(tag Tag) bool {
	return t.tags.Has(tag)
}

// All reports whether the term carries every tag.
func (t *Term) All(tags ...Tag) bool {
	for _, tag := range tags {
		if !t.tags.Has(tag) {
			return false
		}
	}
	return true
}

// Any reports whether the term carries at least one of tags.
func (t *Term) Any(tags ...Tag) bool {
	for _, tag := range tags {
		if t.tags.Has(tag) {
			return true
		}
	}
	return false
}

// AddTag adds tag.
func (t *Term) AddTag(tag Tag) {
	t.tags.Add(tag)
}

// AddTags adds every tag.
func (t *Term) AddTags(tags ...Tag) {
	for _, tag := range tags {
		t.tags.Add(tag)
	}
}

// RemoveTag clears tag. Tags otherwise only accumulate.
func (t *Term) RemoveTag(tag Tag) {
	t.tags.Remove(tag)
}

// HasU reports whether the canonical identity is u.
func (t *Term) HasU(u string) bool {
	id, ok := Lookup(u)
	return ok && id != 0 && t.U == id
}

// HasUIn reports whether the canonical identity is one of us.
func (t *Term) HasUIn(us ...string) bool {
	for _, u := range us {
		if t.HasU(u) {
			return true
		}
	}
	return false
}

// HasLakshana reports whether the term was ever identified as u before its
// current identity.
func (t *Term) HasLakshana(u string) bool {
	id, ok := Lookup(u)
	if !ok || id == 0 {
		return false
	}
	for _, l := range t.Lakshana {
		if l == id {
			return true
		}
	}
	return false
}

// HasLakshanaIn reports whether any of us is in the identity history.
func (t *Term) HasLakshanaIn(us ...string) bool {
	for _, u := range us {
		if t.HasLakshana(u) {
			return true
		}
	}
	return false
}

// ReplaceIdentity records the current identity in the history and installs u.
func (t *Term) ReplaceIdentity(u string) {
	if t.U != 0 {
		t.Lakshana = append(t.Lakshana, t.U)
	}
	t.U = Intern(u)
}

// HasText reports whether the current text is s.
func (t *Term) HasText(s string) bool {
	return t.Text == s
}

// HasTextIn reports whether the current text is one of ss.
func (t *Term) HasTextIn(ss ...string) bool {
	for _, s := range ss {
		if t.Text == s {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the text has been elided.
func (t *Term) IsEmpty() bool {
	return t.Text == ""
}

// HasGana reports whether the root belongs to gana.
func (t *Term) HasGana(gana int) bool {
	return t.Gana == gana
}

// Adi returns the first sound.
func (t *Term) Adi() (byte, bool) {
	if t.Text == "" {
		return 0, false
	}
	return t.Text[0], true
}

// Antya returns the last sound.
func (t *Term) Antya() (byte, bool) {
	if t.Text == "" {
		return 0, false
	}
	return t.Text[len(t.Text)-1], true
}

// Upadha returns the penultimate sound. It is absent for terms shorter than
// two sounds.
func (t *Term) Upadha() (byte, bool) {
	if len(t.Text) < 2 {
		return 0, false
	}
	return t.Text[len(t.Text)-2], true
}

// HasAdi reports whether the first sound is c.
func (t *Term) HasAdi(c byte) bool {
	x, ok := t.Adi()
	return ok && x == c
}

// HasAdiIn reports whether the first sound is in set.
func (t *Term) HasAdiIn(set sounds.Set) bool {
	x, ok := t.Adi()
	return ok && set.Contains(x)
}

// HasAntya reports whether the last sound is c.
func (t *Term) HasAntya(c byte) bool {
	x, ok := t.Antya()
	return ok && x == c
}

// HasAntyaIn reports whether the last sound is in set.
func (t *Term) HasAntyaIn(set sounds.Set) bool {
	x, ok := t.Antya()
	return ok && set.Contains(x)
}

// HasUpadha reports whether the penultimate sound is c.
func (t *Term) HasUpadha(c byte) bool {
	x, ok := t.Upadha()
	return ok && x == c
}

// HasUpadhaIn reports whether the penultimate sound is in set.
func (t *Term) HasUpadhaIn(set sounds.Set) bool {
	x, ok := t.Upadha()
	return ok && set.Contains(x)
}

// IsEkac reports whether the text has exactly one vowel.
func (t *Term) IsEkac() bool {
	return sounds.CountVowels(t.Text) == 1
}
