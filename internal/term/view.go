package term

import (
	"strings"

	"github.com/roach88/prakriya/internal/sounds"
)

// View is a read-only window over consecutive terms.
//
// A window starts at some position and extends through any augments to the
// first real unit after them. Identity queries answer for that real unit and
// tag queries for the window as a whole; sound queries see the concatenated text of the whole window, so an
// augment's sounds count as the window's first sounds. Get still allows raw
// indexed access for two-unit lookahead (an augment followed by a specific
// ending, for example).
//
// A View never mutates the terms it looks at.
type View struct {
	terms []*Term
	start int
	end   int
}

// NewView builds the window that starts at start. It is absent when start is
// out of range or no real unit follows the augments at start.
func NewView(terms []*Term, start int) (View, bool) {
	if start < 0 || start >= len(terms) {
		return View{}, false
	}
	for end := start; end < len(terms); end++ {
		if !terms[end].HasTag(Agama) {
			return View{terms: terms, start: start, end: end}, true
		}
	}
	return View{}, false
}

// Start returns the position of the first term in the window.
func (v View) Start() int { return v.start }

// End returns the position of the real unit that closes the window.
func (v View) End() int { return v.end }

// First returns the first term in the window, which may be an augment.
func (v View) First() *Term { return v.terms[v.start] }

// Last returns the real unit that closes the window.
func (v View) Last() *Term { return v.terms[v.end] }

// Get returns the k-th term of the window, counting from its start.
func (v View) Get(k int) (*Term, bool) {
	if k < 0 || v.start+k > v.end {
		return nil, false
	}
	return v.terms[v.start+k], true
}

// Len returns the number of terms in the window.
func (v View) Len() int { return v.end - v.start + 1 }

// Text returns the concatenated text of the window.
func (v View) Text() string {
	var b strings.Builder
	for _, t := range v.terms[v.start : v.end+1] {
		b.WriteString(t.Text)
	}
	return b.String()
}

// HasTag reports whether any term in the window carries tag. An augment's
// markers belong to the affix it was added to.
func (v View) HasTag(tag Tag) bool {
	for _, t := range v.terms[v.start : v.end+1] {
		if t.HasTag(tag) {
			return true
		}
	}
	return false
}

// Any reports whether the window carries any of tags.
func (v View) Any(tags ...Tag) bool {
	for _, tag := range tags {
		if v.HasTag(tag) {
			return true
		}
	}
	return false
}

// All reports whether the window carries every tag.
func (v View) All(tags ...Tag) bool {
	for _, tag := range tags {
		if !v.HasTag(tag) {
			return false
		}
	}
	return true
}

// HasU reports whether the real unit's identity is u.
func (v View) HasU(u string) bool { return v.Last().HasU(u) }

// HasUIn reports whether the real unit's identity is one of us.
func (v View) HasUIn(us ...string) bool { return v.Last().HasUIn(us...) }

// HasLakshana reports whether any term in the window was ever identified as u.
func (v View) HasLakshana(u string) bool {
	for _, t := range v.terms[v.start : v.end+1] {
		if t.HasLakshana(u) {
			return true
		}
	}
	return false
}

// HasLakshanaIn reports whether any term in the window was ever identified as
// one of us.
func (v View) HasLakshanaIn(us ...string) bool {
	for _, u := range us {
		if v.HasLakshana(u) {
			return true
		}
	}
	return false
}

// Adi returns the first sound of the window.
func (v View) Adi() (byte, bool) {
	for _, t := range v.terms[v.start : v.end+1] {
		if c, ok := t.Adi(); ok {
			return c, true
		}
	}
	return 0, false
}

// Antya returns the last sound of the window.
func (v View) Antya() (byte, bool) {
	for i := v.end; i >= v.start; i-- {
		if c, ok := v.terms[i].Antya(); ok {
			return c, true
		}
	}
	return 0, false
}

// HasAdi reports whether the window starts with c.
func (v View) HasAdi(c byte) bool {
	x, ok := v.Adi()
	return ok && x == c
}

// HasAdiIn reports whether the window starts with a sound in set.
func (v View) HasAdiIn(set sounds.Set) bool {
	x, ok := v.Adi()
	return ok && set.Contains(x)
}

// HasAntyaIn reports whether the window ends with a sound in set.
func (v View) HasAntyaIn(set sounds.Set) bool {
	x, ok := v.Antya()
	return ok && set.Contains(x)
}
