package rules

import (
	"strings"

	"github.com/roach88/prakriya/internal/prakriya"
	"github.com/roach88/prakriya/internal/sounds"
	"github.com/roach88/prakriya/internal/term"
)

var (
	iOnly = sounds.S("i")
	iU    = sounds.S("i u")
	ec    = sounds.S("ec")
)

// at returns the anga at i with the window that follows it.
func at(p *prakriya.Prakriya, i int) (*term.Term, term.View, bool) {
	anga, ok := p.Get(i)
	if !ok {
		return nil, term.View{}, false
	}
	n, ok := nextReal(p, i)
	return anga, n, ok
}

// angaWith adapts a predicate over the anga and its following window.
func angaWith(pred func(anga *term.Term, n term.View) bool) Cond {
	return func(p *prakriya.Prakriya, i int) bool {
		anga, n, ok := at(p, i)
		return ok && pred(anga, n)
	}
}

// nextReal returns the window after i, skipping terms that have been elided by
// luk, slu or lup. An elided affix leaves no trace for the rules that look at
// the following sound.
func nextReal(p *prakriya.Prakriya, i int) (term.View, bool) {
	j, ok := p.FindNextWhere(i, func(t *term.Term) bool {
		return !(t.IsEmpty() && t.Any(term.Luk, term.Slu, term.Lup))
	})
	if !ok {
		return term.View{}, false
	}
	return p.View(j)
}

func isKnit(n term.View) bool {
	return n.Any(term.Kit, term.Nit)
}

// isItAgama reports whether t is the iw augment.
func isItAgama(t *term.Term) bool {
	return t.HasTag(term.Agama) && t.HasU("iw")
}

// tinIndex returns the position of the verb ending.
func tinIndex(p *prakriya.Prakriya) (int, bool) {
	return p.FindLast(term.Tin)
}

// tin returns the verb ending.
func tin(p *prakriya.Prakriya) (*term.Term, bool) {
	i, ok := tinIndex(p)
	if !ok {
		return nil, false
	}
	return p.Get(i)
}

// tinHasLakshana reports whether the verb ending came from one of the lakaras.
func tinHasLakshana(p *prakriya.Prakriya, us ...string) bool {
	t, ok := tin(p)
	return ok && t.HasLakshanaIn(us...)
}

// isLit reports whether the derivation is in liw.
func isLit(p *prakriya.Prakriya) bool { return tinHasLakshana(p, "li~w") }

// isAnekac reports whether the anga ending at i, together with everything
// before it, has at least two vowels.
func isAnekac(p *prakriya.Prakriya, i int) bool {
	n := 0
	for _, t := range p.Terms()[:i+1] {
		n += sounds.CountVowels(t.Text)
	}
	return n >= 2
}

// isSamyogapurva reports whether the final sound of the anga at i is preceded
// by a conjunct. The text of every term up to and including i counts, so the
// n of Snu is seen before its u.
func isSamyogapurva(p *prakriya.Prakriya, i int) bool {
	var b strings.Builder
	for _, t := range p.Terms()[:i+1] {
		b.WriteString(t.Text)
	}
	s := b.String()
	if len(s) < 3 {
		return false
	}
	return sounds.IsHal(s[len(s)-2]) && sounds.IsHal(s[len(s)-3])
}

// isSamyogadi reports whether t starts with two consonants.
func isSamyogadi(t *term.Term) bool {
	return len(t.Text) >= 2 && sounds.IsHal(t.Text[0]) && sounds.IsHal(t.Text[1])
}

// isSamyoganta reports whether t ends in two consonants.
func isSamyoganta(t *term.Term) bool {
	n := len(t.Text)
	return n >= 2 && sounds.IsHal(t.Text[n-1]) && sounds.IsHal(t.Text[n-2])
}

// isLaghu reports whether c is a short vowel.
func isLaghu(c byte) bool {
	h, ok := sounds.Hrasva(c)
	return ok && h == c && !ec.Contains(c)
}

// isGuru reports whether t has a heavy syllable: a long vowel, or a short
// vowel followed by two consonants.
func isGuru(t *term.Term) bool {
	s := t.Text
	for k := 0; k < len(s); k++ {
		if !sounds.IsAc(s[k]) {
			continue
		}
		if !isLaghu(s[k]) {
			return true
		}
		if countHalAfter(s, k) >= 2 {
			return true
		}
	}
	return false
}

func countHalAfter(s string, k int) int {
	n := 0
	for j := k + 1; j < len(s) && sounds.IsHal(s[j]); j++ {
		n++
	}
	return n
}

// isAnit reports whether the root is anudatta in upadesha, which by 7.2.10
// keeps it from taking iw when it has one vowel.
func isAnit(t *term.Term) bool {
	return t.HasTag(term.Anudatta) && t.IsEkac()
}

// dhatuIndex returns the position of the last root term, which includes a
// root formed with a sanadi affix.
func dhatuIndex(p *prakriya.Prakriya) (int, bool) {
	return p.FindLast(term.Dhatu)
}

// rootIndex returns the position of the lexical root itself.
func rootIndex(p *prakriya.Prakriya) (int, bool) {
	return p.FindFirstWhere(func(t *term.Term) bool {
		return t.HasTag(term.Dhatu) && !t.HasTag(term.Pratyaya) && !t.HasTag(term.Abhyasa)
	})
}
