package rules

import (
	"github.com/roach88/prakriya/internal/prakriya"
	"github.com/roach88/prakriya/internal/sounds"
	"github.com/roach88/prakriya/internal/term"
)

// gunaVrddhi strengthens the vowel of an anga before an affix. The blocks
// come first so that they stop the general rules further down.
var gunaVrddhi = Cascade{
	{"7.3.83", angaWith(func(anga *term.Term, n term.View) bool {
		return anga.HasAntyaIn(sounds.Ik) && n.First().HasU("jus")
	}), gunaAntya},
	{"7.3.88", angaWith(func(anga *term.Term, n term.View) bool {
		return anga.HasUIn("BU", "zUN") && anga.HasTag(term.Dhatu) && n.First().HasTag(term.Tin) &&
			n.HasTag(term.Sarvadhatuka)
	}), Noop},
	{"1.1.5", angaWith(func(anga *term.Term, n term.View) bool {
		return isKnit(n) && (anga.HasAntyaIn(sounds.Ik) || laghuIkUpadha(anga))
	}), Noop},
	{"7.2.115", angaWith(func(anga *term.Term, n term.View) bool {
		return beforeNitAffix(anga, n) && anga.HasAntyaIn(sounds.Ac) && changesUnderVrddhi(anga.Text[len(anga.Text)-1])
	}), vrddhiAntya},
	{"7.2.116", angaWith(func(anga *term.Term, n term.View) bool {
		return beforeNitAffix(anga, n) && anga.HasUpadha('a')
	}), func(p *prakriya.Prakriya, rule prakriya.Rule, i int) error {
		p.OpTerm(rule, i, func(t *term.Term) { setAt(t, len(t.Text)-2, "A") })
		return nil
	}},
	{"7.2.1", func(p *prakriya.Prakriya, i int) bool {
		anga, n, ok := at(p, i)
		return ok && beforeSicParasmai(p, n) && anga.HasAntyaIn(sounds.Ik)
	}, vrddhiAntya},
	{"7.2.4", func(p *prakriya.Prakriya, i int) bool {
		anga, n, ok := at(p, i)
		return ok && beforeSicParasmai(p, n) && anga.HasAntyaIn(sounds.Hal) && isItAgama(n.First())
	}, Noop},
	{"7.2.3", func(p *prakriya.Prakriya, i int) bool {
		anga, n, ok := at(p, i)
		if !ok || !beforeSicParasmai(p, n) || !anga.HasAntyaIn(sounds.Hal) {
			return false
		}
		k := sounds.LastVowelIndex(anga.Text)
		return k >= 0 && changesUnderVrddhi(anga.Text[k])
	}, func(p *prakriya.Prakriya, rule prakriya.Rule, i int) error {
		t, _ := p.Get(i)
		k := sounds.LastVowelIndex(t.Text)
		c := t.Text[k]
		sub, _ := sounds.Vrddhi(c)
		substitute(p, rule, i, k, c, sub, false)
		return nil
	}},
	{"7.3.84", angaWith(func(anga *term.Term, n term.View) bool {
		return strengthens(anga, n) && anga.HasAntyaIn(sounds.Ik)
	}), gunaAntya},
	{"7.3.86", angaWith(func(anga *term.Term, n term.View) bool {
		return strengthens(anga, n) && laghuIkUpadha(anga)
	}), func(p *prakriya.Prakriya, rule prakriya.Rule, i int) error {
		t, _ := p.Get(i)
		k := len(t.Text) - 2
		c := t.Text[k]
		sub, _ := sounds.Guna(c)
		substitute(p, rule, i, k, c, sub, true)
		return nil
	}},
	{"7.3.101", angaWith(func(anga *term.Term, n term.View) bool {
		return anga.HasAntya('a') && n.HasTag(term.Sarvadhatuka) && n.HasAdiIn(sounds.Yay)
	}), func(p *prakriya.Prakriya, rule prakriya.Rule, i int) error {
		p.OpTerm(rule, i, func(t *term.Term) { setAt(t, len(t.Text)-1, "A") })
		return nil
	}},
}

// beforeNitAffix reports whether the affix after anga is Yit or Rit. An
// abhyasa is followed by its own root, whose markers do not count.
func beforeNitAffix(anga *term.Term, n term.View) bool {
	return !anga.HasTag(term.Abhyasa) && n.Last().HasTag(term.Pratyaya) && n.Last().Any(term.Yit, term.Rit)
}

// strengthens reports whether n is an affix before which guna applies.
func strengthens(anga *term.Term, n term.View) bool {
	return !anga.HasTag(term.Abhyasa) && n.Any(term.Sarvadhatuka, term.Ardhadhatuka) && !isKnit(n)
}

func beforeSicParasmai(p *prakriya.Prakriya, n term.View) bool {
	return n.Last().HasU("si~c") && !n.Last().IsEmpty() && p.HasTag(term.Parasmaipada)
}

func laghuIkUpadha(t *term.Term) bool {
	c, ok := t.Upadha()
	return ok && sounds.Ik.Contains(c) && isLaghu(c) && t.HasAntyaIn(sounds.Hal)
}

// changesUnderVrddhi reports whether vrddhi would alter c.
func changesUnderVrddhi(c byte) bool {
	sub, ok := sounds.Vrddhi(c)
	return ok && sub != string(c)
}

// setAt replaces the sound at k with sub.
func setAt(t *term.Term, k int, sub string) {
	if k < 0 || k >= len(t.Text) {
		return
	}
	t.Text = t.Text[:k] + sub + t.Text[k+1:]
}

// substitute replaces the vowel c at k with its guna or vrddhi sub. The r or
// l that 1.1.51 attaches to the substitute of f or x goes in with it, and
// 1.1.51 is cited on the same text.
func substitute(p *prakriya.Prakriya, rule prakriya.Rule, i, k int, c byte, sub string, guna bool) {
	r, rapara := sounds.Raparah(c)
	p.OpTerm(rule, i, func(t *term.Term) {
		setAt(t, k, sub+r)
		if guna {
			t.AddTag(term.FlagGuna)
		}
	})
	if rapara {
		p.Step("1.1.51")
	}
}

func gunaAntya(p *prakriya.Prakriya, rule prakriya.Rule, i int) error {
	t, _ := p.Get(i)
	c, _ := t.Antya()
	sub, _ := sounds.Guna(c)
	substitute(p, rule, i, len(t.Text)-1, c, sub, true)
	return nil
}

func vrddhiAntya(p *prakriya.Prakriya, rule prakriya.Rule, i int) error {
	t, _ := p.Get(i)
	c, _ := t.Antya()
	sub, _ := sounds.Vrddhi(c)
	substitute(p, rule, i, len(t.Text)-1, c, sub, false)
	return nil
}

// GunaVrddhi runs the guna and vrddhi rules for every anga. Augments are
// never strengthened themselves.
func GunaVrddhi(p *prakriya.Prakriya) error {
	for i := 0; i < p.Len(); i++ {
		if p.Has(i, func(t *term.Term) bool { return t.IsEmpty() || t.HasTag(term.Agama) }) {
			continue
		}
		if _, _, err := gunaVrddhi.Run(p, i); err != nil {
			return err
		}
	}
	return nil
}
