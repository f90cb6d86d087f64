package rules

import (
	"github.com/roach88/prakriya/internal/operators"
	"github.com/roach88/prakriya/internal/prakriya"
	"github.com/roach88/prakriya/internal/sounds"
	"github.com/roach88/prakriya/internal/term"
)

// Angasya runs the rules of the anga section (6.4.1 - 7.4.97) in the order
// they interact: augments, the rules that must precede guna, guna and vrddhi,
// and the rules that see the strengthened vowel.
func Angasya(p *prakriya.Prakriya) error {
	if err := awAgama(p); err != nil {
		return err
	}
	if err := ItAgama(p); err != nil {
		return err
	}
	litRal(p)
	if err := eachAnga(p, beforeGuna, angaPrep); err != nil {
		return err
	}
	if err := GunaVrddhi(p); err != nil {
		return err
	}
	if err := eachAnga(p, afterGuna, Stacking{tasLopa}); err != nil {
		return err
	}
	return apriktaAgama(p)
}

// eachAnga runs every stacking at every position that can be an anga.
// Augments and terms that have already been elided are skipped.
func eachAnga(p *prakriya.Prakriya, stackings ...Stacking) error {
	for _, s := range stackings {
		for i := 0; i < p.Len(); i++ {
			if p.Has(i, func(t *term.Term) bool { return t.IsEmpty() || t.HasTag(term.Agama) }) {
				continue
			}
			if _, err := s.Run(p, i); err != nil {
				return err
			}
		}
	}
	return nil
}

// awAgama adds a to a root starting with a consonant in luN, laN and lfN
// (6.4.71), and A to a root starting with a vowel (6.4.72).
func awAgama(p *prakriya.Prakriya) error {
	if !tinHasLakshana(p, "lu~N", "la~N", "lf~N") {
		return nil
	}
	i, ok := p.FindFirstWhere(func(t *term.Term) bool { return t.Any(term.Abhyasa, term.Dhatu) })
	if !ok || p.Has(i-1, func(t *term.Term) bool { return t.HasTag(term.Agama) }) {
		return nil
	}
	if p.Has(i, func(t *term.Term) bool { return t.HasAdiIn(sounds.Ac) }) {
		return operators.InsertAgamaBefore(p, "6.4.72", i, "Aw")
	}
	return operators.InsertAgamaBefore(p, "6.4.71", i, "aw")
}

// litRal replaces Ral with O after an A-final root (7.1.34), and lets the
// first person Ral drop its R marker (7.1.91).
func litRal(p *prakriya.Prakriya) {
	i, ok := tinIndex(p)
	if !ok || !p.Has(i, func(t *term.Term) bool { return t.HasU("Ral") }) {
		return
	}
	d, _ := dhatuIndex(p)
	if p.Has(d, func(t *term.Term) bool { return t.HasAntya('A') }) && d+1 == i {
		p.OpTerm("7.1.34", i, operators.Text("O"))
		return
	}
	if !p.HasTag(term.Uttama) {
		return
	}
	if p.IsAllowed("7.1.91") {
		p.Accept("7.1.91")
		p.Step("7.1.91")
		return
	}
	p.Decline("7.1.91")
	p.Set(i, operators.RemoveTag(term.Rit))
}

// lengthening before y. f becomes ri before Sa, yak and the ASIrliN augment
// (7.4.28); any other final vowel becomes long before a kit y-initial affix
// that is not sarvadhatuka (7.4.25).
var dirghaBeforeY = Cascade{
	{"7.4.28", angaWith(func(anga *term.Term, n term.View) bool {
		return anga.HasTag(term.Dhatu) && anga.HasAntya('f') && riNContext(n)
	}), Do(operators.Antya("ri"))},
	{"7.4.25", angaWith(func(anga *term.Term, n term.View) bool {
		c, ok := anga.Antya()
		long, _ := sounds.Dirgha(c)
		return ok && anga.HasTag(term.Dhatu) && sounds.IsAc(c) && long != c && n.HasAdi('y') && isKnit(n) &&
			!n.HasTag(term.Sarvadhatuka)
	}), func(p *prakriya.Prakriya, rule prakriya.Rule, i int) error {
		p.OpTerm(rule, i, func(t *term.Term) {
			c, _ := t.Antya()
			long, _ := sounds.Dirgha(c)
			operators.Antya(string(long))(t)
		})
		return nil
	}},
}

func riNContext(n term.View) bool {
	if n.HasU("yak") || n.HasU("Sa") {
		return true
	}
	return n.First().HasU("yAsu~w") && n.HasTag(term.Ardhadhatuka)
}

var pvAdiHrasva = Cascade{
	{"7.3.80", angaWith(func(anga *term.Term, n term.View) bool {
		return anga.HasUIn(pvAdi...) && n.HasTag(term.Sit) && anga.HasAntyaIn(sounds.Ac)
	}), Do(func(t *term.Term) {
		c, _ := t.Antya()
		short, _ := sounds.Hrasva(c)
		operators.Antya(string(short))(t)
	})},
}

// yuk adds y to an A-final anga before ciR (7.3.33).
var yuk = Cascade{
	{"7.3.33", angaWith(func(anga *term.Term, n term.View) bool {
		return anga.HasAntya('A') && n.HasU("ciR")
	}), func(p *prakriya.Prakriya, rule prakriya.Rule, i int) error {
		return operators.AppendAgama(p, rule, i, "yu~k")
	}},
}

var angaPrep = Stacking{dirghaBeforeY, pvAdiHrasva, yuk}

// tasLopa handles the s of tAs and of the root as before an ending
// (7.4.50 - 7.4.52).
var tasLopa = Cascade{
	{"7.4.50", angaWith(func(anga *term.Term, n term.View) bool {
		return tasOrAs(anga) && n.HasAdi('s')
	}), Do(operators.Antya(""))},
	{"7.4.51", angaWith(func(anga *term.Term, n term.View) bool {
		return tasOrAs(anga) && n.HasAdi('r')
	}), Do(operators.Antya(""))},
	{"7.4.52", angaWith(func(anga *term.Term, n term.View) bool {
		return tasOrAs(anga) && n.HasAdi('e')
	}), Do(operators.Antya("h"))},
}

func tasOrAs(t *term.Term) bool {
	return t.HasAntya('s') && (t.HasU("tAsi~") || t.HasU("asa~"))
}

// apriktaAgama adds the augments that a one-consonant ending takes: Iw after
// as and a sic that survived (7.3.96), and aw after ad (7.3.100).
func apriktaAgama(p *prakriya.Prakriya) error {
	i, ok := tinIndex(p)
	if !ok {
		return nil
	}
	t, _ := p.Get(i)
	if len(t.Text) != 1 || !t.HasAntyaIn(sounds.Hal) || !t.HasTag(term.Sarvadhatuka) {
		return nil
	}
	prev, ok := p.FindPrevWhere(i, func(t *term.Term) bool { return !t.IsEmpty() })
	if !ok {
		return nil
	}
	before, _ := p.Get(prev)
	switch {
	case before.HasU("si~c") || (before.HasU("asa~") && before.HasTag(term.Dhatu)):
		return operators.InsertAgamaBefore(p, "7.3.96", i, "Iw")
	case before.HasU("a\\da~") && before.HasTag(term.Dhatu):
		return operators.InsertAgamaBefore(p, "7.3.100", i, "aw")
	}
	return nil
}
