package rules

import (
	"github.com/roach88/prakriya/internal/operators"
	"github.com/roach88/prakriya/internal/prakriya"
	"github.com/roach88/prakriya/internal/term"
)

// Atmanepada decides the pada of the ending (1.3.12 - 1.3.93). The decision is
// stored both as a global tag and on the lakara itself.
func Atmanepada(p *prakriya.Prakriya) error {
	la, ok := tinIndex(p)
	if !ok {
		return prakriya.NewInvariantError("1.3.78", 0, "no lakara")
	}
	r, ok := rootIndex(p)
	if !ok {
		return prakriya.NewInvariantError("1.3.78", 0, "no root")
	}
	root, _ := p.Get(r)
	d, _ := dhatuIndex(p)
	dhatu, _ := p.Get(d)
	lakara, _ := p.Get(la)

	atmane := func(rule prakriya.Rule) {
		p.Op(rule, func(p *prakriya.Prakriya) {
			p.AddTag(term.Atmanepada)
			p.Set(la, operators.AddTag(term.Atmanepada))
		})
	}
	parasmai := func(rule prakriya.Rule) {
		p.Op(rule, func(p *prakriya.Prakriya) {
			p.AddTag(term.Parasmaipada)
			p.Set(la, operators.AddTag(term.Parasmaipada))
		})
	}
	optionalParasmai := func(rule prakriya.Rule) bool {
		return p.OpOptional(rule, func(p *prakriya.Prakriya) {
			p.AddTag(term.Parasmaipada)
			p.Set(la, operators.AddTag(term.Parasmaipada))
		})
	}
	optionalAtmane := func(rule prakriya.Rule) bool {
		return p.OpOptional(rule, func(p *prakriya.Prakriya) {
			p.AddTag(term.Atmanepada)
			p.Set(la, operators.AddTag(term.Atmanepada))
		})
	}

	switch {
	case p.AnyTag(term.Karmani, term.Bhave):
		atmane("1.3.13")
	case root.HasUIn(dyutAdi...) && lakara.HasU("lu~N") && optionalParasmai("1.3.91"):
	case root.HasUIn(vrdbhyah...) && lakara.HasUIn("lf~w", "lf~N") && optionalParasmai("1.3.92"):
	case dhatu.HasTag(term.Pratyaya):
		// A root in Ric is ubhayapada when the fruit of the action goes to
		// the agent.
		if !optionalAtmane("1.3.74") {
			parasmai("1.3.78")
		}
	case root.Any(term.Anudattet, term.Nit):
		atmane("1.3.12")
	case root.Any(term.Svaritet, term.Yit):
		if !optionalAtmane("1.3.72") {
			parasmai("1.3.78")
		}
	default:
		parasmai("1.3.78")
	}
	return nil
}
