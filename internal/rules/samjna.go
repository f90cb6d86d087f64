package rules

import (
	"github.com/roach88/prakriya/internal/operators"
	"github.com/roach88/prakriya/internal/prakriya"
	"github.com/roach88/prakriya/internal/term"
)

// Samjna marks every affix as sarvadhatuka or ardhadhatuka (3.4.113 -
// 3.4.117). It is idempotent and runs again after each stage that adds
// affixes.
func Samjna(p *prakriya.Prakriya) error {
	for i := 0; i < p.Len(); i++ {
		t, _ := p.Get(i)
		if !t.HasTag(term.Pratyaya) || t.Any(term.Sarvadhatuka, term.Ardhadhatuka) {
			continue
		}
		switch {
		case t.HasLakshana("li~w"):
			p.OpTerm("3.4.115", i, operators.AddTag(term.Ardhadhatuka))
		case t.HasLakshana("li~N") && p.HasTag(term.Ashih):
			p.OpTerm("3.4.116", i, operators.AddTag(term.Ardhadhatuka))
		case t.Any(term.Tin, term.Sit):
			p.OpTerm("3.4.113", i, operators.AddTag(term.Sarvadhatuka))
		case !t.HasTag(term.FlagNoArdhadhatuka):
			p.OpTerm("3.4.114", i, operators.AddTag(term.Ardhadhatuka))
		}
	}
	return nil
}
