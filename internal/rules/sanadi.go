package rules

import (
	"github.com/roach88/prakriya/internal/operators"
	"github.com/roach88/prakriya/internal/prakriya"
	"github.com/roach88/prakriya/internal/term"
)

// Sanadi adds the affixes that form a new root. Only the svarthe Ric of the
// curAdi roots is covered.
func Sanadi(p *prakriya.Prakriya) error {
	i, ok := rootIndex(p)
	if !ok {
		return prakriya.NewInvariantError("3.1.25", 0, "no root")
	}
	root, _ := p.Get(i)
	if !root.HasGana(10) {
		return nil
	}

	nic := term.MakeUpadesha("Ric")
	nic.AddTag(term.Pratyaya)
	if err := operators.InsertBefore(p, "3.1.25", i+1, nic); err != nil {
		return err
	}
	p.OpTerm("3.1.32", i+1, operators.AddTag(term.Dhatu))

	// 6.4.92 looks at the root before its Ric.
	if root.HasUIn(curMit...) {
		p.Set(i, operators.AddTag(term.Mit))
	}
	return nil
}
