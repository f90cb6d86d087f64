package rules

import (
	"github.com/roach88/prakriya/internal/operators"
	"github.com/roach88/prakriya/internal/prakriya"
	"github.com/roach88/prakriya/internal/term"
)

// AdecaUpadeshe applies 6.1.45: a root that ends in ec in upadesha takes A
// before an affix that is not Sit. It runs before dvitva so that the abhyasa
// copies the A.
func AdecaUpadeshe(p *prakriya.Prakriya) error {
	i, ok := rootIndex(p)
	if !ok {
		return nil
	}
	n, ok := nextReal(p, i)
	if !ok || !n.HasTag(term.Pratyaya) {
		return nil
	}
	// The S of the liw ending eS only makes it replace the whole ending.
	sit := n.HasTag(term.Sit) && !n.HasLakshana("li~w")
	if p.Has(i, func(t *term.Term) bool { return t.HasAntyaIn(ec) }) && !sit {
		p.OpTerm("6.1.45", i, operators.Antya("A"))
	}
	return nil
}
