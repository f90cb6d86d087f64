package rules

import (
	"fmt"
	"strings"

	"github.com/roach88/prakriya/internal/itsamjna"
	"github.com/roach88/prakriya/internal/operators"
	"github.com/roach88/prakriya/internal/prakriya"
	"github.com/roach88/prakriya/internal/term"
)

// retroflexRevert undoes the retroflexion that follows an initial z in
// upadesha once 6.1.64 has replaced the z: zwu becomes stu, zRA becomes snA.
var retroflexRevert = strings.NewReplacer("w", "t", "W", "T", "q", "d", "Q", "D", "R", "n")

// zAdiExceptions keep their initial z.
var zAdiExceptions = []string{"zWivu~", "zvazka~\\"}

// DhatuKarya pushes the root and applies the rules that concern the bare root:
// it-samjna, the z/R initials and the samjnas that depend on identity alone.
func DhatuKarya(p *prakriya.Prakriya, upadesha string, gana, number int) error {
	if upadesha == "" {
		return fmt.Errorf("rules: empty root upadesha")
	}
	p.Push(term.MakeDhatu(upadesha, gana, number))
	i := p.Len() - 1
	p.Step("1.3.1")
	if err := itsamjna.Run(p, i); err != nil {
		return err
	}

	if p.Has(i, func(t *term.Term) bool { return t.HasUIn(ghu...) }) {
		p.OpTerm("1.1.20", i, operators.AddTag(term.Ghu))
	}

	dhatu, _ := p.Get(i)
	switch {
	case dhatu.HasAdi('z') && !dhatu.HasUIn(zAdiExceptions...):
		p.OpTerm("6.1.64", i, func(t *term.Term) {
			rest := t.Text[1:]
			if len(rest) > 0 {
				rest = retroflexRevert.Replace(rest[:1]) + rest[1:]
			}
			t.Text = "s" + rest
			t.AddTag(term.FlagAdeshadi)
		})
	case dhatu.HasAdi('R'):
		p.OpTerm("6.1.65", i, operators.Adi("n"))
	}

	if dhatu.HasTag(term.Idit) {
		p.OpTerm("7.1.58", i, operators.Mit("n"))
	}
	return nil
}
