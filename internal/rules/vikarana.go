package rules

import (
	"github.com/roach88/prakriya/internal/args"
	"github.com/roach88/prakriya/internal/operators"
	"github.com/roach88/prakriya/internal/prakriya"
	"github.com/roach88/prakriya/internal/term"
)

// ganaVikarana maps a gana to the vikarana it takes in kartari sarvadhatuka
// and the rule that adds it. Ganas 2 and 3 take Sap and then elide it.
var ganaVikarana = map[int]struct {
	rule prakriya.Rule
	u    string
}{
	4: {"3.1.69", "Syan"},
	5: {"3.1.73", "Snu"},
	6: {"3.1.77", "Sa"},
	8: {"3.1.79", "u"},
	9: {"3.1.81", "SnA"},
}

func vikarana(u string) *term.Term {
	t := term.MakeUpadesha(u)
	t.AddTags(term.Pratyaya, term.Vikarana)
	return t
}

// Vikarana inserts the affix that sits between the root and the ending.
func Vikarana(p *prakriya.Prakriya, la args.La) error {
	i, ok := tinIndex(p)
	if !ok {
		return prakriya.NewInvariantError("3.1.68", 0, "no ending")
	}
	r, _ := rootIndex(p)
	root, _ := p.Get(r)
	karmani := p.AnyTag(term.Karmani, term.Bhave)

	switch la {
	case args.Lrt, args.Lrn:
		return operators.InsertBefore(p, "3.1.33", i, vikarana("sya"))
	case args.Lut:
		return operators.InsertBefore(p, "3.1.33", i, vikarana("tAsi~"))
	case args.Lun:
		return luN(p, i, root, karmani)
	case args.Lit, args.AshirLin:
		return nil
	}

	if karmani {
		return operators.InsertBefore(p, "3.1.67", i, vikarana("yak"))
	}

	gana := root.Gana
	if root.HasUIn(tanAdi...) {
		gana = 8
	}
	if gana == 7 {
		return unsupported("3.1.78", "Snam infix and the jhaS sandhi it feeds")
	}
	if v, ok := ganaVikarana[gana]; ok {
		if err := operators.InsertBefore(p, v.rule, i, vikarana(v.u)); err != nil {
			return err
		}
		if v.u == "Sa" && root.HasUIn(append(mucAdi, trmphAdi...)...) {
			p.OpTerm("7.1.59", r, operators.Mit("n"))
		}
		return nil
	}

	if err := operators.InsertBefore(p, "3.1.68", i, vikarana("Sap")); err != nil {
		return err
	}
	switch gana {
	case 2:
		p.OpTerm("2.4.72", i, operators.Luk)
	case 3:
		p.OpTerm("2.4.75", i, operators.Slu)
	}
	return nil
}

// takesCiR reports whether cli becomes ciR (3.1.66): a karmani or bhave
// luN in the third person singular.
func takesCiR(p *prakriya.Prakriya) bool {
	return p.AnyTag(term.Karmani, term.Bhave) && p.HasTag(term.Prathama) && p.HasTag(term.Ekavacana)
}

func luN(p *prakriya.Prakriya, i int, root *term.Term, karmani bool) error {
	if err := operators.InsertBefore(p, "3.1.43", i, vikarana("cli~")); err != nil {
		return err
	}
	if karmani {
		if !takesCiR(p) {
			return unsupported("6.4.62", "karmani luN outside the third singular needs ciNvat")
		}
		return operators.Upadesha(p, "3.1.66", i, "ciR")
	}
	parasmai := p.HasTag(term.Parasmaipada)
	if parasmai && root.HasUIn(append(puzAdi, dyutAdi...)...) {
		return operators.Upadesha(p, "3.1.55", i, "aN")
	}
	if err := operators.Upadesha(p, "3.1.44", i, "si~c"); err != nil {
		return err
	}
	if parasmai && (root.HasU("BU") || root.HasTag(term.Ghu)) {
		p.OpTerm("2.4.77", i, operators.Luk)
	}
	return nil
}
