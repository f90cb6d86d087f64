package rules

import (
	"strings"

	"github.com/roach88/prakriya/internal/args"
	"github.com/roach88/prakriya/internal/operators"
	"github.com/roach88/prakriya/internal/prakriya"
	"github.com/roach88/prakriya/internal/sounds"
	"github.com/roach88/prakriya/internal/term"
)

// The eighteen tin endings of 3.4.78, in person-major order.
var (
	parasmaiTin = []string{"tip", "tas", "Ji", "sip", "Tas", "Ta", "mip", "vas", "mas"}
	atmaneTin   = []string{"ta", "AtAm", "Ja", "TAs", "ATAm", "Dvam", "iw", "vahi", "mahiN"}
	litParasmai = []string{"Ral", "atus", "us", "Tal", "aTus", "a", "Ral", "va", "ma"}
)

var (
	witLakaras = []string{"la~w", "li~w", "lu~w", "lf~w", "lo~w"}
	nitLakaras = []string{"la~N", "li~N", "lu~N", "lf~N"}
)

// TinAdesha replaces the lakara with the ending for the requested person and
// number (3.4.78) and applies the whole-ending substitutes of liw and luw.
func TinAdesha(p *prakriya.Prakriya, pv args.PurushaVacana) error {
	i, ok := tinIndex(p)
	if !ok {
		return prakriya.NewInvariantError("3.4.78", 0, "no lakara")
	}
	la, _ := p.Get(i)
	atmane := la.HasTag(term.Atmanepada)
	if atmane && p.HasTag(term.Ashih) {
		return unsupported("3.4.102", "ASIrliN in atmanepada takes sIyuw with suw inside the ending")
	}

	// The markers of the lakara are not inherited by its substitute.
	p.Set(i, func(t *term.Term) {
		for _, tag := range []term.Tag{term.Wit, term.Nit, term.Adit, term.Idit, term.Udit, term.Fdit} {
			t.RemoveTag(tag)
		}
	})

	endings := parasmaiTin
	if atmane {
		endings = atmaneTin
	}
	if err := operators.Upadesha(p, "3.4.78", i, endings[pv.Index()]); err != nil {
		return err
	}

	t, _ := p.Get(i)
	switch {
	case t.HasLakshana("li~w") && !atmane:
		if err := operators.UpadeshaYatha(p, "3.4.82", i, parasmaiTin, litParasmai); err != nil {
			return err
		}
	case t.HasLakshana("li~w"):
		if err := operators.UpadeshaYatha(p, "3.4.81", i, []string{"ta", "Ja"}, []string{"eS", "irec"}); err != nil {
			return err
		}
	case t.HasLakshana("lu~w") && pv.Purusha == args.Prathama:
		old := []string{"tip", "tas", "Ji", "ta", "AtAm", "Ja"}
		sub := []string{"qA", "rO", "ras", "qA", "rO", "ras"}
		if err := operators.UpadeshaYatha(p, "2.4.85", i, old, sub); err != nil {
			return err
		}
	}
	return nil
}

// TinSiddhi applies the rules that shape the ending once the vikarana is in
// place: the wit/Nit/low substitutions, the liN augments, the J substitutes
// and the atidesha of kit and Nit.
func TinSiddhi(p *prakriya.Prakriya) error {
	i, ok := tinIndex(p)
	if !ok {
		return prakriya.NewInvariantError("3.4.79", 0, "no ending")
	}
	t, _ := p.Get(i)
	atmane := t.HasTag(term.Atmanepada)
	lot := t.HasLakshana("lo~w")
	nit := t.HasLakshanaIn(nitLakaras...)
	lin := t.HasLakshana("li~N")

	if atmane && t.HasLakshanaIn(witLakaras...) && t.HasUIn(atmaneTin...) {
		if t.HasU("TAs") {
			p.OpTerm("3.4.80", i, operators.Text("se"))
		} else {
			p.OpTerm("3.4.79", i, operators.Ti("e"))
		}
	}

	var err error
	switch {
	case lot:
		err = lotSiddhi(p, i, atmane)
	case nit:
		err = nitSiddhi(p, i, atmane, lin)
	}
	if err != nil {
		return err
	}

	// Positions may have shifted after an augment.
	i, _ = tinIndex(p)
	jSubstitute(p, i, atmane)
	atidesha(p)
	atoNitah(p)
	return nil
}

func lotSiddhi(p *prakriya.Prakriya, i int, atmane bool) error {
	t, _ := p.Get(i)
	uttama := p.HasTag(term.Uttama)
	if !atmane {
		switch {
		case t.HasU("sip"):
			if err := operators.Upadesha(p, "3.4.87", i, "hi"); err != nil {
				return err
			}
			p.Set(i, operators.RemoveTag(term.Pit))
		case t.HasU("mip"):
			p.OpTerm("3.4.89", i, operators.Text("ni"))
		case strings.HasSuffix(t.Text, "i"):
			p.OpTerm("3.4.86", i, operators.Antya("u"))
		}
		// lowo laNvat
		if err := operators.UpadeshaYatha(p, "3.4.101", i, []string{"tas", "Tas", "Ta"}, []string{"tAm", "tam", "ta"}); err != nil {
			return err
		}
		if t.HasUIn("vas", "mas") {
			p.OpTerm("3.4.99", i, operators.Antya(""))
		}
	} else {
		switch {
		case t.HasU("TAs"):
			p.OpTerm("3.4.91", i, operators.Text("sva"))
		case t.HasU("Dvam"):
			p.OpTerm("3.4.91", i, operators.Text("Dvam"))
		case uttama:
			p.OpTerm("3.4.93", i, operators.Antya("E"))
		default:
			p.OpTerm("3.4.90", i, operators.Antya("Am"))
		}
	}
	if uttama {
		if err := operators.InsertAgamaBefore(p, "3.4.92", i, "Aw"); err != nil {
			return err
		}
		p.Set(i+1, operators.AddTag(term.Pit))
	}
	return nil
}

func nitSiddhi(p *prakriya.Prakriya, i int, atmane, lin bool) error {
	t, _ := p.Get(i)
	if !atmane {
		switch {
		case lin && t.HasU("Ji"):
			if err := operators.Upadesha(p, "3.4.108", i, "jus"); err != nil {
				return err
			}
		case t.HasU("Ji") && takesJus(p, i):
			if err := operators.Upadesha(p, "3.4.109", i, "jus"); err != nil {
				return err
			}
		}
		old := []string{"tas", "Tas", "Ta", "mip"}
		sub := []string{"tAm", "tam", "ta", "am"}
		if err := operators.UpadeshaYatha(p, "3.4.101", i, old, sub); err != nil {
			return err
		}
		if t.HasUIn("vas", "mas") {
			p.OpTerm("3.4.99", i, operators.Antya(""))
		}
		if t.HasUIn("tip", "sip", "Ji") {
			p.OpTerm("3.4.100", i, operators.Antya(""))
		}
	}
	if !lin {
		return nil
	}

	if atmane {
		switch {
		case t.HasU("Ja"):
			if err := operators.Upadesha(p, "3.4.105", i, "ran"); err != nil {
				return err
			}
		case t.HasU("iw"):
			if err := operators.Upadesha(p, "3.4.106", i, "a"); err != nil {
				return err
			}
		}
		if err := operators.InsertAgamaBefore(p, "3.4.102", i, "sIyu~w"); err != nil {
			return err
		}
	} else {
		if err := operators.InsertAgamaBefore(p, "3.4.103", i, "yAsu~w"); err != nil {
			return err
		}
		if p.HasTag(term.Ashih) {
			p.OpTerm("3.4.104", i, operators.AddTag(term.Kit))
		} else {
			p.Set(i, operators.AddTag(term.Nit))
		}
	}
	i++

	if t.HasAdiIn(sounds.S("t T")) {
		if err := operators.InsertAgamaBefore(p, "3.4.107", i, "su~w"); err != nil {
			return err
		}
		i++
	}

	if p.HasTag(term.Ashih) {
		return nil
	}
	// The s of the liN augments is dropped in sarvadhatuka.
	p.Op("7.2.79", func(p *prakriya.Prakriya) {
		for k := 0; k < i; k++ {
			p.Set(k, func(a *term.Term) {
				if a.HasTag(term.Agama) && a.HasUIn("yAsu~w", "sIyu~w", "su~w") {
					a.Text = strings.ReplaceAll(a.Text, "s", "")
				}
			})
		}
	})

	agama, ok := p.FindPrevWhere(i, func(a *term.Term) bool { return a.HasU("yAsu~w") })
	if ok && p.Has(agama-1, func(a *term.Term) bool { return a.HasAntya('a') }) {
		p.OpTerm("7.2.80", agama, operators.Text("iy"))
	}
	return nil
}

// takesJus reports whether Ji follows sic or a reduplicated root (3.4.109).
// The Slu of the juhotyAdi roots already announces the reduplication.
func takesJus(p *prakriya.Prakriya, i int) bool {
	prev, ok := p.FindPrevWhere(i, func(t *term.Term) bool { return !t.IsEmpty() || t.HasTag(term.Slu) })
	if !ok {
		return false
	}
	t, _ := p.Get(prev)
	return (t.HasU("si~c") && !t.IsEmpty()) || t.HasTag(term.Slu) || t.HasTag(term.Abhyasta)
}

// jSubstitute replaces the J of Ji and Ja (7.1.3 - 7.1.5).
func jSubstitute(p *prakriya.Prakriya, i int, atmane bool) {
	t, _ := p.Get(i)
	if !t.HasAdi('J') {
		return
	}
	prev, ok := p.FindPrevWhere(i, func(t *term.Term) bool { return !t.IsEmpty() || t.HasTag(term.Slu) })
	var anga *term.Term
	if ok {
		anga, _ = p.Get(prev)
	}
	switch {
	case anga != nil && anga.HasTag(term.Slu):
		p.OpTerm("7.1.4", i, operators.Adi("at"))
	case atmane && anga != nil && !anga.HasAntya('a'):
		p.OpTerm("7.1.5", i, operators.Adi("at"))
	default:
		p.OpTerm("7.1.3", i, operators.Adi("ant"))
	}
}

// atidesha extends kit and Nit to affixes that do not carry them (1.2.1 -
// 1.2.12).
func atidesha(p *prakriya.Prakriya) {
	r, ok := rootIndex(p)
	if !ok {
		return
	}
	root, _ := p.Get(r)
	d, _ := dhatuIndex(p)
	dhatu, _ := p.Get(d)
	atmane := p.HasTag(term.Atmanepada)

	for k := d + 1; k < p.Len(); k++ {
		t, _ := p.Get(k)
		if !t.HasTag(term.Pratyaya) {
			continue
		}
		switch {
		case t.HasTag(term.Sarvadhatuka) && !t.HasTag(term.Pit) && !t.HasTag(term.Nit):
			p.OpTerm("1.2.4", k, operators.AddTag(term.Nit))
		case t.HasLakshana("li~w") && t.HasTag(term.Tin) && !t.HasTag(term.Pit) && !isSamyoganta(dhatu) && !t.HasTag(term.Kit):
			p.OpTerm("1.2.5", k, operators.AddTag(term.Kit))
		case k == d+1 && root.HasUIn(kutAdi...) && !t.Any(term.Yit, term.Rit, term.Nit):
			p.OpTerm("1.2.1", k, operators.AddTag(term.Nit))
		case t.HasU("si~c") && atmane && !t.IsEmpty() && !t.HasTag(term.Kit):
			switch {
			case dhatu.HasAntyaIn(sounds.S("f")):
				p.OpTerm("1.2.12", k, operators.AddTag(term.Kit))
			case isAnit(root) && dhatu.HasAntyaIn(sounds.Hal) && dhatu.HasUpadhaIn(sounds.Ik):
				p.OpTerm("1.2.11", k, operators.AddTag(term.Kit))
			}
		}
	}
}

// atoNitah replaces the A of a Nit ending with iy after an a-final anga
// (7.2.81).
func atoNitah(p *prakriya.Prakriya) {
	i, _ := tinIndex(p)
	t, _ := p.Get(i)
	if !t.HasAdi('A') || !t.HasTag(term.Nit) || !t.HasTag(term.Sarvadhatuka) {
		return
	}
	if p.Has(i-1, func(a *term.Term) bool { return a.HasAntya('a') && a.HasTag(term.Pratyaya) }) {
		p.OpTerm("7.2.81", i, operators.Adi("iy"))
	}
}
