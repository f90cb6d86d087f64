package rules

import (
	"github.com/roach88/prakriya/internal/args"
	"github.com/roach88/prakriya/internal/itsamjna"
	"github.com/roach88/prakriya/internal/prakriya"
	"github.com/roach88/prakriya/internal/sounds"
	"github.com/roach88/prakriya/internal/term"
)

// laRule names the rule that introduces each lakara.
var laRule = map[args.La]prakriya.Rule{
	args.Lat:      "3.2.123",
	args.Lit:      "3.2.115",
	args.Lut:      "3.3.15",
	args.Lrt:      "3.3.13",
	args.Lot:      "3.3.162",
	args.Lan:      "3.2.111",
	args.AshirLin: "3.3.173",
	args.VidhiLin: "3.3.161",
	args.Lun:      "3.2.110",
	args.Lrn:      "3.3.139",
}

// unsupportedLa lists the lakara/root combinations whose derivation needs an
// affix this grammar does not build. Each entry names the first such rule.
func unsupportedLa(la args.La) Cascade {
	return Cascade{
		{"3.1.35", func(p *prakriya.Prakriya, i int) bool {
			return la == args.Lit && isAnekac(p, i)
		}, fail("liw of a root with more than one vowel takes Am")},
		{"3.1.36", func(p *prakriya.Prakriya, i int) bool {
			t, _ := p.Get(i)
			return la == args.Lit && t.HasAdiIn(sounds.Ac) && isGuru(t) && !t.HasAdiIn(sounds.S("f"))
		}, fail("liw of a vowel-initial heavy root takes Am")},
		{"2.4.40", func(p *prakriya.Prakriya, i int) bool {
			t, _ := p.Get(i)
			return la == args.Lit && t.HasU("a\\da~")
		}, fail("ad is replaced by Gasx~ in liw")},
		{"2.4.37", func(p *prakriya.Prakriya, i int) bool {
			t, _ := p.Get(i)
			return la == args.Lun && t.HasU("a\\da~")
		}, fail("ad is replaced by Gasx~ in luN")},
		{"3.1.48", func(p *prakriya.Prakriya, i int) bool {
			t, _ := p.Get(i)
			return la == args.Lun && t.HasTag(term.Pratyaya) && !takesCiR(p)
		}, fail("luN of a sanadyanta root takes caN")},
		{"7.2.45", func(p *prakriya.Prakriya, i int) bool {
			r, ok := rootIndex(p)
			if !ok {
				return false
			}
			root, _ := p.Get(r)
			switch la {
			case args.Lit, args.Lut, args.Lrt, args.Lrn:
				return root.HasUIn(radhAdi...)
			}
			return false
		}, fail("optional iw of the radhAdi roots needs num before jhal")},
	}
}

func fail(reason string) Action {
	return func(_ *prakriya.Prakriya, rule prakriya.Rule, _ int) error {
		return unsupported(rule, reason)
	}
}

// LaKarya introduces the lakara after the root.
func LaKarya(p *prakriya.Prakriya, la args.La) error {
	i, ok := dhatuIndex(p)
	if !ok {
		return prakriya.NewInvariantError(laRule[la], 0, "no root")
	}
	if _, _, err := unsupportedLa(la).Run(p, i); err != nil {
		return err
	}

	if la == args.AshirLin {
		p.AddTag(term.Ashih)
	}
	t := term.MakeUpadesha(la.Upadesha())
	t.AddTags(term.Pratyaya, term.Tin)
	p.Push(t)
	p.Step(laRule[la])
	return itsamjna.Run(p, p.Len()-1)
}
