package rules

import (
	"strings"

	"github.com/roach88/prakriya/internal/operators"
	"github.com/roach88/prakriya/internal/prakriya"
	"github.com/roach88/prakriya/internal/sounds"
	"github.com/roach88/prakriya/internal/term"
)

// Rules of the asiddhavat section (6.4.22 - 6.4.175) do not block each other:
// each family below is a cascade of its own, and the families stack.

// upadhaNalopa deletes the penultimate n of an anga (6.4.23 - 6.4.35).
var upadhaNalopa = Cascade{
	{"6.4.30", angaWith(func(anga *term.Term, n term.View) bool {
		return anga.HasU("ancu~") && anidithal(anga) && isKnit(n) && anga.HasUpadha('n')
	}), func(p *prakriya.Prakriya, rule prakriya.Rule, i int) error {
		// nAnceH pUjAyAm: the n stays in the sense of worship.
		if p.IsAllowed(rule) {
			p.Accept(rule)
			p.Step(rule)
			return nil
		}
		p.Decline(rule)
		p.OpTerm("6.4.24", i, operators.Upadha(""))
		return nil
	}},
	{"6.4.24", angaWith(func(anga *term.Term, n term.View) bool {
		return anidithal(anga) && isKnit(n) && anga.HasUpadha('n')
	}), Do(operators.Upadha(""))},
	{"6.4.25", angaWith(func(anga *term.Term, n term.View) bool {
		return anga.HasTextIn("danS", "sanj", "svanj") && n.HasU("Sap")
	}), Do(operators.Upadha(""))},
	{"6.4.26", angaWith(func(anga *term.Term, n term.View) bool {
		return anga.HasText("ranj") && n.HasU("Sap")
	}), Do(operators.Upadha(""))},
	{"6.4.34", angaWith(func(anga *term.Term, n term.View) bool {
		return anga.HasText("SAs") && isKnit(n) && (n.HasU("aN") || n.HasAdiIn(sounds.Hal))
	}), Do(operators.Upadha("i"))},
	{"6.4.35", angaWith(func(anga *term.Term, n term.View) bool {
		return anga.HasText("SAs") && n.Last().HasText("hi")
	}), Do(operators.Text("SA"))},
}

func anidithal(t *term.Term) bool {
	return !t.HasTag(term.Idit) && t.HasAntyaIn(sounds.Hal)
}

// antyaNalopa deletes or replaces the final nasal of an anga (6.4.36 - 6.4.44).
var antyaNalopa = Cascade{
	{"6.4.36", angaWith(func(anga *term.Term, n term.View) bool {
		return anga.HasText("han") && n.Last().HasText("hi")
	}), Do(operators.Text("ja"))},
	{"6.4.43", angaWith(func(anga *term.Term, n term.View) bool {
		return anga.HasTextIn("jan", "san", "Kan") && jhaliKniti(n) && n.HasAdi('y')
	}), Maybe(operators.Antya("A"))},
	{"6.4.42", angaWith(func(anga *term.Term, n term.View) bool {
		return anga.HasTextIn("jan", "san", "Kan") && (jhaliKniti(n) || n.HasU("san"))
	}), Do(operators.Antya("A"))},
	{"6.4.44", angaWith(func(anga *term.Term, n term.View) bool {
		return anga.HasText("tan") && n.HasU("yak")
	}), Maybe(operators.Antya("A"))},
	{"6.4.37", angaWith(func(anga *term.Term, n term.View) bool {
		nasal := anga.HasAntya('n') || anga.HasAntya('m')
		general := anga.HasTag(term.Anudatta) || anga.HasUIn(tanAdi...) || anga.HasText("van")
		return nasal && general && jhaliKniti(n) && anga.HasTag(term.Dhatu)
	}), Do(operators.Antya(""))},
}

func jhaliKniti(n term.View) bool {
	return n.HasAdiIn(sounds.Jhal) && isKnit(n)
}

// ardhadhatuke applies the rules conditioned on any following ardhadhatuka
// affix (6.4.46 - 6.4.51).
var ardhadhatuke = Cascade{
	{"6.4.47", angaWith(func(anga *term.Term, n term.View) bool {
		return anga.HasText("Brasj") && n.HasTag(term.Ardhadhatuka)
	}), Maybe(operators.Text("Barj"))},
	{"6.4.48", angaWith(func(anga *term.Term, n term.View) bool {
		return anga.HasAntya('a') && !anga.HasTag(term.Abhyasa) && anga.HasTag(term.Dhatu) &&
			n.HasTag(term.Ardhadhatuka)
	}), func(p *prakriya.Prakriya, rule prakriya.Rule, i int) error {
		p.OpTerm(rule, i, operators.Seq(operators.Antya(""), operators.AddTag(term.FlagAtLopa)))
		p.AddTag(term.FlagAtLopa)
		return nil
	}},
	{"6.4.51", angaWith(func(anga *term.Term, n term.View) bool {
		return anga.HasU("Ric") && n.HasTag(term.Ardhadhatuka) && !isItAgama(n.First())
	}), Do(operators.Lopa)},
}

// vuk adds v after BU before a vowel in luN and liw (6.4.88).
var vuk = Cascade{
	{"6.4.88", angaWith(func(anga *term.Term, n term.View) bool {
		return anga.HasText("BU") && n.HasLakshanaIn("lu~N", "li~w") && n.HasAdiIn(sounds.Ac)
	}), func(p *prakriya.Prakriya, rule prakriya.Rule, i int) error {
		return operators.AppendAgama(p, rule, i, "vu~k")
	}},
}

// mitHrasva shortens the vowel of a mit root before Ric (6.4.92).
var mitHrasva = Cascade{
	{"6.4.92", angaWith(func(anga *term.Term, n term.View) bool {
		return anga.HasTag(term.Mit) && anga.HasTag(term.Dhatu) && n.HasU("Ric") && anga.HasUpadhaIn(sounds.Ac)
	}), func(p *prakriya.Prakriya, rule prakriya.Rule, i int) error {
		p.OpTerm(rule, i, func(t *term.Term) {
			c, _ := t.Upadha()
			h, _ := sounds.Hrasva(c)
			operators.Upadha(string(h))(t)
		})
		return nil
	}},
}

// beforeGuna runs before guna and vrddhi.
var beforeGuna = Stacking{upadhaNalopa, antyaNalopa, ardhadhatuke, vuk}

// knitiArdhadhatuka applies the rules for an A-final anga before a kit or Nit
// ardhadhatuka affix (6.4.63 - 6.4.69).
var knitiArdhadhatuka = Cascade{
	{"6.4.63", angaWith(func(anga *term.Term, n term.View) bool {
		return anga.HasU("dI\\N") && knitiArdha(n) && n.HasAdiIn(sounds.Ac)
	}), func(p *prakriya.Prakriya, rule prakriya.Rule, i int) error {
		return operators.InsertAgamaAfter(p, rule, i, "yu~w")
	}},
	{"6.4.64", angaWith(func(anga *term.Term, n term.View) bool {
		return anga.HasAntya('A') && n.HasAdiIn(sounds.Ac) && (knitiArdha(n) || isItAgama(n.First()))
	}), Do(operators.Antya(""))},
	{"6.4.67", angaWith(func(anga *term.Term, n term.View) bool {
		return anga.HasAntya('A') && knitiArdha(n) && n.HasAdiIn(sounds.Hal) && isGhuMa(anga) &&
			n.HasLakshana("li~N")
	}), Do(operators.Antya("e"))},
	{"6.4.66", angaWith(func(anga *term.Term, n term.View) bool {
		return anga.HasAntya('A') && knitiArdha(n) && n.HasAdiIn(sounds.Hal) && isGhuMa(anga)
	}), Do(operators.Antya("I"))},
	{"6.4.68", angaWith(func(anga *term.Term, n term.View) bool {
		return anga.HasAntya('A') && knitiArdha(n) && isSamyogadi(anga) && n.HasLakshana("li~N") &&
			!n.First().All(term.Agama, term.Kit)
	}), Maybe(operators.Antya("e"))},
}

func knitiArdha(n term.View) bool {
	return isKnit(n) && n.HasTag(term.Ardhadhatuka)
}

func isGhuMa(t *term.Term) bool {
	return t.HasTag(term.Ghu) || t.HasTextIn("mA", "sTA", "gA", "sA") || t.HasU("o~hA\\k") ||
		(t.HasU("pA\\") && t.HasGana(1))
}

// finalIU replaces a final i or u before a vowel (6.4.77 - 6.4.87).
var finalIU = Cascade{
	{"6.4.81", angaWith(func(anga *term.Term, n term.View) bool {
		return iuBeforeAc(anga, n) && anga.HasU("i\\R")
	}), Do(operators.Antya("y"))},
	{"6.4.82", func(p *prakriya.Prakriya, i int) bool {
		anga, n, ok := at(p, i)
		return ok && iuBeforeAc(anga, n) && anga.HasAntyaIn(iOnly) && anga.HasTag(term.Dhatu) &&
			isAnekac(p, i) && !isSamyogapurva(p, i)
	}, Do(operators.Antya("y"))},
	{"6.4.87", func(p *prakriya.Prakriya, i int) bool {
		anga, n, ok := at(p, i)
		return ok && iuBeforeAc(anga, n) && anga.HasUIn("hu\\", "Snu") && n.HasTag(term.Sarvadhatuka) &&
			!isSamyogapurva(p, i)
	}, Do(operators.Antya("v"))},
	{"6.4.77", angaWith(func(anga *term.Term, n term.View) bool {
		return iuBeforeAc(anga, n) && (anga.HasTag(term.Dhatu) || anga.HasU("Snu") || anga.HasText("BrU"))
	}), Do(func(t *term.Term) {
		if t.HasAntyaIn(iOnly) {
			operators.Antya("iy")(t)
		} else {
			operators.Antya("uv")(t)
		}
	})},
}

func iuBeforeAc(anga *term.Term, n term.View) bool {
	return anga.HasAntyaIn(iU) && n.HasAdiIn(sounds.Ac)
}

// kniti applies the rules conditioned on a following kit or Nit affix
// (6.4.98 - 6.4.110).
var kniti = Cascade{
	{"6.4.98", angaWith(func(anga *term.Term, n term.View) bool {
		return isKnit(n) && anga.HasTextIn("gam", "han", "jan", "Kan", "Gas") && n.HasAdiIn(sounds.Ac) &&
			!n.HasU("aN")
	}), Do(operators.Upadha(""))},
	{"6.4.101", angaWith(func(anga *term.Term, n term.View) bool {
		return isKnit(n) && (anga.HasText("hu") || anga.HasAntyaIn(sounds.Jhal)) && n.First().HasText("hi")
	}), onNext(operators.Text("Di"))},
	{"6.4.104", angaWith(func(anga *term.Term, n term.View) bool {
		return anga.HasU("ciR") && n.HasTag(term.Tin)
	}), onNext(operators.Luk)},
	{"6.4.105", angaWith(func(anga *term.Term, n term.View) bool {
		return isKnit(n) && anga.HasAntya('a') && n.First().HasText("hi")
	}), onNext(operators.Luk)},
	{"6.4.106", func(p *prakriya.Prakriya, i int) bool {
		anga, n, ok := at(p, i)
		return ok && isKnit(n) && uPratyaya(anga) && n.First().HasText("hi") && !isSamyogapurva(p, i)
	}, onNext(operators.Luk)},
	{"6.4.108", func(p *prakriya.Prakriya, i int) bool {
		anga, n, ok := at(p, i)
		return ok && isKnit(n) && uPratyaya(anga) && afterKr(p, i) && n.HasAdiIn(sounds.S("m v"))
	}, Do(operators.Luk)},
	{"6.4.109", func(p *prakriya.Prakriya, i int) bool {
		anga, n, ok := at(p, i)
		return ok && isKnit(n) && uPratyaya(anga) && afterKr(p, i) && n.HasAdi('y')
	}, Do(operators.Luk)},
	{"6.4.107", func(p *prakriya.Prakriya, i int) bool {
		anga, n, ok := at(p, i)
		return ok && isKnit(n) && uPratyaya(anga) && !afterKr(p, i) && n.HasAdiIn(sounds.S("m v")) &&
			!isSamyogapurva(p, i)
	}, Maybe(operators.Antya(""))},
}

// onNext applies op to the first term of the window after the anga.
func onNext(op prakriya.TermOp) Action {
	return func(p *prakriya.Prakriya, rule prakriya.Rule, i int) error {
		n, ok := nextReal(p, i)
		if !ok {
			return prakriya.NewInvariantError(rule, i, "no term after the anga")
		}
		p.OpTerm(rule, n.Start(), op)
		return nil
	}
}

func uPratyaya(t *term.Term) bool {
	return t.HasAntya('u') && t.HasTag(term.Pratyaya)
}

// afterKr reports whether the root before the u-vikarana at i is kf.
func afterKr(p *prakriya.Prakriya, i int) bool {
	return p.Has(i-1, func(t *term.Term) bool { return t.HasU("qukf\\Y") && t.HasTextIn("kar", "kur") })
}

// ataUt replaces the a of kar with u before a kit or Nit sarvadhatuka affix
// that follows the u-vikarana (6.4.110).
var ataUt = Cascade{
	{"6.4.110", func(p *prakriya.Prakriya, i int) bool {
		anga, n, ok := at(p, i)
		return ok && anga.HasU("u") && anga.HasTag(term.Vikarana) && isKnit(n) &&
			n.HasTag(term.Sarvadhatuka) && p.Has(i-1, func(t *term.Term) bool { return t.HasText("kar") })
	}, func(p *prakriya.Prakriya, rule prakriya.Rule, i int) error {
		p.OpTerm(rule, i-1, operators.Text("kur"))
		return nil
	}},
}

// knitiSarvadhatuke applies the rules conditioned on a kit or Nit sarvadhatuka
// affix (6.4.111 - 6.4.119).
var knitiSarvadhatuke = Cascade{
	{"6.4.119", angaWith(func(anga *term.Term, n term.View) bool {
		return n.HasTag(term.Sarvadhatuka) && (anga.HasU("asa~") || anga.HasTag(term.Ghu)) && n.HasU("hi")
	}), func(p *prakriya.Prakriya, rule prakriya.Rule, i int) error {
		p.Op(rule, func(p *prakriya.Prakriya) {
			if a, ok := p.FindFirst(term.Abhyasa); ok {
				p.Set(a, operators.Text(""))
			}
			p.Set(i, operators.Antya("e"))
		})
		return nil
	}},
	{"6.4.111", angaWith(func(anga *term.Term, n term.View) bool {
		return knitiSarva(n) && anga.HasU("asa~")
	}), Do(func(t *term.Term) { t.Text = strings.Replace(t.Text, "a", "", 1) })},
	{"6.4.114", angaWith(func(anga *term.Term, n term.View) bool {
		return shnaAbhyasta(anga, n) && anga.HasText("daridrA") && n.HasAdiIn(sounds.Hal)
	}), Do(operators.Antya("i"))},
	{"6.4.115", angaWith(func(anga *term.Term, n term.View) bool {
		return shnaAbhyasta(anga, n) && anga.HasU("YiBI\\") && n.HasAdiIn(sounds.Hal)
	}), Maybe(operators.Antya("i"))},
	{"6.4.118", angaWith(func(anga *term.Term, n term.View) bool {
		return shnaAbhyasta(anga, n) && anga.HasU("o~hA\\k") && n.HasAdi('y')
	}), Do(operators.Antya(""))},
	{"6.4.116", angaWith(func(anga *term.Term, n term.View) bool {
		return shnaAbhyasta(anga, n) && anga.HasU("o~hA\\k") && n.HasAdiIn(sounds.Hal)
	}), func(p *prakriya.Prakriya, rule prakriya.Rule, i int) error {
		n, _ := nextReal(p, i)
		if n.First().HasText("hi") && p.OpOptionalTerm("6.4.117", i, operators.Antya("A")) {
			return nil
		}
		p.OpOptionalTerm(rule, i, operators.Antya("i"))
		return nil
	}},
	{"6.4.113", angaWith(func(anga *term.Term, n term.View) bool {
		return shnaAbhyasta(anga, n) && anga.HasAntya('A') && !anga.HasTag(term.Ghu) && n.HasAdiIn(sounds.Hal)
	}), Do(operators.Antya("I"))},
	{"6.4.112", angaWith(func(anga *term.Term, n term.View) bool {
		return shnaAbhyasta(anga, n) && anga.HasAntya('A')
	}), Do(operators.Antya(""))},
}

func knitiSarva(n term.View) bool {
	return isKnit(n) && n.HasTag(term.Sarvadhatuka)
}

func shnaAbhyasta(anga *term.Term, n term.View) bool {
	return knitiSarva(n) && (anga.HasU("SnA") || anga.HasTag(term.Abhyasta))
}

// etAdesha replaces the vowel of the root with e and drops the abhyasa
// (6.4.120 - 6.4.126).
var etAdesha = Cascade{
	{"6.4.120", etWhen(func(dhatu *term.Term) bool { return dhatu.HasText("daB") && dhatu.HasU("danBu~") }), etAbhyasaLopa},
	{"6.4.122", etWhen(func(dhatu *term.Term) bool {
		return dhatu.HasU("tF") || dhatu.HasTextIn("Pal", "Baj", "trap")
	}), etAbhyasaLopa},
	{"6.4.122.v1", etWhen(func(dhatu *term.Term) bool { return dhatu.HasText("SraT") && dhatu.HasU("SranTa~") }), etAbhyasaLopa},
	// graT is attested with e and no abhyasa, but no rule licenses it.
	{"???", etWhen(func(dhatu *term.Term) bool { return dhatu.HasText("graT") }), etAbhyasaLopa},
	{"6.4.123", etWhen(func(dhatu *term.Term) bool { return dhatu.HasText("rAD") }), maybeEtAbhyasaLopa},
	{"6.4.124", etWhen(func(dhatu *term.Term) bool {
		return dhatu.HasU("jF") || dhatu.HasTextIn("Bram", "tras")
	}), maybeEtAbhyasaLopa},
	{"6.4.125", etWhen(func(dhatu *term.Term) bool { return dhatu.HasUIn(phaNAdi...) }), maybeEtAbhyasaLopa},
	{"6.4.126", etWhen(func(dhatu *term.Term) bool {
		return dhatu.HasTextIn("Sas", "dad") || dhatu.HasAdi('v') || dhatu.HasTag(term.FlagGuna)
	}), Noop},
	{"6.4.120", AllOf(etWhen(isEkaHalMadhya), anadeshadi, kitLit), etAbhyasaLopa},
	{"6.4.121", AllOf(etWhen(isEkaHalMadhya), anadeshadi), etAbhyasaLopa},
}

// etWhen matches a root doubled in liw before a kit or Nit affix, or before
// iw followed by Tal, and applies pred to the root.
func etWhen(pred func(dhatu *term.Term) bool) Cond {
	return func(p *prakriya.Prakriya, i int) bool {
		dhatu, n, ok := at(p, i)
		if !ok || !isLit(p) || !dhatu.All(term.Dhatu, term.Abhyasta) {
			return false
		}
		if !p.Has(i-1, func(t *term.Term) bool { return t.HasTag(term.Abhyasa) }) {
			return false
		}
		second, _ := n.Get(1)
		thaliSeti := isItAgama(n.First()) && second != nil && second.HasU("Tal")
		return (isKnit(n) || thaliSeti) && pred(dhatu)
	}
}

// isEkaHalMadhya matches a root of the shape CaC.
func isEkaHalMadhya(dhatu *term.Term) bool {
	return len(dhatu.Text) == 3 && dhatu.HasAdiIn(sounds.Hal) && dhatu.HasAntyaIn(sounds.Hal) &&
		dhatu.HasUpadha('a')
}

// anadeshadi matches when the abhyasa starts with the same consonant as the
// root, which rules out roots whose abhyasa was changed by 7.4.62 or 8.4.54
// and roots whose initial is itself a substitute.
func anadeshadi(p *prakriya.Prakriya, i int) bool {
	dhatu, ok := p.Get(i)
	if !ok || dhatu.HasTag(term.FlagAdeshadi) || dhatu.HasAdiIn(sounds.Mahaprana) {
		return false
	}
	abhyasa, ok := p.Get(i - 1)
	if !ok {
		return false
	}
	a, _ := abhyasa.Adi()
	d, _ := dhatu.Adi()
	_, palatalised := sounds.Kuhoscu(d)
	return a == d && !palatalised
}

func kitLit(p *prakriya.Prakriya, i int) bool {
	_, n, ok := at(p, i)
	return ok && isKnit(n)
}

func etAbhyasaLopa(p *prakriya.Prakriya, rule prakriya.Rule, i int) error {
	p.Op(rule, func(p *prakriya.Prakriya) {
		p.Set(i, operators.Upadha("e"))
		p.Set(i-1, operators.Lopa)
	})
	return nil
}

func maybeEtAbhyasaLopa(p *prakriya.Prakriya, rule prakriya.Rule, i int) error {
	p.OpOptional(rule, func(p *prakriya.Prakriya) {
		p.Set(i, operators.Upadha("e"))
		p.Set(i-1, operators.Lopa)
	})
	return nil
}

// bhasya drops the ti of an anga before a qit affix (6.4.143).
var bhasya = Cascade{
	{"6.4.143", angaWith(func(_ *term.Term, n term.View) bool {
		return n.HasTag(term.Qit)
	}), Do(operators.Ti(""))},
}

// afterGuna runs after guna and vrddhi.
var afterGuna = Stacking{mitHrasva, knitiArdhadhatuka, finalIU, ataUt, kniti, knitiSarvadhatuke, etAdesha, bhasya}
