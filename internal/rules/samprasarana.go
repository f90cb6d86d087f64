package rules

import (
	"github.com/roach88/prakriya/internal/operators"
	"github.com/roach88/prakriya/internal/prakriya"
	"github.com/roach88/prakriya/internal/term"
)

// Both tables fold in 6.1.108, which merges the vowel after the new vowel
// into it: vac gives uc rather than uac.
var (
	vaciSvapiBefore = []string{"vac", "svap", "yaj", "vap", "vah", "vas", "ve", "vye", "hve", "vad", "Svi"}
	vaciSvapiAfter  = []string{"uc", "sup", "ij", "up", "uh", "us", "u", "vI", "hU", "ud", "SU"}

	grahiJyaBefore = []string{"grah", "jyA", "vay", "vyaD", "vaS", "vyac", "vrasc", "praC", "Brasj"}
	grahiJyaAfter  = []string{"gfh", "ji", "uy", "viD", "uS", "vic", "vfSc", "pfC", "Bfsj"}
)

var grahiJya = []string{
	"graha~^", "jyA\\", "vayi~", "vya\\Da~", "vaSa~", "vyaca~", "o~vrascU~", "pra\\Ca~",
	"Bra\\sja~^", "vaya~\\",
}

func isVaciSvapi(t *term.Term) bool {
	return t.HasTag(term.Dhatu) && (t.HasUIn("va\\ca~", "Yizva\\pa~", "va\\ci~") || t.HasUIn(yajAdi...))
}

func isGrahiJya(t *term.Term) bool {
	return t.HasTag(term.Dhatu) && t.HasUIn(grahiJya...)
}

// SamprasaranaForDhatu replaces a semivowel of the root with its vowel before
// a kit or Nit affix (6.1.15, 6.1.16) and applies the root-specific
// replacements of 6.1.29 - 6.1.33.
func SamprasaranaForDhatu(p *prakriya.Prakriya) error {
	i, ok := rootIndex(p)
	if !ok {
		return nil
	}
	n, ok := nextReal(p, i)
	if !ok {
		return nil
	}
	dhatu, _ := p.Get(i)

	switch {
	case isVaciSvapi(dhatu) && n.HasTag(term.Kit):
		if dhatu.HasU("ve\\Y") && n.HasLakshana("li~w") {
			p.Step("6.1.40")
		} else if operators.TextYatha(p, "6.1.15", i, vaciSvapiBefore, vaciSvapiAfter) {
			p.Set(i, operators.AddTag(term.FlagSamprasarana))
		}
	case isGrahiJya(dhatu) && isKnit(n):
		if operators.TextYatha(p, "6.1.16", i, grahiJyaBefore, grahiJyaAfter) {
			p.Set(i, operators.AddTag(term.FlagSamprasarana))
		}
		if dhatu.HasText("uy") && dhatu.HasU("vayi~") {
			p.OpOptionalTerm("6.1.39", i, operators.Text("uv"))
		}
	}

	lit := n.HasLakshana("li~w")
	litOrYan := lit || n.HasU("yaN")
	willBeAbhyasta := lit || n.HasUIn("san", "yaN", "caN") || n.HasTag(term.Slu)
	switch {
	case dhatu.HasText("pyAy") && litOrYan:
		p.OpTerm("6.1.29", i, operators.Text("pI"))
	case dhatu.HasText("Svi") && litOrYan:
		p.OpOptionalTerm("6.1.30", i, operators.Text("Su"))
	case dhatu.HasText("hve") && willBeAbhyasta:
		p.OpTerm("6.1.33", i, operators.Text("hu"))
	}
	return nil
}

// SamprasaranaForAbhyasa applies samprasarana to the abhyasa in liw (6.1.17).
// It runs on the fresh copy, before the abhyasa is shortened.
func SamprasaranaForAbhyasa(p *prakriya.Prakriya) error {
	i, ok := p.FindFirst(term.Abhyasa)
	if !ok {
		return nil
	}
	dhatu, ok := p.Get(i + 1)
	if !ok || !dhatu.HasTag(term.Dhatu) || !tinHasLakshana(p, "li~w") {
		return nil
	}
	switch {
	case isVaciSvapi(dhatu) && !dhatu.HasText("Svi"):
		if dhatu.HasU("ve\\Y") {
			p.Step("6.1.40")
			return nil
		}
		operators.TextYatha(p, "6.1.17", i, vaciSvapiBefore, vaciSvapiAfter)
	case isGrahiJya(dhatu):
		operators.TextYatha(p, "6.1.17", i, grahiJyaBefore, grahiJyaAfter)
	}
	return nil
}
