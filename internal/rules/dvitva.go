package rules

import (
	"github.com/roach88/prakriya/internal/operators"
	"github.com/roach88/prakriya/internal/prakriya"
	"github.com/roach88/prakriya/internal/sounds"
	"github.com/roach88/prakriya/internal/term"
)

var (
	shar = sounds.S("Sar")
	khay = sounds.S("Kay")
)

// Dvitva doubles the root in liw (6.1.8) and before Slu (6.1.10), then shapes
// the abhyasa (7.4.59 - 7.4.73).
func Dvitva(p *prakriya.Prakriya) error {
	var rule prakriya.Rule
	switch {
	case tinHasLakshana(p, "li~w"):
		rule = "6.1.8"
	case hasSlu(p):
		rule = "6.1.10"
	default:
		return nil
	}
	i, ok := rootIndex(p)
	if !ok {
		return prakriya.NewInvariantError(rule, 0, "no root to double")
	}
	dhatu, _ := p.Get(i)
	if dhatu.HasAdiIn(sounds.Ac) {
		return unsupported("6.1.2", "doubling of a vowel-initial root")
	}

	abhyasa := dhatu.Clone()
	abhyasa.RemoveTag(term.Dhatu)
	p.Op(rule, func(p *prakriya.Prakriya) {
		p.InsertBefore(i, abhyasa)
	})
	p.OpTerm("6.1.4", i, operators.AddTag(term.Abhyasa))
	p.Op("6.1.5", func(p *prakriya.Prakriya) {
		p.Set(i, operators.AddTag(term.Abhyasta))
		p.Set(i+1, operators.AddTag(term.Abhyasta))
	})

	if err := SamprasaranaForAbhyasa(p); err != nil {
		return err
	}
	abhyasaKarya(p, i)
	return nil
}

func hasSlu(p *prakriya.Prakriya) bool {
	_, ok := p.FindFirst(term.Slu)
	return ok
}

// abhyasaKarya applies the rules that shorten the abhyasa to one syllable.
func abhyasaKarya(p *prakriya.Prakriya, i int) {
	t, _ := p.Get(i)
	if short := halAdiShesha(t.Text); short != t.Text {
		rule := prakriya.Rule("7.4.60")
		if len(t.Text) > 2 && shar.Contains(t.Text[0]) && khay.Contains(t.Text[1]) {
			rule = "7.4.61"
		}
		p.OpTerm(rule, i, operators.Text(short))
	}

	k := sounds.LastVowelIndex(t.Text)
	if k < 0 {
		return
	}
	if h, _ := sounds.Hrasva(t.Text[k]); h != t.Text[k] {
		p.OpTerm("7.4.59", i, func(t *term.Term) {
			t.Text = t.Text[:k] + string(h) + t.Text[k+1:]
		})
	}
	if t.Text[k] == 'f' {
		p.OpTerm("7.4.66", i, func(t *term.Term) {
			t.Text = t.Text[:k] + "a" + t.Text[k+1:]
		})
	}
	if c, ok := t.Adi(); ok {
		if sub, ok := sounds.Kuhoscu(c); ok {
			p.OpTerm("7.4.62", i, operators.Adi(string(sub)))
		}
	}
	if t.HasU("BU") && tinHasLakshana(p, "li~w") {
		p.OpTerm("7.4.73", i, func(t *term.Term) {
			t.Text = t.Text[:k] + "a" + t.Text[k+1:]
		})
	}
}

// halAdiShesha keeps the first consonant and the first vowel (7.4.60). After
// a sibilant, the following voiceless stop is kept instead (7.4.61).
func halAdiShesha(s string) string {
	v := -1
	for k := 0; k < len(s); k++ {
		if sounds.IsAc(s[k]) {
			v = k
			break
		}
	}
	if v <= 0 {
		return s
	}
	first := s[0]
	if v > 1 && shar.Contains(s[0]) && khay.Contains(s[1]) {
		first = s[1]
	}
	return string(first) + string(s[v])
}
