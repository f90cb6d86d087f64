package rules

import (
	"github.com/roach88/prakriya/internal/prakriya"
	"github.com/roach88/prakriya/internal/sounds"
	"github.com/roach88/prakriya/internal/term"
)

// maxSandhiPasses bounds the sandhi loop. Every pass that changes something
// removes at least one vowel boundary, so a legal derivation settles long
// before this.
const maxSandhiPasses = 32

var vyOnly = sounds.S("y v")

// AcSandhi joins vowels across term boundaries (6.1.77 - 6.1.101) and drops y
// and v before a consonant (6.1.66). The single substitute for two sounds goes
// to the left term.
func AcSandhi(p *prakriya.Prakriya) error {
	for pass := 0; pass < maxSandhiPasses; pass++ {
		changed := vyorVali(p)
		for i := 0; i < p.Len(); i++ {
			if joinAt(p, i) {
				changed = true
			}
		}
		if !changed {
			return nil
		}
	}
	return prakriya.NewInvariantError("6.1.77", -1, "sandhi did not settle")
}

// vyorVali drops a y or v that is not the first sound of its term when a val
// consonant follows (6.1.66).
func vyorVali(p *prakriya.Prakriya) bool {
	changed := false
	for i := 0; i < p.Len(); i++ {
		t, _ := p.Get(i)
		for k := 1; k < len(t.Text); k++ {
			if !vyOnly.Contains(t.Text[k]) {
				continue
			}
			next, ok := soundAfter(p, i, k)
			if !ok || !sounds.Val.Contains(next) {
				continue
			}
			p.OpTerm("6.1.66", i, func(t *term.Term) {
				t.Text = t.Text[:k] + t.Text[k+1:]
			})
			changed = true
			break
		}
	}
	return changed
}

// soundAfter returns the sound that follows position k of term i, looking into
// later terms when k is the last position.
func soundAfter(p *prakriya.Prakriya, i, k int) (byte, bool) {
	t, _ := p.Get(i)
	if k+1 < len(t.Text) {
		return t.Text[k+1], true
	}
	j, ok := p.FindNextWhere(i, func(t *term.Term) bool { return !t.IsEmpty() })
	if !ok {
		return 0, false
	}
	u, _ := p.Get(j)
	return u.Text[0], true
}

// joinAt applies the vowel sandhi between term i and the next non-empty term.
func joinAt(p *prakriya.Prakriya, i int) bool {
	left, ok := p.Get(i)
	if !ok || left.IsEmpty() {
		return false
	}
	j, ok := p.FindNextWhere(i, func(t *term.Term) bool { return !t.IsEmpty() })
	if !ok {
		return false
	}
	right, _ := p.Get(j)
	x, _ := left.Antya()
	y, _ := right.Adi()
	if !sounds.IsAc(x) || !sounds.IsAc(y) {
		return false
	}

	var (
		rule prakriya.Rule
		sub  string
	)
	switch {
	case left.HasU("Aw") && left.HasTag(term.Agama):
		rule = "6.1.90"
		sub, _ = sounds.Vrddhi(y)
		if r, ok := sounds.Raparah(y); ok {
			sub += r
		}
	case x == 'a' && (y == 'a' || y == 'e' || y == 'o'):
		rule, sub = "6.1.97", string(y)
	case sounds.Savarna(x, y):
		d, _ := sounds.Dirgha(x)
		rule, sub = "6.1.101", string(d)
	case sounds.Ik.Contains(x):
		v, _ := sounds.YanOf(x)
		p.OpTerm("6.1.77", i, func(t *term.Term) { setAt(t, len(t.Text)-1, string(v)) })
		return true
	case ec.Contains(x):
		s, _ := sounds.Ayadi(x)
		p.OpTerm("6.1.78", i, func(t *term.Term) { setAt(t, len(t.Text)-1, s) })
		return true
	case (x == 'a' || x == 'A') && ec.Contains(y):
		rule = "6.1.88"
		sub, _ = sounds.Vrddhi(y)
	case x == 'a' || x == 'A':
		rule = "6.1.87"
		sub, _ = sounds.Guna(y)
		if sub == "" {
			return false
		}
		if r, ok := sounds.Raparah(y); ok {
			sub += r
		}
	default:
		return false
	}

	p.Op(rule, func(p *prakriya.Prakriya) {
		p.Set(i, func(t *term.Term) { setAt(t, len(t.Text)-1, sub) })
		p.Set(j, func(t *term.Term) { t.Text = t.Text[1:] })
	})
	return true
}
