package rules

import (
	"github.com/roach88/prakriya/internal/prakriya"
	"github.com/roach88/prakriya/internal/sounds"
	"github.com/roach88/prakriya/internal/term"
)

// The last three padas of the grammar see the word as a string of sounds. Each
// rule below scans the joined text and applies at the first matching
// position, again and again, until nothing matches.

var (
	shOrK     = sounds.S("s k")
	ratvaFrom = sounds.S("r z f F")
	dental    = sounds.S("tu")
	retroflex = sounds.S("wu z")
	stops     = sounds.S("Jay")
	inKu      = sounds.In.Union(sounds.Ku)
	// Sounds that may stand between the trigger of Ratva and the n.
	ratvaGap = sounds.Aw.Union(sounds.Ku, sounds.Pu, sounds.S("M"))
)

// loc addresses one sound: term index and byte offset.
type loc struct {
	term, offset int
}

// word is a snapshot of the joined text with the location of every sound.
type word struct {
	p    *prakriya.Prakriya
	text []byte
	locs []loc
}

func readWord(p *prakriya.Prakriya) word {
	w := word{p: p}
	for i, t := range p.Terms() {
		for k := 0; k < len(t.Text); k++ {
			w.text = append(w.text, t.Text[k])
			w.locs = append(w.locs, loc{i, k})
		}
	}
	return w
}

// at returns the sound at x, or 0 outside the word.
func (w word) at(x int) byte {
	if x < 0 || x >= len(w.text) {
		return 0
	}
	return w.text[x]
}

// owner returns the term that holds the sound at x.
func (w word) owner(x int) *term.Term {
	t, _ := w.p.Get(w.locs[x].term)
	return t
}

func (w word) isFinal(x int) bool { return x == len(w.text)-1 }

// in reports whether the sound at x belongs to set. Positions outside the word
// belong to no set.
func (w word) in(x int, set sounds.Set) bool {
	c := w.at(x)
	return c != 0 && set.Contains(c)
}

// replace substitutes sub for the sound at x under rule.
func (w word) replace(rule prakriya.Rule, x int, sub string) {
	l := w.locs[x]
	w.p.OpTerm(rule, l.term, func(t *term.Term) {
		t.Text = t.Text[:l.offset] + sub + t.Text[l.offset+1:]
	})
}

type tripadiRule struct {
	rule  prakriya.Rule
	find  func(w word, x int) bool
	apply func(w word, rule prakriya.Rule, x int)
	// once marks rules that apply at most once per word.
	once bool
}

func drop(w word, rule prakriya.Rule, x int) { w.replace(rule, x, "") }

func substituteWith(f func(c byte) (byte, bool)) func(w word, rule prakriya.Rule, x int) {
	return func(w word, rule prakriya.Rule, x int) {
		c, _ := f(w.at(x))
		w.replace(rule, x, string(c))
	}
}

func sub(s string) func(w word, rule prakriya.Rule, x int) {
	return func(w word, rule prakriya.Rule, x int) { w.replace(rule, x, s) }
}

func changes(f func(c byte) (byte, bool), c byte) bool {
	d, ok := f(c)
	return ok && d != c
}

func isSicSound(w word, x int) bool {
	t := w.owner(x)
	return w.at(x) == 's' && t.HasU("si~c")
}

var tripadiRules = []tripadiRule{
	{rule: "8.2.25", find: func(w word, x int) bool {
		return w.at(x) == 's' && w.at(x+1) == 'D'
	}, apply: drop},
	{rule: "8.2.26", find: func(w word, x int) bool {
		return isSicSound(w, x) && w.in(x-1, sounds.Jhal) && w.in(x+1, sounds.Jhal)
	}, apply: drop},
	{rule: "8.2.27", find: func(w word, x int) bool {
		if !isSicSound(w, x) || !w.in(x+1, sounds.Jhal) || x == 0 {
			return false
		}
		prev := w.owner(x - 1)
		return !prev.HasTag(term.Agama) && isLaghu(w.at(x-1)) && sounds.IsAc(w.at(x-1))
	}, apply: drop},
	{rule: "8.2.28", find: func(w word, x int) bool {
		if !isSicSound(w, x) || x == 0 {
			return false
		}
		return isItAgama(w.owner(x-1)) && x+1 < len(w.text) && w.owner(x+1).HasU("Iw")
	}, apply: func(w word, rule prakriya.Rule, x int) {
		drop(w, rule, x)
		joinAt(w.p, w.locs[x-1].term)
	}},
	{rule: "8.2.29", find: func(w word, x int) bool {
		return w.in(x, shOrK) && w.in(x+1, sounds.Hal) && (x+2 == len(w.text) || w.in(x+2, sounds.Jhal))
	}, apply: drop},
	{rule: "8.2.23", once: true, find: func(w word, x int) bool {
		return w.isFinal(x) && w.in(x, sounds.Hal) && w.in(x-1, sounds.Hal)
	}, apply: drop},
	{rule: "8.2.66", find: func(w word, x int) bool {
		return w.isFinal(x) && w.at(x) == 's'
	}, apply: func(w word, rule prakriya.Rule, x int) {
		w.replace(rule, x, "r")
		w.replace("8.3.15", x, "H")
	}},
	{rule: "8.3.24", find: func(w word, x int) bool {
		return (w.at(x) == 'n' || w.at(x) == 'm') && !w.isFinal(x) && w.in(x+1, sounds.Jhal)
	}, apply: sub("M")},
	{rule: "8.3.59", find: func(w word, x int) bool {
		if w.at(x) != 's' || w.isFinal(x) || !w.in(x-1, inKu) {
			return false
		}
		t := w.owner(x)
		adeshadi := t.HasTag(term.FlagAdeshadi) && w.locs[x].offset == 0
		return t.Any(term.Pratyaya, term.Agama) || adeshadi
	}, apply: sub("z")},
	{rule: "8.3.78", once: true, find: func(w word, x int) bool {
		return dhvamD(w, x) && !isItAgama(w.owner(x-1))
	}, apply: sub("Q")},
	{rule: "8.3.79", once: true, find: func(w word, x int) bool {
		return dhvamD(w, x) && isItAgama(w.owner(x-1))
	}, apply: func(w word, rule prakriya.Rule, x int) {
		l := w.locs[x]
		w.p.OpOptionalTerm(rule, l.term, func(t *term.Term) {
			t.Text = t.Text[:l.offset] + "Q" + t.Text[l.offset+1:]
		})
	}},
	{rule: "8.4.2", find: ratva, apply: sub("R")},
	{rule: "8.4.41", find: func(w word, x int) bool {
		return w.in(x, dental) && w.in(x-1, retroflex)
	}, apply: substituteWith(sounds.Retroflex)},
	{rule: "8.4.54", find: func(w word, x int) bool {
		return w.owner(x).HasTag(term.Abhyasa) && w.in(x, stops) && changes(sounds.Alpaprana, w.at(x))
	}, apply: substituteWith(sounds.Alpaprana)},
	{rule: "8.4.55", find: func(w word, x int) bool {
		return w.in(x, stops) && w.in(x+1, sounds.Khar) && changes(sounds.Chartva, w.at(x))
	}, apply: substituteWith(sounds.Chartva)},
	{rule: "8.4.58", find: func(w word, x int) bool {
		return w.at(x) == 'M' && w.in(x+1, stops)
	}, apply: func(w word, rule prakriya.Rule, x int) {
		n, _ := sounds.NasalOf(w.at(x + 1))
		w.replace(rule, x, string(n))
	}},
}

// dhvamD matches the D of Dvam or Dve in luN and liw after an iR sound.
func dhvamD(w word, x int) bool {
	if w.at(x) != 'D' || w.at(x+1) != 'v' || x == 0 || !w.in(x-1, sounds.In) {
		return false
	}
	t := w.owner(x)
	return t.HasTag(term.Tin) && w.locs[x].offset == 0 && t.HasLakshanaIn("lu~N", "li~w")
}

// ratva matches an n that follows r, z or f within the word with only vowels,
// semivowels, h, velars, labials and anusvara between them (8.4.1, 8.4.2).
func ratva(w word, x int) bool {
	if w.at(x) != 'n' || w.isFinal(x) {
		return false
	}
	for y := x - 1; y >= 0; y-- {
		c := w.at(y)
		if ratvaFrom.Contains(c) {
			return true
		}
		if !ratvaGap.Contains(c) {
			return false
		}
	}
	return false
}

// maxTripadiSteps bounds each rule's repetitions.
const maxTripadiSteps = 64

// Tripadi runs the rules of 8.2 - 8.4 in order.
func Tripadi(p *prakriya.Prakriya) error {
	for _, r := range tripadiRules {
		for n := 0; ; n++ {
			if n == maxTripadiSteps {
				return prakriya.NewInvariantError(r.rule, -1, "rule did not settle")
			}
			w := readWord(p)
			x := firstMatch(w, r.find)
			if x < 0 {
				break
			}
			r.apply(w, r.rule, x)
			if r.once {
				break
			}
		}
	}
	return nil
}

func firstMatch(w word, find func(w word, x int) bool) int {
	for x := range w.text {
		if find(w, x) {
			return x
		}
	}
	return -1
}
