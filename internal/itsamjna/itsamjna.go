// Package itsamjna classifies and removes the it markers of a term
// (1.3.2 - 1.3.9).
//
// Run reads the term's text as an upadesha, records one tag per marker, strips
// the markers and accent signs, and leaves the pronounced text behind. It is
// called once whenever a term receives a new upadesha.
package itsamjna

import (
	"strings"

	"github.com/roach88/prakriya/internal/prakriya"
	"github.com/roach88/prakriya/internal/sounds"
	"github.com/roach88/prakriya/internal/term"
)

// lakaras keep their initial l through 1.3.8 so that it can be replaced later.
var lakaras = []string{
	"la~w", "li~w", "lu~w", "lf~w", "le~w", "lo~w",
	"la~N", "li~N", "lu~N", "lf~N",
}

var nasalVowelTags = map[byte]term.Tag{
	'i': term.Idit, 'I': term.Idit,
	'u': term.Udit, 'U': term.Udit,
	'f': term.Fdit, 'F': term.Fdit,
	'a': term.Adit, 'A': term.Adit,
}

var consonantTags = map[byte]term.Tag{
	'k': term.Kit,
	'N': term.Nit,
	'Y': term.Yit,
	'w': term.Wit,
	'R': term.Rit,
	'p': term.Pit,
	'S': term.Sit,
	'm': term.Mit,
	'q': term.Qit,
	'c': term.Cit,
	'l': term.Lit,
	'z': term.Zit,
}

var (
	cuTu     = sounds.S("cu wu")
	laShaKu  = sounds.S("l S ku")
	tuSM     = sounds.S("tu s m")
	accented = "\\^"
)

// Run classifies the it markers of the term at i and removes them.
//
// An absent position is an invariant violation: every caller has just created
// or re-identified the term it asks about.
func Run(p *prakriya.Prakriya, i int) error {
	t, ok := p.Get(i)
	if !ok {
		return prakriya.NewInvariantError("1.3.2", i, "no term to classify")
	}

	upadesha := t.Text
	text := stripNasals(t, upadesha)
	text = stripAccents(t, text)

	if t.HasTag(term.Dhatu) {
		text = stripDhatuPrefix(t, text)
	}

	if finalIsIt(t, upadesha) && len(text) > 0 {
		c := text[len(text)-1]
		if tag, ok := consonantTags[c]; ok {
			t.AddTag(tag)
		}
		text = text[:len(text)-1]
	}

	if t.HasTag(term.Pratyaya) && !t.HasUIn(lakaras...) && len(text) > 1 {
		text = stripInitial(t, text)
	}

	if text != t.Text {
		t.Text = text
		p.Step("1.3.9")
	}
	return nil
}

// stripNasals handles nasalized vowels (1.3.2) and the irit ending.
func stripNasals(t *term.Term, text string) string {
	if strings.HasSuffix(text, "ir~") {
		t.AddTag(term.Irit)
		text = strings.TrimSuffix(text, "ir~")
	}
	for {
		k := strings.IndexByte(text, '~')
		if k < 1 {
			return strings.ReplaceAll(text, "~", "")
		}
		if tag, ok := nasalVowelTags[text[k-1]]; ok {
			t.AddTag(tag)
		}
		end := k + 1
		if end < len(text) {
			switch text[end] {
			case '\\':
				t.AddTag(term.Anudattet)
				end++
			case '^':
				t.AddTag(term.Svaritet)
				end++
			}
		}
		text = text[:k-1] + text[end:]
	}
}

func stripAccents(t *term.Term, text string) string {
	if !strings.ContainsAny(text, accented) {
		return text
	}
	if strings.IndexByte(text, '\\') >= 0 {
		t.AddTag(term.Anudatta)
	}
	if strings.IndexByte(text, '^') >= 0 {
		t.AddTag(term.Svarita)
	}
	return strings.NewReplacer("\\", "", "^", "").Replace(text)
}

// stripDhatuPrefix applies 1.3.5 Adir Yiwudavah.
func stripDhatuPrefix(t *term.Term, text string) string {
	switch {
	case strings.HasPrefix(text, "Yi"):
		t.AddTag(term.Yidit)
	case strings.HasPrefix(text, "wu"):
		t.AddTag(term.Wvit)
	case strings.HasPrefix(text, "qu"):
		t.AddTag(term.Qvit)
	default:
		return text
	}
	return text[2:]
}

// finalIsIt applies 1.3.3 halantyam with the 1.3.4 exception for verb and
// nominal endings. The decision is made on the upadesha as written, so a root
// like tu\da~^ keeps its d once the nasal vowel is gone.
func finalIsIt(t *term.Term, upadesha string) bool {
	u := strings.TrimRight(upadesha, accented)
	if len(u) < 2 {
		return false
	}
	c := u[len(u)-1]
	if !sounds.IsHal(c) {
		return false
	}
	if t.Any(term.Tin, term.Sup) && tuSM.Contains(c) {
		return false
	}
	return true
}

// stripInitial applies 1.3.6 - 1.3.8 to affixes.
func stripInitial(t *term.Term, text string) string {
	c := text[0]
	switch {
	case c == 'z':
	case cuTu.Contains(c):
		// The J of Ji and Ja is replaced by 7.1.3 instead.
		if t.HasTag(term.Tin) && c == 'J' {
			return text
		}
	case laShaKu.Contains(c):
	default:
		return text
	}
	if tag, ok := consonantTags[c]; ok {
		t.AddTag(tag)
	}
	return text[1:]
}
