package operators

import (
	"fmt"

	"github.com/roach88/prakriya/internal/itsamjna"
	"github.com/roach88/prakriya/internal/prakriya"
	"github.com/roach88/prakriya/internal/term"
)

// Upadesha gives the term at i a new identity under rule: the old identity
// moves into the identity history, text and identity become sub, the rule is
// recorded, and it-samjna runs again. An absent position is a no-op.
func Upadesha(p *prakriya.Prakriya, rule prakriya.Rule, i int, sub string) error {
	t, ok := p.Get(i)
	if !ok {
		return nil
	}
	t.ReplaceIdentity(sub)
	t.Text = sub
	p.Step(rule)
	return classify(p, i, rule)
}

// UpadeshaYatha replaces the term's identity by the entry of sub at the same
// index as its current identity in old. Nothing changes, and nothing is
// recorded, when the identity is not listed. Tables of different lengths are a
// programming error.
func UpadeshaYatha(p *prakriya.Prakriya, rule prakriya.Rule, i int, old, sub []string) error {
	mustMatch(old, sub)
	t, ok := p.Get(i)
	if !ok {
		return nil
	}
	for k, u := range old {
		if t.HasU(u) {
			return Upadesha(p, rule, i, sub[k])
		}
	}
	return nil
}

// TextYatha replaces the term's text by the entry of sub at the same index as
// its current text in old, and records rule. The identity is kept. It reports
// whether the text was listed; nothing is recorded when it was not.
func TextYatha(p *prakriya.Prakriya, rule prakriya.Rule, i int, old, sub []string) bool {
	mustMatch(old, sub)
	t, ok := p.Get(i)
	if !ok {
		return false
	}
	for k, s := range old {
		if t.Text == s {
			t.Text = sub[k]
			p.Step(rule)
			return true
		}
	}
	return false
}

// InsertBefore inserts t at i, records rule and classifies the new term.
func InsertBefore(p *prakriya.Prakriya, rule prakriya.Rule, i int, t *term.Term) error {
	if !p.InsertBefore(i, t) {
		return prakriya.NewInvariantError(rule, i, "insertion position out of range")
	}
	p.Step(rule)
	return classify(p, i, rule)
}

// InsertAgamaBefore inserts the augment u before position i.
func InsertAgamaBefore(p *prakriya.Prakriya, rule prakriya.Rule, i int, u string) error {
	return InsertBefore(p, rule, i, term.MakeAgama(u))
}

// InsertAgamaAfter inserts the augment u after position i.
func InsertAgamaAfter(p *prakriya.Prakriya, rule prakriya.Rule, i int, u string) error {
	return InsertBefore(p, rule, i+1, term.MakeAgama(u))
}

// AppendAgama attaches the augment u to the end of the term at i. The augment
// is classified on its own and its remaining text joins the term's text, so
// the term's final sound is the augment's.
func AppendAgama(p *prakriya.Prakriya, rule prakriya.Rule, i int, u string) error {
	t, ok := p.Get(i)
	if !ok {
		return prakriya.NewInvariantError(rule, i, "no term to append to")
	}
	scratch := prakriya.New()
	scratch.Push(term.MakeAgama(u))
	if err := itsamjna.Run(scratch, 0); err != nil {
		return prakriya.WrapInvariant(rule, i, "it-samjna failed", err)
	}
	a, _ := scratch.Get(0)
	t.Text += a.Text
	p.Step(rule)
	return nil
}

func classify(p *prakriya.Prakriya, i int, rule prakriya.Rule) error {
	if err := itsamjna.Run(p, i); err != nil {
		return prakriya.WrapInvariant(rule, i, "it-samjna failed", err)
	}
	return nil
}

func mustMatch(old, sub []string) {
	if len(old) != len(sub) {
		panic(fmt.Sprintf("operators: substitution table mismatch: %d != %d", len(old), len(sub)))
	}
}
