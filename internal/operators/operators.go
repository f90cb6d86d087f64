// Package operators provides small, composable mutators over terms.
//
// Most operators are term operators: a static target description turned into
// a prakriya.TermOp. T lifts a term operator to a whole-state operator at a
// fixed position. Operators never fail; one whose target is undefined (the
// penultimate sound of a one-sound term, say) leaves the term unchanged.
//
// The identity operators (Upadesha, UpadeshaYatha) and the insertion helpers
// re-run it-samjna on the term they touch and return its error, which is
// always an invariant violation.
package operators

import (
	"github.com/roach88/prakriya/internal/prakriya"
	"github.com/roach88/prakriya/internal/sounds"
	"github.com/roach88/prakriya/internal/term"
)

// T lifts op to a state operator that applies it at position i. An absent
// position is a no-op.
func T(i int, op prakriya.TermOp) prakriya.Op {
	return func(p *prakriya.Prakriya) {
		p.Set(i, op)
	}
}

// Seq composes operators left to right.
func Seq(ops ...prakriya.TermOp) prakriya.TermOp {
	return func(t *term.Term) {
		for _, op := range ops {
			op(t)
		}
	}
}

// None leaves the term unchanged. Rules that fire without changing text use it.
func None(*term.Term) {}

// Adi replaces the first sound.
func Adi(sub string) prakriya.TermOp {
	return func(t *term.Term) {
		if t.Text != "" {
			t.Text = sub + t.Text[1:]
		}
	}
}

// Antya replaces the last sound.
func Antya(sub string) prakriya.TermOp {
	return func(t *term.Term) {
		if n := len(t.Text); n > 0 {
			t.Text = t.Text[:n-1] + sub
		}
	}
}

// Upadha replaces the penultimate sound.
func Upadha(sub string) prakriya.TermOp {
	return func(t *term.Term) {
		if _, ok := t.Upadha(); ok {
			n := len(t.Text)
			t.Text = t.Text[:n-2] + sub + t.Text[n-1:]
		}
	}
}

// Mit inserts sub immediately after the last vowel (1.1.47).
func Mit(sub string) prakriya.TermOp {
	return func(t *term.Term) {
		if i := sounds.LastVowelIndex(t.Text); i >= 0 {
			t.Text = t.Text[:i+1] + sub + t.Text[i+1:]
		}
	}
}

// Ti replaces the region from the last vowel to the end (1.1.64).
func Ti(sub string) prakriya.TermOp {
	return func(t *term.Term) {
		if i := sounds.LastVowelIndex(t.Text); i >= 0 {
			t.Text = t.Text[:i] + sub
		}
	}
}

// Text replaces the whole text.
func Text(sub string) prakriya.TermOp {
	return func(t *term.Term) {
		t.Text = sub
	}
}

// Lopa deletes all of the text without recording how.
func Lopa(t *term.Term) {
	t.Text = ""
}

// Luk deletes all of the text through luk.
func Luk(t *term.Term) {
	Lopa(t)
	t.AddTag(term.Luk)
}

// Slu deletes all of the text through slu.
func Slu(t *term.Term) {
	Lopa(t)
	t.AddTag(term.Slu)
}

// Lup deletes all of the text through lup.
func Lup(t *term.Term) {
	Lopa(t)
	t.AddTag(term.Lup)
}

// AddTag adds tag.
func AddTag(tag term.Tag) prakriya.TermOp {
	return func(t *term.Term) {
		t.AddTag(tag)
	}
}

// AddTags adds every tag.
func AddTags(tags ...term.Tag) prakriya.TermOp {
	return func(t *term.Term) {
		t.AddTags(tags...)
	}
}

// RemoveTag clears tag.
func RemoveTag(tag term.Tag) prakriya.TermOp {
	return func(t *term.Term) {
		t.RemoveTag(tag)
	}
}
