package rules

import (
	"github.com/roach88/prakriya/internal/operators"
	"github.com/roach88/prakriya/internal/prakriya"
	"github.com/roach88/prakriya/internal/sounds"
	"github.com/roach88/prakriya/internal/term"
)

// ItAgama adds the iw augment to an ardhadhatuka affix that starts with a
// consonant other than y (7.2.35), unless the root blocks it.
func ItAgama(p *prakriya.Prakriya) error {
	d, ok := dhatuIndex(p)
	if !ok {
		return nil
	}
	n, ok := nextReal(p, d)
	if !ok {
		return nil
	}
	next := n.First()
	if next.HasTag(term.Agama) || !next.HasTag(term.Ardhadhatuka) || !next.HasAdiIn(sounds.Val) {
		return nil
	}
	dhatu, _ := p.Get(d)
	j := n.Start()
	iw := func(rule prakriya.Rule) error {
		return operators.InsertAgamaBefore(p, rule, j, "iw")
	}

	if next.HasTag(term.Tin) && next.HasLakshana("li~w") {
		return litIt(p, dhatu, next, iw)
	}

	parasmai := p.HasTag(term.Parasmaipada)
	switch {
	case next.HasU("sya") && (dhatu.HasAntya('f') || dhatu.HasText("han")):
		return iw("7.2.70")
	case next.HasU("si~c") && parasmai && dhatu.HasUIn("zwu\\Y", "zu\\Y", "DUY"):
		return iw("7.2.72")
	case next.HasU("si~c") && parasmai && (dhatu.HasAntya('A') || dhatu.HasUIn("ya\\ma~", "ra\\ma~\\", "Ra\\ma~")):
		if err := operators.AppendAgama(p, "7.2.73", d, "sa~k"); err != nil {
			return err
		}
		return iw("7.2.73")
	case isAnit(dhatu):
		p.Step("7.2.10")
		return nil
	}
	return iw("7.2.35")
}

// litIt decides iw for a liw ending. The kradi roots never take it; an anit
// root takes it before Tal only optionally, and not at all when it ends in f
// (7.2.61 - 7.2.63).
func litIt(p *prakriya.Prakriya, dhatu, next *term.Term, iw func(prakriya.Rule) error) error {
	r, _ := rootIndex(p)
	root, _ := p.Get(r)
	if root.HasUIn(kradi...) {
		p.Step("7.2.13")
		return nil
	}
	if !next.HasU("Tal") || !isAnit(root) {
		return iw("7.2.35")
	}

	ajanta := dhatu.HasAntyaIn(sounds.Ac)
	switch {
	case ajanta && dhatu.HasAntyaIn(sounds.S("f")):
		p.Step("7.2.61")
		return nil
	case !ajanta && !root.HasUpadha('a'):
		return iw("7.2.35")
	}
	if p.IsAllowed("7.2.63") {
		p.Accept("7.2.63")
		return iw("7.2.63")
	}
	p.Decline("7.2.63")
	if ajanta {
		p.Step("7.2.61")
	} else {
		p.Step("7.2.62")
	}
	return nil
}
