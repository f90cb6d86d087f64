package sounds

import (
	"fmt"
	"strings"
)

// Set is an immutable set of SLP1 symbols with constant-time membership.
//
// The zero value is the empty set.
type Set struct {
	bits [4]uint64
}

// shivaSutras lists the fourteen Maheshvara sutras in SLP1. The last symbol of
// each sutra is a marker (it) and is never itself a member of a class.
var shivaSutras = []string{
	"aiuR", "fxk", "eoN", "EOc", "hayavaraw", "laR", "YamaNaRanam",
	"JaBaY", "GaQaDaz", "jabagaqadaS", "KaPaCaWaTacawatav", "kapay",
	"Sazasar", "hal",
}

// vowelsWithLongForms maps each simple vowel to its long counterpart.
var vowelsWithLongForms = map[byte]byte{
	'a': 'A', 'i': 'I', 'u': 'U', 'f': 'F', 'x': 'X',
}

// stopGroups are the udit shorthand names for the five stop rows.
var stopGroups = map[string]string{
	"ku": "kKgGN",
	"cu": "cCjJY",
	"wu": "wWqQR",
	"tu": "tTdDn",
	"pu": "pPbBm",
}

// sutraEntry is one position in the flattened sutra table.
type sutraEntry struct {
	symbol byte
	marker bool
}

var sutraTable = buildSutraTable()

func buildSutraTable() []sutraEntry {
	var out []sutraEntry
	for _, sutra := range shivaSutras {
		for i := 0; i < len(sutra)-1; i++ {
			c := sutra[i]
			// Outside the first sutra, "a" is only there for pronunciation.
			if c == 'a' && sutra != "aiuR" {
				continue
			}
			out = append(out, sutraEntry{symbol: c})
		}
		out = append(out, sutraEntry{symbol: sutra[len(sutra)-1], marker: true})
	}
	return out
}

// S builds a Set from a class expression. It panics on unknown tokens:
// class expressions are program constants, so a bad one is a programming error.
func S(expr string) Set {
	set, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return set
}

// Parse builds a Set from a class expression and reports unknown tokens.
func Parse(expr string) (Set, error) {
	var out Set
	for _, tok := range strings.Fields(expr) {
		part, err := parseToken(tok)
		if err != nil {
			return Set{}, fmt.Errorf("class expression %q: %w", expr, err)
		}
		out = out.Union(part)
	}
	return out, nil
}

func parseToken(tok string) (Set, error) {
	var out Set
	if group, ok := stopGroups[tok]; ok {
		for i := 0; i < len(group); i++ {
			out.add(group[i])
		}
		return out, nil
	}
	if len(tok) == 1 {
		out.addSavarna(tok[0])
		return out, nil
	}
	switch {
	case len(tok) == 2:
		return pratyahara(tok[0], tok[1], tok == "iR")
	case len(tok) == 3 && tok[1] == 'a':
		// Consonant-initial names carry a pronunciation "a": hal is h...l.
		return pratyahara(tok[0], tok[2], false)
	}
	return Set{}, fmt.Errorf("unknown class %q", tok)
}

// pratyahara collects every symbol from first up to the marker last. When
// secondMarker is set, the first matching marker is skipped (iR).
func pratyahara(first, last byte, secondMarker bool) (Set, error) {
	var out Set
	start := -1
	for i, e := range sutraTable {
		if !e.marker && e.symbol == first {
			start = i
			break
		}
	}
	if start < 0 {
		return Set{}, fmt.Errorf("unknown class %q", string([]byte{first, last}))
	}
	skipped := !secondMarker
	for _, e := range sutraTable[start:] {
		if e.marker {
			if e.symbol == last {
				if skipped {
					return out, nil
				}
				skipped = true
			}
			continue
		}
		out.addSavarna(e.symbol)
	}
	return Set{}, fmt.Errorf("unknown class %q", string([]byte{first, last}))
}

func (s *Set) add(c byte) {
	s.bits[c>>6] |= 1 << (c & 63)
}

func (s *Set) addSavarna(c byte) {
	s.add(c)
	if long, ok := vowelsWithLongForms[c]; ok {
		s.add(long)
	}
}

// Contains reports whether c is a member of the set.
func (s Set) Contains(c byte) bool {
	return s.bits[c>>6]&(1<<(c&63)) != 0
}

// ContainsRune reports whether r is a member of the set. Runes outside ASCII
// are never members.
func (s Set) ContainsRune(r rune) bool {
	if r < 0 || r > 0xff {
		return false
	}
	return s.Contains(byte(r))
}

// Union returns a new set holding every member of s and others.
func (s Set) Union(others ...Set) Set {
	out := s
	for _, o := range others {
		for i := range out.bits {
			out.bits[i] |= o.bits[i]
		}
	}
	return out
}

// Len returns the number of members.
func (s Set) Len() int {
	n := 0
	for c := 0; c < 256; c++ {
		if s.Contains(byte(c)) {
			n++
		}
	}
	return n
}

// String lists the members in byte order.
func (s Set) String() string {
	var b strings.Builder
	for c := 0; c < 256; c++ {
		if s.Contains(byte(c)) {
			b.WriteByte(byte(c))
		}
	}
	return b.String()
}
