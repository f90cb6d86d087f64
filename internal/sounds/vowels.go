package sounds

import "strings"

// Common classes shared by the rule packages.
var (
	Ac   = S("ac")
	Hal  = S("hal")
	Jhal = S("Jal")
	Yan  = S("yaR")
	Ik   = S("ik")
	In   = S("iR")
	Yay  = S("yaY")
	Val  = S("val")
	Khar = S("Kar")
	Aw   = S("aw")
	Ku   = S("ku")
	Pu   = S("pu")

	// Mahaprana holds the aspirated stops.
	Mahaprana = S("K G C J W Q T D P B")
)

// IsAc reports whether c is a vowel.
func IsAc(c byte) bool { return Ac.Contains(c) }

// IsHal reports whether c is a consonant.
func IsHal(c byte) bool { return Hal.Contains(c) }

// LastVowelIndex returns the byte index of the last vowel in s, or -1.
func LastVowelIndex(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if IsAc(s[i]) {
			return i
		}
	}
	return -1
}

// CountVowels returns the number of vowels in s.
func CountVowels(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if IsAc(s[i]) {
			n++
		}
	}
	return n
}

var gunaOf = map[byte]string{
	'i': "e", 'I': "e",
	'u': "o", 'U': "o",
	'f': "a", 'F': "a",
	'x': "a", 'X': "a",
}

var vrddhiOf = map[byte]string{
	'a': "A", 'A': "A",
	'i': "E", 'I': "E",
	'u': "O", 'U': "O",
	'f': "A", 'F': "A",
	'x': "A", 'X': "A",
	'e': "E", 'E': "E",
	'o': "O", 'O': "O",
}

// Guna returns the guna substitute of an ik vowel. The substitute for f and x
// is the bare "a"; the trailing r or l comes from a separate rule (1.1.51).
func Guna(c byte) (string, bool) {
	s, ok := gunaOf[c]
	return s, ok
}

// Vrddhi returns the vrddhi substitute of a vowel, again without the r or l
// that 1.1.51 adds for f and x.
func Vrddhi(c byte) (string, bool) {
	s, ok := vrddhiOf[c]
	return s, ok
}

// Raparah returns the semivowel that 1.1.51 appends when c is f/F ("r") or
// x/X ("l").
func Raparah(c byte) (string, bool) {
	switch c {
	case 'f', 'F':
		return "r", true
	case 'x', 'X':
		return "l", true
	}
	return "", false
}

var hrasvaOf = map[byte]byte{
	'a': 'a', 'A': 'a', 'i': 'i', 'I': 'i', 'u': 'u', 'U': 'u',
	'f': 'f', 'F': 'f', 'x': 'x', 'X': 'x',
	'e': 'i', 'E': 'i', 'o': 'u', 'O': 'u',
}

var dirghaOf = map[byte]byte{
	'a': 'A', 'A': 'A', 'i': 'I', 'I': 'I', 'u': 'U', 'U': 'U',
	'f': 'F', 'F': 'F', 'x': 'X', 'X': 'X',
	'e': 'e', 'E': 'E', 'o': 'o', 'O': 'O',
}

// Hrasva returns the short counterpart of a vowel.
func Hrasva(c byte) (byte, bool) {
	h, ok := hrasvaOf[c]
	return h, ok
}

// Dirgha returns the long counterpart of a vowel.
func Dirgha(c byte) (byte, bool) {
	d, ok := dirghaOf[c]
	return d, ok
}

// Savarna reports whether a and b are homogeneous vowels. f and x count as
// homogeneous with each other.
func Savarna(a, b byte) bool {
	ha, okA := hrasvaOf[a]
	hb, okB := hrasvaOf[b]
	if !okA || !okB || strings.IndexByte("eEoO", a) >= 0 || strings.IndexByte("eEoO", b) >= 0 {
		return false
	}
	if ha == hb {
		return true
	}
	return (ha == 'f' && hb == 'x') || (ha == 'x' && hb == 'f')
}

// YanOf returns the semivowel that replaces an ik vowel before a vowel (6.1.77).
func YanOf(c byte) (byte, bool) {
	switch c {
	case 'i', 'I':
		return 'y', true
	case 'u', 'U':
		return 'v', true
	case 'f', 'F':
		return 'r', true
	case 'x', 'X':
		return 'l', true
	}
	return 0, false
}

// Ayadi returns the substitute of an ec vowel before a vowel (6.1.78).
func Ayadi(c byte) (string, bool) {
	switch c {
	case 'e':
		return "ay", true
	case 'o':
		return "av", true
	case 'E':
		return "Ay", true
	case 'O':
		return "Av", true
	}
	return "", false
}

// Jashtva maps a stop to the unaspirated voiced stop of its row (8.2.39,
// 8.4.53).
func Jashtva(c byte) (byte, bool) {
	return rowSubstitute(c, 2)
}

// Chartva maps a stop to the unaspirated voiceless stop of its row (8.4.55).
func Chartva(c byte) (byte, bool) {
	return rowSubstitute(c, 0)
}

// Alpaprana drops aspiration: K becomes k, G becomes g, and so on.
func Alpaprana(c byte) (byte, bool) {
	for _, row := range stopGroups {
		i := strings.IndexByte(row, c)
		switch i {
		case 1:
			return row[0], true
		case 3:
			return row[2], true
		case 0, 2:
			return c, true
		}
	}
	return 0, false
}

// Kuhoscu maps a velar or h to its palatal counterpart (7.4.62).
func Kuhoscu(c byte) (byte, bool) {
	switch c {
	case 'k':
		return 'c', true
	case 'K':
		return 'C', true
	case 'g', 'h':
		return 'j', true
	case 'G':
		return 'J', true
	case 'N':
		return 'Y', true
	}
	return 0, false
}

// Retroflex maps a dental to the retroflex of the same position (8.4.41).
func Retroflex(c byte) (byte, bool) {
	i := strings.IndexByte(stopGroups["tu"], c)
	if i < 0 {
		return 0, false
	}
	return stopGroups["wu"][i], true
}

// NasalOf returns the nasal of the row that c belongs to (8.4.58).
func NasalOf(c byte) (byte, bool) {
	for _, row := range stopGroups {
		if strings.IndexByte(row, c) >= 0 {
			return row[4], true
		}
	}
	return 0, false
}

func rowSubstitute(c byte, col int) (byte, bool) {
	for _, row := range stopGroups {
		if i := strings.IndexByte(row, c); i >= 0 && i < 4 {
			return row[col], true
		}
	}
	return 0, false
}
