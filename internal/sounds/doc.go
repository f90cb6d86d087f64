// Package sounds classifies SLP1 phonemes.
//
// Every rule condition in the derivation engine eventually asks "is this
// sound a vowel?", "is it a voiced aspirate?" and so on. Package sounds
// answers these questions with immutable sets built once from class
// expressions:
//
//	ac := sounds.S("ac")         // all vowels
//	jhal := sounds.S("Jal")      // all non-nasal, non-semivowel consonants
//	iu := sounds.S("i u")        // i, I, u, U
//	asp := sounds.S("K G C J W Q T D P B")
//
// A class expression is a whitespace-joined union of tokens. A token is a
// pratyahara (a named class formed from the Shiva Sutras, like "ac" or "hal"),
// one of the five stop groups ("ku", "cu", "wu", "tu", "pu"), or a single
// symbol. Simple vowels always bring their long counterparts with them.
//
// Sets are values. Nothing mutates a Set after construction, so sets may be
// shared freely between goroutines and between derivation branches.
package sounds
