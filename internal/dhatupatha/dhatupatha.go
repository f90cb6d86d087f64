// Package dhatupatha loads the root lexicon: the dictionary form of each root
// together with its gana code.
//
// Two formats are read. The tab-separated format has a header row and the
// columns code, dhatu and artha. The CUE format declares
//
//	dhatu: "01.0001": {upadesha: "BU", artha: "sattAyAm"}
//
// and is unified with an embedded schema before use.
package dhatupatha

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/roach88/prakriya/internal/args"
)

// Dhatu is one lexicon entry.
type Dhatu struct {
	// Code is the dhatupatha code, e.g. "01.0001".
	Code string

	// Upadesha is the root as taught, with its markers.
	Upadesha string

	// Artha is the gloss.
	Artha string

	Gana   int
	Number int
}

// Lexicon is an ordered list of roots.
type Lexicon struct {
	dhatus []Dhatu
}

// New builds a lexicon from entries. Each code is validated.
func New(dhatus []Dhatu) (*Lexicon, error) {
	out := make([]Dhatu, len(dhatus))
	for i, d := range dhatus {
		if d.Upadesha == "" {
			return nil, fmt.Errorf("dhatu %s: empty upadesha", d.Code)
		}
		gana, number, err := args.ParseCode(d.Code)
		if err != nil {
			return nil, err
		}
		d.Gana, d.Number = gana, number
		out[i] = d
	}
	return &Lexicon{dhatus: out}, nil
}

// All returns every entry in lexicon order.
func (l *Lexicon) All() []Dhatu {
	return slices.Clone(l.dhatus)
}

// Len returns the number of entries.
func (l *Lexicon) Len() int {
	return len(l.dhatus)
}

// ByCode returns the entries with the given code. Homonymous roots can share
// a code, so the result is a slice.
func (l *Lexicon) ByCode(code string) []Dhatu {
	var out []Dhatu
	for _, d := range l.dhatus {
		if d.Code == code {
			out = append(out, d)
		}
	}
	return out
}

//go:embed data/dhatupatha.tsv
var defaultTSV []byte

var loadDefault = sync.OnceValues(func() (*Lexicon, error) {
	return LoadTSV(bytes.NewReader(defaultTSV))
})

// Default returns the embedded lexicon.
func Default() (*Lexicon, error) {
	return loadDefault()
}

// Load reads a lexicon from path: a directory is read as CUE, a file as TSV.
// An empty path returns Default().
func Load(path string) (*Lexicon, error) {
	if path == "" {
		return Default()
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: %w", err)
	}
	if info.IsDir() {
		return LoadCUE(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: %w", err)
	}
	defer f.Close()
	return LoadTSV(f)
}
