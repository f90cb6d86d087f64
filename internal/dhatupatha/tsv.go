package dhatupatha

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
)

var tsvHeader = []string{"code", "dhatu", "artha"}

// LoadTSV reads the tab-separated lexicon format. Blank lines are skipped.
func LoadTSV(r io.Reader) (*Lexicon, error) {
	sc := bufio.NewScanner(r)
	line := 0
	var dhatus []Dhatu
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if line == 1 {
			if got := strings.Split(text, "\t"); !slices.Equal(got, tsvHeader) {
				return nil, fmt.Errorf("lexicon line 1: header %q, want %q", got, tsvHeader)
			}
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) != len(tsvHeader) {
			return nil, fmt.Errorf("lexicon line %d: %d fields, want %d", line, len(fields), len(tsvHeader))
		}
		dhatus = append(dhatus, Dhatu{Code: fields[0], Upadesha: fields[1], Artha: fields[2]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lexicon: %w", err)
	}
	if line == 0 {
		return nil, fmt.Errorf("lexicon: empty input")
	}
	lex, err := New(dhatus)
	if err != nil {
		return nil, fmt.Errorf("lexicon: %w", err)
	}
	return lex, nil
}
