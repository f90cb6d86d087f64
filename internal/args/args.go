// Package args defines the parameters of a verb derivation: the lakara, the
// voice (prayoga), the person (purusha) and the number (vacana).
package args

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/prakriya/internal/term"
)

// La is one of the ten lakaras (tense and mood affixes).
type La uint8

const (
	Lat La = iota
	Lit
	Lut
	Lrt
	Lot
	Lan
	AshirLin
	VidhiLin
	Lun
	Lrn
)

// Lakaras lists every lakara in conventional order.
var Lakaras = []La{Lat, Lit, Lut, Lrt, Lot, Lan, AshirLin, VidhiLin, Lun, Lrn}

var laInfo = [...]struct {
	name     string
	upadesha string
}{
	Lat:      {"law", "la~w"},
	Lit:      {"liw", "li~w"},
	Lut:      {"luw", "lu~w"},
	Lrt:      {"lfw", "lf~w"},
	Lot:      {"low", "lo~w"},
	Lan:      {"laN", "la~N"},
	AshirLin: {"ASIrliN", "li~N"},
	VidhiLin: {"viDiliN", "li~N"},
	Lun:      {"luN", "lu~N"},
	Lrn:      {"lfN", "lf~N"},
}

// String returns the SLP1 name, e.g. "law".
func (l La) String() string {
	if int(l) >= len(laInfo) {
		return fmt.Sprintf("La(%d)", l)
	}
	return laInfo[l].name
}

// Upadesha returns the lakara as it is introduced, with its markers.
func (l La) Upadesha() string {
	return laInfo[l].upadesha
}

// IsSarvadhatuka reports whether the lakara's endings are sarvadhatuka, which
// decides whether a vikarana is inserted.
func (l La) IsSarvadhatuka() bool {
	switch l {
	case Lat, Lot, Lan, VidhiLin:
		return true
	}
	return false
}

// ParseLa parses a lakara name. SLP1 is case-sensitive, so the match is exact.
func ParseLa(s string) (La, error) {
	for i, info := range laInfo {
		if info.name == s {
			return La(i), nil
		}
	}
	return 0, fmt.Errorf("unknown lakara %q", s)
}

// Prayoga is the voice of the derivation.
type Prayoga uint8

const (
	Kartari Prayoga = iota
	Karmani
	Bhave
)

var prayogaNames = [...]string{Kartari: "kartari", Karmani: "karmani", Bhave: "bhave"}

func (p Prayoga) String() string { return prayogaNames[p] }

// Tag returns the global tag the derivation carries for p.
func (p Prayoga) Tag() term.Tag {
	switch p {
	case Karmani:
		return term.Karmani
	case Bhave:
		return term.Bhave
	}
	return term.Kartari
}

// ParsePrayoga parses a voice name.
func ParsePrayoga(s string) (Prayoga, error) {
	for i, name := range prayogaNames {
		if strings.EqualFold(name, s) {
			return Prayoga(i), nil
		}
	}
	return 0, fmt.Errorf("unknown prayoga %q", s)
}

// Purusha is the grammatical person.
type Purusha uint8

const (
	Prathama Purusha = iota
	Madhyama
	Uttama
)

var purushaNames = [...]string{Prathama: "prathama", Madhyama: "madhyama", Uttama: "uttama"}

func (p Purusha) String() string { return purushaNames[p] }

// Tag returns the global tag for p.
func (p Purusha) Tag() term.Tag {
	return [...]term.Tag{term.Prathama, term.Madhyama, term.Uttama}[p]
}

// ParsePurusha parses a person name.
func ParsePurusha(s string) (Purusha, error) {
	for i, name := range purushaNames {
		if strings.EqualFold(name, s) {
			return Purusha(i), nil
		}
	}
	return 0, fmt.Errorf("unknown purusha %q", s)
}

// Vacana is the grammatical number.
type Vacana uint8

const (
	Eka Vacana = iota
	Dvi
	Bahu
)

var vacanaNames = [...]string{Eka: "eka", Dvi: "dvi", Bahu: "bahu"}

func (v Vacana) String() string { return vacanaNames[v] }

// Tag returns the global tag for v.
func (v Vacana) Tag() term.Tag {
	return [...]term.Tag{term.Ekavacana, term.Dvivacana, term.Bahuvacana}[v]
}

// ParseVacana parses a number name.
func ParseVacana(s string) (Vacana, error) {
	for i, name := range vacanaNames {
		if strings.EqualFold(name, s) {
			return Vacana(i), nil
		}
	}
	return 0, fmt.Errorf("unknown vacana %q", s)
}

// PurushaVacana is one cell of the person × number grid.
type PurushaVacana struct {
	Purusha Purusha
	Vacana  Vacana
}

// Grid lists the nine person/number combinations in conventional order.
var Grid = []PurushaVacana{
	{Prathama, Eka}, {Prathama, Dvi}, {Prathama, Bahu},
	{Madhyama, Eka}, {Madhyama, Dvi}, {Madhyama, Bahu},
	{Uttama, Eka}, {Uttama, Dvi}, {Uttama, Bahu},
}

// Index returns the position of the cell in Grid.
func (pv PurushaVacana) Index() int {
	return int(pv.Purusha)*3 + int(pv.Vacana)
}

// ParseCode splits a dhatupatha code such as "01.0001" into its gana and its
// position within the gana.
func ParseCode(code string) (gana, number int, err error) {
	g, n, ok := strings.Cut(code, ".")
	if !ok {
		return 0, 0, fmt.Errorf("dhatu code %q: want <gana>.<number>", code)
	}
	gana, err = strconv.Atoi(g)
	if err != nil || gana < 1 || gana > 10 {
		return 0, 0, fmt.Errorf("dhatu code %q: gana must be 1-10", code)
	}
	number, err = strconv.Atoi(n)
	if err != nil || number < 1 {
		return 0, 0, fmt.Errorf("dhatu code %q: bad number", code)
	}
	return gana, number, nil
}
