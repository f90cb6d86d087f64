package term

// Tag is a grammatical marker carried by a term or by the derivation as a
// whole. The set of tags is closed: rules dispatch on tag membership instead of
// on term subtypes.
type Tag uint8

const (
	tagInvalid Tag = iota

	// Roles.
	Dhatu
	Pratyaya
	Agama
	Abhyasa
	Abhyasta
	Tin
	Sup
	Vikarana
	Sarvadhatuka
	Ardhadhatuka
	Parasmaipada
	Atmanepada
	Ghu

	// Elision subtypes. Each deletes all text but leaves the position in place.
	Luk
	Slu
	Lup

	// it markers left behind by it-samjna.
	Kit
	Nit
	Yit
	Wit
	Rit
	Pit
	Sit
	Mit
	Qit
	Cit
	Lit
	Zit
	Idit
	Udit
	Fdit
	Irit
	Adit
	Yidit
	Wvit
	Qvit

	// Accent.
	Anudatta
	Svarita
	Anudattet
	Svaritet

	// Derivation parameters, carried as global tags.
	Kartari
	Karmani
	Bhave
	Prathama
	Madhyama
	Uttama
	Ekavacana
	Dvivacana
	Bahuvacana
	Ashih

	// Flags set by one rule for the benefit of a later one.
	FlagAtLopa
	FlagGuna
	FlagNoArdhadhatuka
	FlagSamprasarana
	FlagAdeshadi

	numTags
)

var tagNames = [numTags]string{
	tagInvalid:         "invalid",
	Dhatu:              "Dhatu",
	Pratyaya:           "Pratyaya",
	Agama:              "Agama",
	Abhyasa:            "Abhyasa",
	Abhyasta:           "Abhyasta",
	Tin:                "Tin",
	Sup:                "Sup",
	Vikarana:           "Vikarana",
	Sarvadhatuka:       "Sarvadhatuka",
	Ardhadhatuka:       "Ardhadhatuka",
	Parasmaipada:       "Parasmaipada",
	Atmanepada:         "Atmanepada",
	Ghu:                "Ghu",
	Luk:                "Luk",
	Slu:                "Slu",
	Lup:                "Lup",
	Kit:                "kit",
	Nit:                "Nit",
	Yit:                "Yit",
	Wit:                "wit",
	Rit:                "Rit",
	Pit:                "pit",
	Sit:                "Sit",
	Mit:                "mit",
	Qit:                "qit",
	Cit:                "cit",
	Lit:                "lit",
	Zit:                "zit",
	Idit:               "idit",
	Udit:               "udit",
	Fdit:               "fdit",
	Irit:               "irit",
	Adit:               "adit",
	Yidit:              "Yidit",
	Wvit:               "wvit",
	Qvit:               "qvit",
	Anudatta:           "Anudatta",
	Svarita:            "Svarita",
	Anudattet:          "Anudattet",
	Svaritet:           "Svaritet",
	Kartari:            "Kartari",
	Karmani:            "Karmani",
	Bhave:              "Bhave",
	Prathama:           "Prathama",
	Madhyama:           "Madhyama",
	Uttama:             "Uttama",
	Ekavacana:          "Ekavacana",
	Dvivacana:          "Dvivacana",
	Bahuvacana:         "Bahuvacana",
	Ashih:              "Ashih",
	FlagAtLopa:         "FlagAtLopa",
	FlagGuna:           "FlagGuna",
	FlagNoArdhadhatuka: "FlagNoArdhadhatuka",
	FlagSamprasarana:   "FlagSamprasarana",
	FlagAdeshadi:       "FlagAdeshadi",
}

// String returns the grammatical name of the tag.
func (t Tag) String() string {
	if t >= numTags {
		return "invalid"
	}
	return tagNames[t]
}

// TagSet is a fixed-size bitset of tags. Copying a TagSet copies its contents.
type TagSet struct {
	bits [2]uint64
}

// Has reports whether tag is in the set.
func (s TagSet) Has(tag Tag) bool {
	return s.bits[tag>>6]&(1<<(tag&63)) != 0
}

// Add inserts tag.
func (s *TagSet) Add(tag Tag) {
	s.bits[tag>>6] |= 1 << (tag & 63)
}

// Remove deletes tag.
func (s *TagSet) Remove(tag Tag) {
	s.bits[tag>>6] &^= 1 << (tag & 63)
}

// Tags lists the members in declaration order.
func (s TagSet) Tags() []Tag {
	var out []Tag
	for t := Tag(1); t < numTags; t++ {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

// Names lists the grammatical names of the members in declaration order.
func (s TagSet) Names() []string {
	tags := s.Tags()
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.String()
	}
	return out
}
