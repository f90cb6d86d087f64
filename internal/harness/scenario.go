package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/prakriya/internal/args"
	"github.com/roach88/prakriya/internal/derive"
)

// Scenario defines a conformance test scenario for one root.
type Scenario struct {
	// Name uniquely identifies this scenario. It names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Dhatu is the root in upadesha form.
	Dhatu string `yaml:"dhatu"`

	// Code is the dhatupatha code, e.g. "01.0001".
	Code string `yaml:"code"`

	// Prayoga applies to every case. Empty means kartari.
	Prayoga string `yaml:"prayoga,omitempty"`

	// Cases are derived in order.
	Cases []Case `yaml:"cases"`

	// Assertions validate the derived records.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Case is one lakara and person/number slot.
type Case struct {
	La      string `yaml:"la"`
	Purusha string `yaml:"purusha"`
	Vacana  string `yaml:"vacana"`

	// Expect lists forms that must be derived.
	Expect []string `yaml:"expect,omitempty"`

	// Exact requires the derived forms to equal Expect, in order.
	Exact bool `yaml:"exact,omitempty"`
}

// Assertion validates the records of one case.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Case indexes Scenario.Cases.
	Case int `yaml:"case"`

	// Rule is used by history_contains and choice.
	Rule string `yaml:"rule,omitempty"`

	// Rules is used by history_order.
	Rules []string `yaml:"rules,omitempty"`

	// Forms is used by forms_include and forms_exact.
	Forms []string `yaml:"forms,omitempty"`

	// Decision is used by choice: "accept" or "decline".
	Decision string `yaml:"decision,omitempty"`

	// Count is used by form_count.
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertFormsInclude    = "forms_include"
	AssertFormsExact      = "forms_exact"
	AssertFormCount       = "form_count"
	AssertHistoryContains = "history_contains"
	AssertHistoryOrder    = "history_order"
	AssertChoice          = "choice"
)

// LoadScenario reads and parses a scenario YAML file.
// Unknown fields are rejected so that typos fail loudly.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// Requests converts the cases into derivation requests.
func (s *Scenario) Requests() ([]derive.Request, error) {
	prayoga := args.Kartari
	if s.Prayoga != "" {
		var err error
		if prayoga, err = args.ParsePrayoga(s.Prayoga); err != nil {
			return nil, err
		}
	}

	out := make([]derive.Request, len(s.Cases))
	for i, c := range s.Cases {
		la, err := args.ParseLa(c.La)
		if err != nil {
			return nil, fmt.Errorf("cases[%d]: %w", i, err)
		}
		purusha, err := args.ParsePurusha(c.Purusha)
		if err != nil {
			return nil, fmt.Errorf("cases[%d]: %w", i, err)
		}
		vacana, err := args.ParseVacana(c.Vacana)
		if err != nil {
			return nil, fmt.Errorf("cases[%d]: %w", i, err)
		}
		out[i] = derive.Request{
			Dhatu:   s.Dhatu,
			Code:    s.Code,
			La:      la,
			Prayoga: prayoga,
			Purusha: purusha,
			Vacana:  vacana,
		}
	}
	return out, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if s.Dhatu == "" {
		return fmt.Errorf("dhatu is required")
	}
	if _, _, err := args.ParseCode(s.Code); err != nil {
		return err
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	for i, c := range s.Cases {
		if c.Exact && len(c.Expect) == 0 {
			return fmt.Errorf("cases[%d]: exact requires expect", i)
		}
	}
	if _, err := s.Requests(); err != nil {
		return err
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(i, &a, len(s.Cases)); err != nil {
			return err
		}
	}
	return nil
}

func validateAssertion(index int, a *Assertion, cases int) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}
	if a.Case < 0 || a.Case >= cases {
		return fmt.Errorf("assertions[%d]: case %d out of range", index, a.Case)
	}

	switch a.Type {
	case AssertFormsInclude, AssertFormsExact:
		if len(a.Forms) == 0 {
			return fmt.Errorf("assertions[%d]: forms list is required for %s", index, a.Type)
		}
	case AssertFormCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for form_count", index)
		}
	case AssertHistoryContains:
		if a.Rule == "" {
			return fmt.Errorf("assertions[%d]: rule is required for history_contains", index)
		}
	case AssertHistoryOrder:
		if len(a.Rules) == 0 {
			return fmt.Errorf("assertions[%d]: rules list is required for history_order", index)
		}
	case AssertChoice:
		if a.Rule == "" {
			return fmt.Errorf("assertions[%d]: rule is required for choice", index)
		}
		if a.Decision != "accept" && a.Decision != "decline" {
			return fmt.Errorf("assertions[%d]: decision must be accept or decline", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
