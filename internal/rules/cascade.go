package rules

import "github.com/roach88/prakriya/internal/prakriya"

// Cond decides whether an entry applies to the anga at i.
type Cond func(p *prakriya.Prakriya, i int) bool

// Action applies an entry to the anga at i under rule.
type Action func(p *prakriya.Prakriya, rule prakriya.Rule, i int) error

// Entry is one rule of a cascade.
type Entry struct {
	Rule  prakriya.Rule
	When  Cond
	Apply Action
}

// Cascade is an ordered list of rules of which at most one applies: the first
// whose condition matches. Earlier entries are the more specific rules.
type Cascade []Entry

// Run evaluates the entries in order and applies the first match. It reports
// the rule that matched, if any. Only invariant violations are returned as
// errors.
func (c Cascade) Run(p *prakriya.Prakriya, i int) (prakriya.Rule, bool, error) {
	for _, e := range c {
		if !e.When(p, i) {
			continue
		}
		return e.Rule, true, e.Apply(p, e.Rule, i)
	}
	return "", false, nil
}

// Stacking is a family of cascades exempt from mutual exclusion: each member
// runs in turn against the state the previous ones left behind, so rules from
// different members can apply at the same position.
type Stacking []Cascade

// Run runs every member and returns the rules that fired, in order.
func (s Stacking) Run(p *prakriya.Prakriya, i int) ([]prakriya.Rule, error) {
	var fired []prakriya.Rule
	for _, c := range s {
		rule, ok, err := c.Run(p, i)
		if err != nil {
			return fired, err
		}
		if ok {
			fired = append(fired, rule)
		}
	}
	return fired, nil
}

// Do applies op to the anga as a mandatory rule.
func Do(op prakriya.TermOp) Action {
	return func(p *prakriya.Prakriya, rule prakriya.Rule, i int) error {
		p.OpTerm(rule, i, op)
		return nil
	}
}

// Maybe applies op to the anga as an optional rule.
func Maybe(op prakriya.TermOp) Action {
	return func(p *prakriya.Prakriya, rule prakriya.Rule, i int) error {
		p.OpOptionalTerm(rule, i, op)
		return nil
	}
}

// Noop records the rule without changing anything. A matched no-op still
// stops the cascade, which is how a specific rule blocks a general one.
func Noop(p *prakriya.Prakriya, rule prakriya.Rule, _ int) error {
	p.Step(rule)
	return nil
}

// AllOf matches when every condition matches.
func AllOf(conds ...Cond) Cond {
	return func(p *prakriya.Prakriya, i int) bool {
		for _, c := range conds {
			if !c(p, i) {
				return false
			}
		}
		return true
	}
}
