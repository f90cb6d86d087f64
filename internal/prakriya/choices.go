package prakriya

import (
	"log/slog"
	"maps"
)

// Decision is the outcome of an optional rule.
type Decision uint8

const (
	// Accept applies the optional rule.
	Accept Decision = iota + 1
	// Decline skips the optional rule.
	Decline
)

// String returns "accept" or "decline".
func (d Decision) String() string {
	switch d {
	case Accept:
		return "accept"
	case Decline:
		return "decline"
	}
	return "unknown"
}

// RuleChoice is one ledger entry.
type RuleChoice struct {
	Rule     Rule
	Position int
	Decision Decision

	// Forced is true when the decision came from the configured choices
	// rather than the default.
	Forced bool
}

// BranchPoint is an optional rule that was decided by default. Flipping it
// yields an alternative derivation.
type BranchPoint struct {
	Rule     Rule
	Position int
}

// Config holds the read-only inputs of a derivation attempt.
type Config struct {
	// Choices pre-decides optional rules by label.
	Choices map[Rule]Decision

	// Logger receives one Debug record per applied rule. Nil disables
	// per-rule logging.
	Logger *slog.Logger
}

// Option configures a Prakriya.
type Option func(*Config)

// WithChoices pre-decides optional rules. The map is copied.
func WithChoices(choices map[Rule]Decision) Option {
	return func(c *Config) {
		c.Choices = maps.Clone(choices)
	}
}

// WithLogger sets the per-rule logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// RuleChoices returns the ledger in decision order.
func (p *Prakriya) RuleChoices() []RuleChoice {
	return p.choices
}

// BranchPoints returns the optional rules decided by default, in the order
// they were met.
func (p *Prakriya) BranchPoints() []BranchPoint {
	return p.branchPoints
}

// decision returns the decision already recorded for rule in this branch.
func (p *Prakriya) decision(rule Rule) (Decision, bool) {
	for _, c := range p.choices {
		if c.Rule == rule {
			return c.Decision, true
		}
	}
	return 0, false
}

func (p *Prakriya) configured(rule Rule) (Decision, bool) {
	d, ok := p.config.Choices[rule]
	return d, ok
}

func (p *Prakriya) markBranch(rule Rule, position int) {
	for _, b := range p.branchPoints {
		if b.Rule == rule {
			return
		}
	}
	p.branchPoints = append(p.branchPoints, BranchPoint{Rule: rule, Position: position})
}

// decide records the first decision for rule and returns it.
func (p *Prakriya) decide(rule Rule, position int) Decision {
	d, forced := p.configured(rule)
	if !forced {
		d = Accept
		p.markBranch(rule, position)
	}
	p.choices = append(p.choices, RuleChoice{Rule: rule, Position: position, Decision: d, Forced: forced})
	return d
}

func (p *Prakriya) stepDeclined(rule Rule) {
	p.history = append(p.history, Step{Rule: rule, Result: p.Text(), Declined: true})
	if p.logger != nil {
		p.logger.Debug("rule declined", "rule", rule)
	}
}

// OpOptional applies an optional rule to the whole state and reports whether
// it was accepted.
func (p *Prakriya) OpOptional(rule Rule, op Op) bool {
	return p.optional(rule, -1, func() { op(p) })
}

// OpOptionalTerm applies an optional rule to the term at i and reports whether
// it was accepted. An absent position is neither decided nor recorded.
func (p *Prakriya) OpOptionalTerm(rule Rule, i int, op TermOp) bool {
	t, ok := p.Get(i)
	if !ok {
		return false
	}
	return p.optional(rule, i, func() { op(t) })
}

func (p *Prakriya) optional(rule Rule, position int, apply func()) bool {
	d, ok := p.decision(rule)
	if !ok {
		d = p.decide(rule, position)
		if d == Decline {
			p.stepDeclined(rule)
			return false
		}
	}
	if d != Accept {
		return false
	}
	apply()
	p.Step(rule)
	return true
}

// IsAllowed reports whether rule may fire in this branch. It records nothing
// in the ledger; the caller follows up with Accept or Decline. An undecided,
// unconfigured rule is allowed and becomes a branch point.
func (p *Prakriya) IsAllowed(rule Rule) bool {
	if d, ok := p.decision(rule); ok {
		return d == Accept
	}
	if d, ok := p.configured(rule); ok {
		return d == Accept
	}
	p.markBranch(rule, -1)
	return true
}

// Accept records that rule was accepted. It does not add a history step.
func (p *Prakriya) Accept(rule Rule) {
	if _, ok := p.decision(rule); ok {
		return
	}
	_, forced := p.configured(rule)
	p.choices = append(p.choices, RuleChoice{Rule: rule, Position: -1, Decision: Accept, Forced: forced})
}

// Decline records that rule was declined and appends a declined history step.
// Once declined, IsAllowed reports false for rule for the rest of the branch.
func (p *Prakriya) Decline(rule Rule) {
	if _, ok := p.decision(rule); ok {
		return
	}
	_, forced := p.configured(rule)
	p.choices = append(p.choices, RuleChoice{Rule: rule, Position: -1, Decision: Decline, Forced: forced})
	p.stepDeclined(rule)
}
