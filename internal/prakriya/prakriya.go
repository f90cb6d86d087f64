package prakriya

import (
	"log/slog"
	"strings"

	"github.com/roach88/prakriya/internal/term"
)

// Rule is an opaque rule label, usually a sutra number such as "3.1.68".
type Rule string

// Op mutates the whole derivation state.
type Op func(*Prakriya)

// TermOp mutates a single term.
type TermOp func(*term.Term)

// Step is one history entry.
type Step struct {
	// Rule is the rule that fired or was declined.
	Rule Rule

	// Result is the surface snapshot after the rule.
	Result string

	// Declined is set when the entry records a declined optional rule.
	Declined bool
}

// Prakriya is the state of one derivation attempt.
type Prakriya struct {
	terms        []*term.Term
	tags         term.TagSet
	history      []Step
	choices      []RuleChoice
	branchPoints []BranchPoint

	// config is shared read-only between forks.
	config *Config
	logger *slog.Logger
}

// New creates an empty derivation state.
func New(opts ...Option) *Prakriya {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Prakriya{config: cfg, logger: cfg.Logger}
}

// Terms returns the term sequence. Callers must not change its length.
func (p *Prakriya) Terms() []*term.Term {
	return p.terms
}

// Len returns the number of terms.
func (p *Prakriya) Len() int {
	return len(p.terms)
}

// Text returns the concatenated surface string.
func (p *Prakriya) Text() string {
	var b strings.Builder
	for _, t := range p.terms {
		b.WriteString(t.Text)
	}
	return b.String()
}

// History returns the ordered rule history.
func (p *Prakriya) History() []Step {
	return p.history
}

// Get returns the term at i.
func (p *Prakriya) Get(i int) (*term.Term, bool) {
	if i < 0 || i >= len(p.terms) {
		return nil, false
	}
	return p.terms[i], true
}

// View returns the window starting at i.
func (p *Prakriya) View(i int) (term.View, bool) {
	return term.NewView(p.terms, i)
}

// Has reports whether the term at i exists and satisfies pred.
func (p *Prakriya) Has(i int, pred func(*term.Term) bool) bool {
	t, ok := p.Get(i)
	return ok && pred(t)
}

// Set applies op to the term at i without recording history. It is meant for
// bookkeeping that is not itself a rule, such as tagging.
func (p *Prakriya) Set(i int, op TermOp) bool {
	t, ok := p.Get(i)
	if !ok {
		return false
	}
	op(t)
	return true
}

// FindFirst returns the position of the first term carrying tag.
func (p *Prakriya) FindFirst(tag term.Tag) (int, bool) {
	return p.FindFirstWhere(func(t *term.Term) bool { return t.HasTag(tag) })
}

// FindLast returns the position of the last term carrying tag.
func (p *Prakriya) FindLast(tag term.Tag) (int, bool) {
	return p.FindLastWhere(func(t *term.Term) bool { return t.HasTag(tag) })
}

// FindFirstWhere returns the position of the first term satisfying pred.
func (p *Prakriya) FindFirstWhere(pred func(*term.Term) bool) (int, bool) {
	for i, t := range p.terms {
		if pred(t) {
			return i, true
		}
	}
	return 0, false
}

// FindLastWhere returns the position of the last term satisfying pred.
func (p *Prakriya) FindLastWhere(pred func(*term.Term) bool) (int, bool) {
	for i := len(p.terms) - 1; i >= 0; i-- {
		if pred(p.terms[i]) {
			return i, true
		}
	}
	return 0, false
}

// FindNextWhere returns the first position after i whose term satisfies pred.
func (p *Prakriya) FindNextWhere(i int, pred func(*term.Term) bool) (int, bool) {
	for j := i + 1; j < len(p.terms); j++ {
		if pred(p.terms[j]) {
			return j, true
		}
	}
	return 0, false
}

// FindPrevWhere returns the last position before i whose term satisfies pred.
func (p *Prakriya) FindPrevWhere(i int, pred func(*term.Term) bool) (int, bool) {
	if i > len(p.terms) {
		i = len(p.terms)
	}
	for j := i - 1; j >= 0; j-- {
		if pred(p.terms[j]) {
			return j, true
		}
	}
	return 0, false
}

// Push appends t to the sequence.
func (p *Prakriya) Push(t *term.Term) {
	p.terms = append(p.terms, t)
}

// InsertBefore inserts t at i, shifting later positions up by one. It returns
// false when i is outside [0, Len()].
func (p *Prakriya) InsertBefore(i int, t *term.Term) bool {
	if i < 0 || i > len(p.terms) {
		return false
	}
	p.terms = append(p.terms, nil)
	copy(p.terms[i+1:], p.terms[i:])
	p.terms[i] = t
	return true
}

// InsertAfter inserts t immediately after i.
func (p *Prakriya) InsertAfter(i int, t *term.Term) bool {
	if i < 0 || i >= len(p.terms) {
		return false
	}
	return p.InsertBefore(i+1, t)
}

// HasTag reports whether the derivation carries the global tag.
func (p *Prakriya) HasTag(tag term.Tag) bool {
	return p.tags.Has(tag)
}

// AnyTag reports whether the derivation carries any of tags.
func (p *Prakriya) AnyTag(tags ...term.Tag) bool {
	for _, tag := range tags {
		if p.tags.Has(tag) {
			return true
		}
	}
	return false
}

// AddTag adds a global tag.
func (p *Prakriya) AddTag(tag term.Tag) {
	p.tags.Add(tag)
}

// AddTags adds global tags.
func (p *Prakriya) AddTags(tags ...term.Tag) {
	for _, tag := range tags {
		p.tags.Add(tag)
	}
}

// Op applies a mandatory rule to the whole state.
func (p *Prakriya) Op(rule Rule, op Op) {
	op(p)
	p.Step(rule)
}

// OpTerm applies a mandatory rule to the term at i. It returns false and
// leaves history untouched when i is absent.
func (p *Prakriya) OpTerm(rule Rule, i int, op TermOp) bool {
	t, ok := p.Get(i)
	if !ok {
		return false
	}
	op(t)
	p.Step(rule)
	return true
}

// Step records that rule fired. The snapshot is taken now, so mutations must
// happen before the call.
func (p *Prakriya) Step(rule Rule) {
	s := Step{Rule: rule, Result: p.Text()}
	p.history = append(p.history, s)
	if p.logger != nil {
		p.logger.Debug("rule applied", "rule", rule, "surface", s.Result)
	}
}

// Fork returns a deep copy of p. Terms, tags, history and the choice ledger
// are copied; the read-only configuration is shared.
func (p *Prakriya) Fork() *Prakriya {
	out := &Prakriya{
		terms:        make([]*term.Term, len(p.terms)),
		tags:         p.tags,
		history:      append([]Step(nil), p.history...),
		choices:      append([]RuleChoice(nil), p.choices...),
		branchPoints: append([]BranchPoint(nil), p.branchPoints...),
		config:       p.config,
		logger:       p.logger,
	}
	for i, t := range p.terms {
		out.terms[i] = t.Clone()
	}
	return out
}
