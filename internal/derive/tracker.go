package derive

import (
	"cmp"
	"slices"

	"github.com/roach88/prakriya/internal/ir"
)

// configTracker remembers which choice configurations already ran.
//
// Two configurations that fix the same decisions are the same configuration
// regardless of the order in which the decisions were met, so the key is
// computed over the decisions sorted by rule.
type configTracker struct {
	seen map[string]bool
}

func newConfigTracker() *configTracker {
	return &configTracker{seen: make(map[string]bool)}
}

// Visit records cfg and reports whether it is new.
func (t *configTracker) Visit(cfg []ir.Choice) (bool, error) {
	key, err := ir.ChoicesKey(sortedChoices(cfg))
	if err != nil {
		return false, err
	}
	if t.seen[key] {
		return false, nil
	}
	t.seen[key] = true
	return true, nil
}

// Len returns the number of configurations recorded.
func (t *configTracker) Len() int {
	return len(t.seen)
}

func sortedChoices(cfg []ir.Choice) []ir.Choice {
	out := slices.Clone(cfg)
	slices.SortStableFunc(out, func(a, b ir.Choice) int {
		return cmp.Compare(a.Rule, b.Rule)
	})
	return out
}

// branchQuota bounds the number of configurations a request may run.
type branchQuota struct {
	limit   int
	current int
}

// Check counts one more run and fails once the limit is passed.
func (q *branchQuota) Check(req Request) error {
	q.current++
	if q.current > q.limit {
		return &BranchLimitError{Code: ErrCodeBranchLimit, Request: req, Limit: q.limit}
	}
	return nil
}
