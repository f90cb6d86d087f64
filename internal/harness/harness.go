package harness

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/roach88/prakriya/internal/derive"
	"github.com/roach88/prakriya/internal/ir"
	"github.com/roach88/prakriya/internal/store"
	"github.com/roach88/prakriya/internal/testutil"
)

// Harness is the scenario execution engine. It owns an isolated store and a
// deterministic ID sequence.
type Harness struct {
	store  *store.Store
	ids    *testutil.IDSequence
	logger *slog.Logger
	opts   []derive.Option
}

// Run executes a scenario and returns the result.
//
// Execution flow:
// 1. Create fresh in-memory database
// 2. Derive every case and store each record
// 3. Check the case expectations
// 4. Replay every stored record and compare digests
// 5. Evaluate assertions
//
// The error return is reserved for infrastructure failures; expectation and
// assertion failures are reported in Result.Errors.
func Run(ctx context.Context, scenario *Scenario, opts ...derive.Option) (*Result, error) {
	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	logger := testutil.DiscardLogger()
	h := &Harness{
		store:  st,
		ids:    testutil.NewIDSequence(scenario.Name),
		logger: logger,
		opts:   append([]derive.Option{derive.WithLogger(logger)}, opts...),
	}

	reqs, err := scenario.Requests()
	if err != nil {
		return nil, err
	}

	result := NewResult()
	for i, req := range reqs {
		cr, err := h.deriveCase(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("case %d (%s): %w", i, req, err)
		}
		result.Cases = append(result.Cases, cr)
		checkExpect(result, i, scenario.Cases[i], cr)
	}

	if err := h.replayAll(ctx, result); err != nil {
		return nil, err
	}

	for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(msg)
	}
	return result, nil
}

func (h *Harness) deriveCase(ctx context.Context, req derive.Request) (CaseResult, error) {
	ps, err := derive.Derive(ctx, req, h.opts...)
	if err != nil {
		return CaseResult{}, err
	}

	cr := CaseResult{Request: req.IR()}
	for _, p := range ps {
		rec, err := derive.Record(req, p)
		if err != nil {
			return CaseResult{}, err
		}
		rec.ID = h.ids.Next()
		if _, err := h.store.WriteDerivation(ctx, rec); err != nil {
			return CaseResult{}, fmt.Errorf("failed to write derivation: %w", err)
		}
		cr.Derivations = append(cr.Derivations, rec)
	}
	return cr, nil
}

func (h *Harness) replayAll(ctx context.Context, result *Result) error {
	replay := func(ctx context.Context, rec ir.Derivation) (ir.Derivation, error) {
		return derive.Replay(ctx, rec, h.opts...)
	}
	for i, cr := range result.Cases {
		if len(cr.Derivations) == 0 {
			continue
		}
		rs, err := h.store.ReplayRequest(ctx, cr.Derivations[0].RequestID, replay)
		if err != nil {
			return err
		}
		for _, r := range rs {
			if !r.OK() {
				result.AddError(fmt.Sprintf("case %d: replay of %s (%s) failed: %v", i, r.ID, r.Surface, r.Err))
			}
		}
		h.logger.Debug("case replayed", "case", i, "records", len(rs))
	}
	return nil
}

func checkExpect(result *Result, i int, c Case, cr CaseResult) {
	forms := cr.Forms()
	if c.Exact {
		if !slices.Equal(forms, c.Expect) {
			result.AddError(fmt.Sprintf("case %d: expected exactly %v, got %v", i, c.Expect, forms))
		}
		return
	}
	for _, want := range c.Expect {
		if !slices.Contains(forms, want) {
			result.AddError(fmt.Sprintf("case %d: expected form %s, got %v", i, want, forms))
		}
	}
}
