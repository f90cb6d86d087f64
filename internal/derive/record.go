package derive

import (
	"context"
	"errors"
	"fmt"

	"github.com/roach88/prakriya/internal/ir"
	"github.com/roach88/prakriya/internal/prakriya"
	"github.com/roach88/prakriya/internal/rules"
)

// ErrReplayMismatch is returned when a replayed derivation does not reproduce
// the stored digest.
var ErrReplayMismatch = errors.New("replay digest mismatch")

// Record converts a finished derivation into its storable form. The ID is
// left empty for the store to assign.
func Record(req Request, p *prakriya.Prakriya) (ir.Derivation, error) {
	history := HistoryIR(p)
	choices := ChoicesIR(p)
	requestID, err := ir.RequestID(req.IR())
	if err != nil {
		return ir.Derivation{}, err
	}
	digest, err := ir.HistoryDigest(p.Text(), history, choices)
	if err != nil {
		return ir.Derivation{}, err
	}
	return ir.Derivation{
		RequestID:     requestID,
		Request:       req.IR(),
		Surface:       p.Text(),
		History:       history,
		Choices:       choices,
		Digest:        digest,
		EngineVersion: ir.EngineVersion,
		IRVersion:     ir.IRVersion,
	}, nil
}

// HistoryIR converts the rule history.
func HistoryIR(p *prakriya.Prakriya) []ir.Step {
	out := make([]ir.Step, len(p.History()))
	for i, s := range p.History() {
		out[i] = ir.Step{Rule: string(s.Rule), Result: s.Result, Declined: s.Declined}
	}
	return out
}

// ChoicesIR converts the choice ledger.
func ChoicesIR(p *prakriya.Prakriya) []ir.Choice {
	out := make([]ir.Choice, len(p.RuleChoices()))
	for i, c := range p.RuleChoices() {
		out[i] = ir.Choice{Rule: string(c.Rule), Decision: c.Decision.String()}
	}
	return out
}

// Replay re-derives a stored record with its choices forced and checks that
// the result reproduces the stored digest. It returns the fresh record.
func Replay(ctx context.Context, rec ir.Derivation, opts ...Option) (ir.Derivation, error) {
	if err := ctx.Err(); err != nil {
		return ir.Derivation{}, err
	}
	req, err := RequestFromIR(rec.Request)
	if err != nil {
		return ir.Derivation{}, fmt.Errorf("replay %s: %w", rec.ID, err)
	}
	p, err := Run(req, rec.Choices, opts...)
	if err != nil {
		if rules.IsUnsupported(err) {
			return ir.Derivation{}, fmt.Errorf("replay %s: %w: branch no longer finishes: %v", rec.ID, ErrReplayMismatch, err)
		}
		return ir.Derivation{}, fmt.Errorf("replay %s: %w", rec.ID, err)
	}
	fresh, err := Record(req, p)
	if err != nil {
		return ir.Derivation{}, err
	}
	fresh.ID = rec.ID
	if fresh.Digest != rec.Digest {
		return fresh, fmt.Errorf("replay %s: %w: stored %s, got %s", rec.ID, ErrReplayMismatch, rec.Digest, fresh.Digest)
	}
	return fresh, nil
}
