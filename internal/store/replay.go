package store

import (
	"context"
	"fmt"

	"github.com/roach88/prakriya/internal/ir"
)

// ReplayFunc re-derives a stored record and returns the fresh record. It
// returns an error when the fresh digest differs from the stored one.
type ReplayFunc func(ctx context.Context, rec ir.Derivation) (ir.Derivation, error)

// ReplayResult is the outcome of replaying one record.
type ReplayResult struct {
	ID           string
	Surface      string
	StoredDigest string
	Digest       string
	Err          error
}

// OK reports whether the replay reproduced the stored record.
func (r ReplayResult) OK() bool {
	return r.Err == nil && r.Digest == r.StoredDigest
}

// ReplayRequest replays every stored record of a request in insertion order.
// A failing record does not stop the others; the error return is reserved for
// storage failures.
func (s *Store) ReplayRequest(ctx context.Context, requestID string, fn ReplayFunc) ([]ReplayResult, error) {
	recs, err := s.ListDerivations(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("replay request: %w", err)
	}
	results := make([]ReplayResult, 0, len(recs))
	for _, rec := range recs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res := ReplayResult{ID: rec.ID, Surface: rec.Surface, StoredDigest: rec.Digest}
		fresh, err := fn(ctx, rec)
		res.Digest = fresh.Digest
		res.Err = err
		results = append(results, res)
	}
	return results, nil
}
