package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/roach88/prakriya/internal/ir"
)

// NewID returns a fresh UUIDv7 record identifier.
func NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("new id: %w", err)
	}
	return id.String(), nil
}

// WriteDerivation inserts a derivation record and returns its ID. A record
// without an ID is assigned a UUIDv7. Uses ON CONFLICT(id) DO NOTHING for
// idempotency - writing the same ID twice keeps the first row.
func (s *Store) WriteDerivation(ctx context.Context, rec ir.Derivation) (string, error) {
	if rec.ID == "" {
		id, err := NewID()
		if err != nil {
			return "", fmt.Errorf("write derivation: %w", err)
		}
		rec.ID = id
	}

	requestJSON, err := marshalJSON("request", rec.Request)
	if err != nil {
		return "", fmt.Errorf("write derivation: %w", err)
	}
	historyJSON, err := marshalJSON("history", rec.History)
	if err != nil {
		return "", fmt.Errorf("write derivation: %w", err)
	}
	choicesJSON, err := marshalJSON("choices", rec.Choices)
	if err != nil {
		return "", fmt.Errorf("write derivation: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO derivations
		(id, request_id, request, surface, history, choices, digest, engine_version, ir_version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		rec.ID,
		rec.RequestID,
		requestJSON,
		rec.Surface,
		historyJSON,
		choicesJSON,
		rec.Digest,
		rec.EngineVersion,
		rec.IRVersion,
	)
	if err != nil {
		return "", fmt.Errorf("write derivation: %w", err)
	}
	return rec.ID, nil
}
