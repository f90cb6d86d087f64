package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/prakriya/internal/ir"
)

// ErrNotFound is returned when no record has the requested ID.
var ErrNotFound = errors.New("derivation not found")

const selectDerivation = `
	SELECT id, request_id, request, surface, history, choices, digest, engine_version, ir_version
	FROM derivations
`

// ReadDerivation returns the record with the given ID.
func (s *Store) ReadDerivation(ctx context.Context, id string) (ir.Derivation, error) {
	row := s.db.QueryRowContext(ctx, selectDerivation+`WHERE id = ?`, id)
	rec, err := scanDerivation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ir.Derivation{}, fmt.Errorf("read derivation %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return ir.Derivation{}, fmt.Errorf("read derivation %s: %w", id, err)
	}
	return rec, nil
}

// ListDerivations returns every record of a request in insertion order.
func (s *Store) ListDerivations(ctx context.Context, requestID string) ([]ir.Derivation, error) {
	return s.list(ctx, selectDerivation+`WHERE request_id = ? ORDER BY seq ASC, id COLLATE BINARY ASC`, requestID)
}

// FindBySurface returns every record with the given surface form in
// insertion order.
func (s *Store) FindBySurface(ctx context.Context, surface string) ([]ir.Derivation, error) {
	return s.list(ctx, selectDerivation+`WHERE surface = ? ORDER BY seq ASC, id COLLATE BINARY ASC`, surface)
}

// ReadAllDerivations returns every record in insertion order.
func (s *Store) ReadAllDerivations(ctx context.Context) ([]ir.Derivation, error) {
	return s.list(ctx, selectDerivation+`ORDER BY seq ASC, id COLLATE BINARY ASC`)
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]ir.Derivation, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list derivations: %w", err)
	}
	defer rows.Close()

	var out []ir.Derivation
	for rows.Next() {
		rec, err := scanDerivation(rows)
		if err != nil {
			return nil, fmt.Errorf("list derivations: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list derivations: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDerivation(row scanner) (ir.Derivation, error) {
	var rec ir.Derivation
	var requestJSON, historyJSON, choicesJSON string
	err := row.Scan(
		&rec.ID,
		&rec.RequestID,
		&requestJSON,
		&rec.Surface,
		&historyJSON,
		&choicesJSON,
		&rec.Digest,
		&rec.EngineVersion,
		&rec.IRVersion,
	)
	if err != nil {
		return ir.Derivation{}, err
	}
	if rec.Request, err = unmarshalRequest(requestJSON); err != nil {
		return ir.Derivation{}, err
	}
	if rec.History, err = unmarshalHistory(historyJSON); err != nil {
		return ir.Derivation{}, err
	}
	if rec.Choices, err = unmarshalChoices(choicesJSON); err != nil {
		return ir.Derivation{}, err
	}
	return rec, nil
}
