package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/prakriya/internal/ir"
)

// createTestStore creates a new store in a temporary directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestDerivation creates a record with minimal required fields.
func createTestDerivation(id, surface string) ir.Derivation {
	req := ir.Request{Dhatu: "BU", Code: "01.0001", La: "law", Prayoga: "kartari", Purusha: "prathama", Vacana: "eka"}
	return ir.Derivation{
		ID:        id,
		RequestID: ir.MustRequestID(req),
		Request:   req,
		Surface:   surface,
		History: []ir.Step{
			{Rule: "1.3.1", Result: "BU"},
			{Rule: "3.2.123", Result: "BUla~w"},
			{Rule: "7.2.63", Result: surface, Declined: true},
		},
		Choices:       []ir.Choice{{Rule: "7.2.63", Decision: "decline"}},
		Digest:        "digest-" + surface,
		EngineVersion: ir.EngineVersion,
		IRVersion:     ir.IRVersion,
	}
}
