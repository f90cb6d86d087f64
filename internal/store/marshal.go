package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/roach88/prakriya/internal/ir"
)

// marshalJSON encodes v as JSON TEXT without HTML escaping, so SLP1 text
// is stored as written.
func marshalJSON(what string, v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("marshal %s: %w", what, err)
	}
	// Encoder adds a trailing newline, remove it
	return strings.TrimSpace(buf.String()), nil
}

func unmarshalRequest(data string) (ir.Request, error) {
	var req ir.Request
	if err := json.Unmarshal([]byte(data), &req); err != nil {
		return ir.Request{}, fmt.Errorf("unmarshal request: %w", err)
	}
	return req, nil
}

func unmarshalHistory(data string) ([]ir.Step, error) {
	history := []ir.Step{}
	if err := json.Unmarshal([]byte(data), &history); err != nil {
		return nil, fmt.Errorf("unmarshal history: %w", err)
	}
	return history, nil
}

func unmarshalChoices(data string) ([]ir.Choice, error) {
	choices := []ir.Choice{}
	if err := json.Unmarshal([]byte(data), &choices); err != nil {
		return nil, fmt.Errorf("unmarshal choices: %w", err)
	}
	return choices, nil
}
