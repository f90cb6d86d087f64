package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity. The version suffix leaves
// room for a future algorithm change.
const (
	DomainRequest = "prakriya/request/v1"
	DomainHistory = "prakriya/history/v1"
	DomainChoices = "prakriya/choices/v1"
)

// hashWithDomain computes SHA256(domain + 0x00 + data). The null byte keeps
// the domain/data boundary unambiguous.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// RequestID computes the content-addressed identifier of a request.
func RequestID(req Request) (string, error) {
	canonical, err := MarshalCanonical(req.object())
	if err != nil {
		return "", fmt.Errorf("RequestID: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainRequest, canonical), nil
}

// HistoryDigest computes the digest of a finished derivation: its surface,
// every step and every choice. Replay compares digests.
func HistoryDigest(surface string, history []Step, choices []Choice) (string, error) {
	steps := make(Array, len(history))
	for i, s := range history {
		steps[i] = s.object()
	}
	obj := Object{
		"surface": String(surface),
		"history": steps,
		"choices": choicesArray(choices),
	}
	canonical, err := MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("HistoryDigest: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainHistory, canonical), nil
}

// ChoicesKey identifies a choice configuration. The order of the entries is
// significant.
func ChoicesKey(choices []Choice) (string, error) {
	canonical, err := MarshalCanonical(choicesArray(choices))
	if err != nil {
		return "", fmt.Errorf("ChoicesKey: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainChoices, canonical), nil
}

// MustRequestID is like RequestID but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustRequestID(req Request) string {
	id, err := RequestID(req)
	if err != nil {
		panic(err)
	}
	return id
}

// MustChoicesKey is like ChoicesKey but panics on error.
func MustChoicesKey(choices []Choice) string {
	key, err := ChoicesKey(choices)
	if err != nil {
		panic(err)
	}
	return key
}
