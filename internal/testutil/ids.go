package testutil

import (
	"fmt"
	"sync"
)

// IDSequence hands out deterministic record IDs for tests and golden
// snapshots: prefix-0001, prefix-0002, ...
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type IDSequence struct {
	mu     sync.Mutex
	prefix string
	seq    int
}

// NewIDSequence creates a sequence. If prefix is empty, "test" is used.
func NewIDSequence(prefix string) *IDSequence {
	if prefix == "" {
		prefix = "test"
	}
	return &IDSequence{prefix: prefix}
}

// Next returns the next ID.
func (s *IDSequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return fmt.Sprintf("%s-%04d", s.prefix, s.seq)
}

// Reset restarts the sequence. After Reset, Next returns prefix-0001.
func (s *IDSequence) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq = 0
}
