package term

import "sync"

// Identity is an interned canonical identity (upadesha). Rules match on
// identity rather than on current text, since text changes during a
// derivation while identity keeps governing which rules apply.
//
// The zero Identity means "no identity".
type Identity uint16

type interner struct {
	mu    sync.RWMutex
	names []string
	index map[string]Identity
}

var identities = &interner{
	names: []string{""},
	index: map[string]Identity{"": 0},
}

// Intern returns the identity for s, allocating one on first use.
func Intern(s string) Identity {
	if id, ok := Lookup(s); ok {
		return id
	}
	identities.mu.Lock()
	defer identities.mu.Unlock()
	if id, ok := identities.index[s]; ok {
		return id
	}
	id := Identity(len(identities.names))
	identities.names = append(identities.names, s)
	identities.index[s] = id
	return id
}

// Lookup returns the identity for s without allocating one. A string that was
// never interned cannot be the identity of any term.
func Lookup(s string) (Identity, bool) {
	identities.mu.RLock()
	defer identities.mu.RUnlock()
	id, ok := identities.index[s]
	return id, ok
}

// String returns the upadesha the identity was interned from.
func (id Identity) String() string {
	identities.mu.RLock()
	defer identities.mu.RUnlock()
	if int(id) >= len(identities.names) {
		return ""
	}
	return identities.names[id]
}
