package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is an in-process SessionStore. Sessions round-trip
// through their persisted JSON shape on every Load/Save, so it
// exercises the same serialization path as a real store. Used by tests
// and by replay runs that don't want a database.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string][]byte)}
}

// Load returns the stored session, or (nil, nil) when absent.
func (m *MemoryStore) Load(_ context.Context, handle string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, ok := m.sessions[handle]
	if !ok {
		return nil, nil
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, &ErrMalformedSession{Handle: handle, Reason: err.Error()}
	}
	return &sess, nil
}

// Save serializes and stores the session.
func (m *MemoryStore) Save(_ context.Context, sess *Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session for %q: %w", sess.UserHandle, err)
	}
	m.mu.Lock()
	m.sessions[sess.UserHandle] = raw
	m.mu.Unlock()
	return nil
}

// Len reports how many sessions are stored.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
