package session

import "example.com/fitdash/internal/identity"

// Snapshot captures the session triple for transfer between execution
// contexts. The storage-less context exports it after initializing; the
// storage-capable context seeds from it instead of re-deriving from the store.
type Snapshot struct {
	User        *identity.User `json:"user"`
	Token       string         `json:"token"`
	Initialized bool           `json:"initialized"`
}

// Snapshot exports the current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{Token: m.token, Initialized: m.initialized}
	if m.user != nil {
		u := *m.user
		snap.User = &u
	}
	return snap
}

// Seed adopts a snapshot as authoritative state. A seeded manager that was
// marked initialized will not re-read the store on a later Initialize call.
func (m *Manager) Seed(snap Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = snap.Token
	if snap.User != nil {
		u := *snap.User
		m.user = &u
	} else {
		m.user = nil
	}
	m.initialized = snap.Initialized
}
