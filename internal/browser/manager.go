package browser

import (
	"sync"

	"github.com/quayfm/quay/internal/store"
)

// Manager maps session cookie IDs to live sessions. Sessions are created on
// first use and live for the process lifetime; they hold only browsing state,
// never credentials.
type Manager struct {
	mu       sync.Mutex
	store    store.ObjectStore
	sessions map[string]*Session
}

func NewManager(st store.ObjectStore) *Manager {
	return &Manager{
		store:    st,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for id, creating it if needed.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s
	}
	s := NewSession(m.store)
	m.sessions[id] = s
	return s
}
