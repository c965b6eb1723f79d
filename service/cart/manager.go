package cart

import (
	"sync"
	"time"
)

// Manager holds one Store per browsing session so the single-cart
// semantics hold per client. Sessions are created on first access and
// reclaimed by the janitor once idle.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*session
	now      func() time.Time
}

type session struct {
	store    *Store
	lastSeen time.Time
}

var (
	defaultManager *Manager
	managerOnce    sync.Once
)

// Sessions returns the process-wide cart manager.
func Sessions() *Manager {
	managerOnce.Do(func() {
		defaultManager = NewManager()
	})
	return defaultManager
}

// NewManager returns an empty Manager.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*session),
		now:      time.Now,
	}
}

// Get returns the cart for a session id, creating it if needed, and
// refreshes the session's last-access stamp.
func (m *Manager) Get(sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[sessionID]
	if !ok {
		sess = &session{store: NewStore()}
		m.sessions[sessionID] = sess
	}
	sess.lastSeen = m.now()
	return sess.store
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// PruneIdle drops sessions idle for longer than maxAge and returns how
// many were removed.
func (m *Manager) PruneIdle(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := m.now().Add(-maxAge)
	removed := 0
	for id, sess := range m.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}
