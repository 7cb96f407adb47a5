// apps/go-solver/internal/store/memory.go
//
// In-memory implementation of the session Store.
// Sessions opened over HTTP live here between requests.
//
// Characteristics:
//   - Stores *protocol.Session objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Sessions idle for longer than the configured TTL are dropped on the next Save.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordle/apps/go-solver/internal/protocol"
)

// ErrNotFound is returned by Get for unknown or expired sessions.
var ErrNotFound = errors.New("store: session not found")

// Store defines the persistence interface for interactive sessions.
type Store interface {
	// Save adds or replaces a session.
	Save(ctx context.Context, s *protocol.Session) error

	// Get retrieves a session by ID and marks it as used.
	Get(ctx context.Context, id string) (*protocol.Session, error)

	// Len reports how many sessions are held.
	Len() int
}

type entry struct {
	session  *protocol.Session
	lastUsed time.Time
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore constructs a new in-memory Store. ttl <= 0 keeps sessions
// forever.
func NewMemoryStore(ttl time.Duration) Store {
	return &memory{sessions: make(map[string]*entry), ttl: ttl, now: time.Now}
}

func (m *memory) Save(ctx context.Context, s *protocol.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.evict(now)
	m.sessions[s.ID] = &entry{session: s, lastUsed: now}
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*protocol.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[id]
	if !ok || m.expired(e, m.now()) {
		return nil, ErrNotFound
	}
	e.lastUsed = m.now()
	return e.session, nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// evict drops expired sessions. Caller holds the write lock.
func (m *memory) evict(now time.Time) {
	for id, e := range m.sessions {
		if m.expired(e, now) {
			delete(m.sessions, id)
		}
	}
}

func (m *memory) expired(e *entry, now time.Time) bool {
	return m.ttl > 0 && now.Sub(e.lastUsed) > m.ttl
}
