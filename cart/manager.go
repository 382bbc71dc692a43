package cart

import (
	"context"
	"log"
	"sync"
)

// Persister is the optional durable store behind the session carts. A nil
// persister keeps carts in-memory only, resetting on process restart.
type Persister interface {
	Load(ctx context.Context, sessionID string) ([]Line, error)
	Save(ctx context.Context, sessionID string, lines []Line) error
	Delete(ctx context.Context, sessionID string) error
}

// Manager hands out one Store per session ID, hydrating from the persister
// on first touch. Stores are created lazily and live for the process
// lifetime; the persister's TTL bounds how long an idle cart survives.
type Manager struct {
	mu        sync.Mutex
	stores    map[string]*Store
	persister Persister
}

func NewManager(p Persister) *Manager {
	return &Manager{
		stores:    make(map[string]*Store),
		persister: p,
	}
}

// Get returns the store for the session, creating (and hydrating) it if
// needed.
func (m *Manager) Get(ctx context.Context, sessionID string) *Store {
	m.mu.Lock()
	if store, ok := m.stores[sessionID]; ok {
		m.mu.Unlock()
		return store
	}
	store := NewStore()
	m.stores[sessionID] = store
	m.mu.Unlock()

	if m.persister != nil {
		lines, err := m.persister.Load(ctx, sessionID)
		if err != nil {
			log.Println("cart hydrate failed:", err)
		} else if len(lines) > 0 {
			store.Replace(lines)
		}
	}
	return store
}

// Flush writes the session's current lines to the persister. Called by the
// request boundary after a mutation; the store itself does no I/O.
func (m *Manager) Flush(ctx context.Context, sessionID string) {
	if m.persister == nil {
		return
	}
	m.mu.Lock()
	store, ok := m.stores[sessionID]
	m.mu.Unlock()
	if !ok {
		return
	}

	lines := store.Lines()
	var err error
	if len(lines) == 0 {
		err = m.persister.Delete(ctx, sessionID)
	} else {
		err = m.persister.Save(ctx, sessionID, lines)
	}
	if err != nil {
		log.Println("cart flush failed:", err)
	}
}
