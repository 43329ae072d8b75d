package store

import (
	"sort"
	"sync"

	"puyo-puyo/internal/match"
)

type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*match.Controller
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: map[string]*match.Controller{},
	}
}

func (m *MemoryStore) GetSession(code string) (*match.Controller, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.sessions[code]
	return c, ok
}

func (m *MemoryStore) SaveSession(code string, c *match.Controller) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[code] = c
}

func (m *MemoryStore) DeleteSession(code string) (*match.Controller, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.sessions[code]
	delete(m.sessions, code)
	return c, ok
}

// Codes lists the live session codes in sorted order.
func (m *MemoryStore) Codes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.sessions))
	for code := range m.sessions {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
