package session

import (
	"context"
	"sync"
	"time"

	"github.com/iliyamo/eventistan/internal/navigation"
)

type memoryEntry struct {
	state   navigation.State
	expires time.Time
}

// MemoryStore keeps sessions in process memory.  It is used when Redis is
// unavailable.
type MemoryStore struct {
	mu   sync.Mutex
	ttl  time.Duration
	now  func() time.Time
	data map[string]memoryEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, now: time.Now, data: map[string]memoryEntry{}}
}

func (m *MemoryStore) Load(_ context.Context, id string) (navigation.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.data[id]
	if !ok {
		return navigation.State{}, ErrNotFound
	}
	if m.ttl > 0 && m.now().After(e.expires) {
		delete(m.data, id)
		return navigation.State{}, ErrNotFound
	}
	return e.state, nil
}

func (m *MemoryStore) Save(_ context.Context, id string, s navigation.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[id] = memoryEntry{state: s, expires: m.now().Add(m.ttl)}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, id)
	return nil
}
