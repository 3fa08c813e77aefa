package session

import (
	"context"
	"sync"
)

var _ Store = (*MemoryStore)(nil)

type MemoryStore struct {
	mu      sync.RWMutex
	session *Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Save(_ context.Context, s Session) error {
	m.mu.Lock()
	m.session = &s
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Load(_ context.Context) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil {
		return Session{}, ErrNotFound
	}
	return *m.session, nil
}

func (m *MemoryStore) Delete(_ context.Context) error {
	m.mu.Lock()
	m.session = nil
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Close() error { return nil }
