package uistate

import (
	"context"
	"sync"
)

// MemoryStore backs the service when Redis is unreachable at boot. State is
// lost on restart.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[uint]State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[uint]State)}
}

func (s *MemoryStore) Load(_ context.Context, userID uint) (State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.states[userID]
	if !ok {
		return State{}, ErrNotFound
	}
	return st, nil
}

func (s *MemoryStore) Save(_ context.Context, userID uint, st State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states[userID] = st
	return nil
}
