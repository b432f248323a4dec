package store

import (
	"context"
	"sync"

	"portail-rse/internal/audit"
)

type InMemoryStore struct {
	mu     sync.RWMutex
	events map[string][]audit.Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{events: make(map[string][]audit.Event)}
}

func (s *InMemoryStore) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.Siren] = append(s.events[event.Siren], event)
	return nil
}

// ListBySiren returns the events of one company, oldest first.
func (s *InMemoryStore) ListBySiren(_ context.Context, siren string) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]audit.Event{}, s.events[siren]...), nil
}
