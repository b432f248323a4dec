// Package store keeps simulation results for a limited time.
package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"portail-rse/internal/reglementation/models"
	"portail-rse/pkg/platform/sentinel"
)

type entry struct {
	simulation models.Simulation
	expiresAt  time.Time
}

// InMemory is the simulation cache used when no redis is configured.
// Expired entries are dropped lazily on read.
type InMemory struct {
	mu      sync.Mutex
	entries map[uuid.UUID]entry
	now     func() time.Time
}

func NewInMemory() *InMemory {
	return &InMemory{entries: make(map[uuid.UUID]entry), now: time.Now}
}

func (s *InMemory) Put(_ context.Context, sim *models.Simulation, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *sim
	stored.Results = slices.Clone(sim.Results)
	s.entries[sim.ID] = entry{simulation: stored, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *InMemory) Get(_ context.Context, id uuid.UUID) (*models.Simulation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, id)
		return nil, sentinel.ErrNotFound
	}
	sim := e.simulation
	sim.Results = slices.Clone(sim.Results)
	return &sim, nil
}
