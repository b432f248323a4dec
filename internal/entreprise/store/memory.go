// Package store persists companies and their yearly snapshots.
package store

import (
	"context"
	"sort"
	"sync"

	"portail-rse/internal/entreprise/models"
	"portail-rse/pkg/platform/sentinel"
)

type snapshotKey struct {
	siren string
	year  int
}

// InMemory is the store used when no database is configured, and in tests.
type InMemory struct {
	mu        sync.RWMutex
	companies map[string]models.Company
	snapshots map[snapshotKey]models.Snapshot
}

func NewInMemory() *InMemory {
	return &InMemory{
		companies: make(map[string]models.Company),
		snapshots: make(map[snapshotKey]models.Snapshot),
	}
}

func (s *InMemory) UpsertCompany(_ context.Context, c *models.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.companies[c.Siren] = *c
	return nil
}

func (s *InMemory) FindCompany(_ context.Context, siren string) (*models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.companies[siren]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &c, nil
}

// CreateSnapshot returns sentinel.ErrAlreadyUsed if the year already has one.
func (s *InMemory) CreateSnapshot(_ context.Context, snap *models.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.companies[snap.Siren]; !ok {
		return sentinel.ErrNotFound
	}
	key := snapshotKey{snap.Siren, snap.Year}
	if _, exists := s.snapshots[key]; exists {
		return sentinel.ErrAlreadyUsed
	}
	s.snapshots[key] = *snap
	return nil
}

func (s *InMemory) FindSnapshot(_ context.Context, siren string, year int) (*models.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.snapshots[snapshotKey{siren, year}]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &snap, nil
}

// LatestSnapshot returns the snapshot with the highest year.
func (s *InMemory) LatestSnapshot(_ context.Context, siren string) (*models.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var years []int
	for key := range s.snapshots {
		if key.siren == siren {
			years = append(years, key.year)
		}
	}
	if len(years) == 0 {
		return nil, sentinel.ErrNotFound
	}
	sort.Ints(years)
	snap := s.snapshots[snapshotKey{siren, years[len(years)-1]}]
	return &snap, nil
}
