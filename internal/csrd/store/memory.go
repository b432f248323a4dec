// Package store persists reports together with their issues.
package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"portail-rse/internal/csrd/models"
	"portail-rse/pkg/platform/sentinel"
)

type reportKey struct {
	siren string
	year  int
	owner uuid.UUID
}

func keyOf(siren string, year int, owner *uuid.UUID) reportKey {
	k := reportKey{siren: siren, year: year}
	if owner != nil {
		k.owner = *owner
	}
	return k
}

// InMemory keeps deep copies so callers never share issue slices with it.
type InMemory struct {
	mu      sync.RWMutex
	reports map[uuid.UUID]*models.Report
	byKey   map[reportKey]uuid.UUID
}

func NewInMemory() *InMemory {
	return &InMemory{
		reports: make(map[uuid.UUID]*models.Report),
		byKey:   make(map[reportKey]uuid.UUID),
	}
}

// Create returns sentinel.ErrAlreadyUsed when the company, year and owner
// already have a report.
func (s *InMemory) Create(_ context.Context, r *models.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := keyOf(r.Siren, r.Year, r.Owner)
	if _, exists := s.byKey[key]; exists {
		return sentinel.ErrAlreadyUsed
	}
	r.Version = 1
	s.reports[r.ID] = r.Clone()
	s.byKey[key] = r.ID
	return nil
}

func (s *InMemory) Find(_ context.Context, siren string, year int, owner *uuid.UUID) (*models.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byKey[keyOf(siren, year, owner)]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return s.reports[id].Clone(), nil
}

// LatestOfficial returns the non-personal report with the highest year.
func (s *InMemory) LatestOfficial(_ context.Context, siren string) (*models.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var latest *models.Report
	for _, r := range s.reports {
		if r.Siren != siren || r.IsPersonal() {
			continue
		}
		if latest == nil || r.Year > latest.Year {
			latest = r
		}
	}
	if latest == nil {
		return nil, sentinel.ErrNotFound
	}
	return latest.Clone(), nil
}

// Save replaces the stored report when r.Version matches, then bumps it.
// Once the stored report is locked only the published link, phase and
// modification time are written.
func (s *InMemory) Save(_ context.Context, r *models.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.reports[r.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	if stored.Version != r.Version {
		return sentinel.ErrConflict
	}

	next := r.Clone()
	if stored.IsLocked() {
		next = stored.Clone()
		next.PublishedLink = r.PublishedLink
		next.Phase = r.Phase
		next.UpdatedAt = r.UpdatedAt
	}
	oldKey := keyOf(stored.Siren, stored.Year, stored.Owner)
	newKey := keyOf(next.Siren, next.Year, next.Owner)
	if newKey != oldKey {
		if _, exists := s.byKey[newKey]; exists {
			return sentinel.ErrAlreadyUsed
		}
		delete(s.byKey, oldKey)
		s.byKey[newKey] = next.ID
	}

	next.Version++
	s.reports[r.ID] = next
	r.Version = next.Version
	return nil
}
