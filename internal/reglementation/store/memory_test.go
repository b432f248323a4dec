package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portail-rse/internal/reglementation/models"
	"portail-rse/pkg/platform/sentinel"
)

func TestInMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	cache := NewInMemory()
	cache.now = func() time.Time { return clock }

	sim := &models.Simulation{ID: uuid.New(), Results: []models.Result{{Info: models.Info{ID: models.RuleBDESE}}}}
	require.NoError(t, cache.Put(ctx, sim, 30*time.Minute))

	got, err := cache.Get(ctx, sim.ID)
	require.NoError(t, err)
	assert.Equal(t, sim.Results, got.Results)

	got.Results[0].Insufficient = true
	again, err := cache.Get(ctx, sim.ID)
	require.NoError(t, err)
	assert.False(t, again.Results[0].Insufficient, "cached value must not alias the returned one")

	clock = clock.Add(30 * time.Minute)
	_, err = cache.Get(ctx, sim.ID)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	_, err = cache.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}
