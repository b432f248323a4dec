package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"portail-rse/internal/reglementation/models"
	"portail-rse/pkg/platform/sentinel"
)

const simulationKeyPrefix = "simulation:"

// RedisCache shares simulations between server instances. Redis expires
// the keys.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func simulationKey(id uuid.UUID) string {
	return simulationKeyPrefix + id.String()
}

func (c *RedisCache) Put(ctx context.Context, sim *models.Simulation, ttl time.Duration) error {
	payload, err := json.Marshal(sim)
	if err != nil {
		return fmt.Errorf("encode simulation: %w", err)
	}
	return c.client.Set(ctx, simulationKey(sim.ID), payload, ttl).Err()
}

func (c *RedisCache) Get(ctx context.Context, id uuid.UUID) (*models.Simulation, error) {
	payload, err := c.client.Get(ctx, simulationKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var sim models.Simulation
	if err := json.Unmarshal(payload, &sim); err != nil {
		return nil, fmt.Errorf("decode simulation %s: %w", id, err)
	}
	return &sim, nil
}
