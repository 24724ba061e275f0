package storage

import (
	"context"
	"fmt"

	"weather-dashboard/internal/domain/model"
	"weather-dashboard/pkg/redis"
)

// RedisStore keeps values as plain Redis strings without expiration
type RedisStore struct {
	client *redis.Client
}

var _ KeyValueStore = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, found, err := s.client.Get(ctx, key)
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, found, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Health(ctx context.Context) model.ComponentHealthStatus {
	check := s.client.Health(ctx)
	check.Details["driver"] = s.Driver()
	return model.ComponentHealthStatus{
		Status:  model.HealthStatus(check.Status),
		Details: check.Details,
	}
}

func (s *RedisStore) Driver() string {
	return "redis"
}
