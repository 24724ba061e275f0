package redis

import (
	"context"
	"fmt"

	"weather-dashboard/pkg/redis"
	"weather-dashboard/pkg/resource"
)

// NewClient connects to the server configured under app.storage.redis
func NewClient(ctx context.Context) (*redis.Client, error) {
	defaults := redis.DefaultConfig()
	config := redis.NewRedisConfig().
		WithHost(resource.GetStringOrDefault("app.storage.redis.host", defaults.Host)).
		WithPort(resource.GetIntOrDefault("app.storage.redis.port", defaults.Port)).
		WithPassword(resource.GetString("app.storage.redis.password")).
		WithDatabase(resource.GetInt("app.storage.redis.database")).
		WithNamespace(resource.GetStringOrDefault("app.storage.redis.namespace", defaults.Namespace)).
		WithDialTimeout(resource.GetDurationOrDefault("app.storage.redis.dial-timeout", defaults.DialTimeout)).
		WithReadTimeout(resource.GetDurationOrDefault("app.storage.redis.read-timeout", defaults.ReadTimeout)).
		WithWriteTimeout(resource.GetDurationOrDefault("app.storage.redis.write-timeout", defaults.WriteTimeout))

	client, err := redis.NewClient(config)
	if err != nil {
		return nil, err
	}
	if err = client.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}
