package storage

import (
	"context"
	"errors"
	"strings"

	"weather-dashboard/internal/domain/gateway/storage"
	"weather-dashboard/internal/infra/database/postgres"
	"weather-dashboard/internal/infra/database/sqlite"
	infraredis "weather-dashboard/internal/infra/redis"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/redis"
	"weather-dashboard/pkg/resource"
)

// Backend is the opened key/value store with what has to be closed on shutdown
type Backend struct {
	Store storage.KeyValueStore
	// Redis is set when the store is backed by Redis
	Redis *redis.Client
	close func() error
}

// Close releases the underlying connection
func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// Open builds the store selected by app.storage.driver: memory, sqlite, redis or postgres
func Open(ctx context.Context) (*Backend, error) {
	driver := strings.ToLower(resource.GetStringOrDefault("app.storage.driver", "sqlite"))

	backend, err := open(ctx, driver)
	if err != nil {
		return nil, err
	}
	log.Info(msg.GetMessage("storage.connected", backend.Store.Driver()))
	return backend, nil
}

func open(ctx context.Context, driver string) (*Backend, error) {
	switch driver {
	case "memory":
		return &Backend{Store: storage.NewMemoryStore()}, nil

	case "sqlite":
		db, err := sqlite.Open(ctx)
		if err != nil {
			return nil, err
		}
		store, err := storage.NewSQLiteStore(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		return &Backend{Store: store, close: db.Close}, nil

	case "postgres":
		db, err := postgres.Open(ctx)
		if err != nil {
			return nil, err
		}
		store, err := storage.NewPostgresStore(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		return &Backend{Store: store, close: db.Close}, nil

	case "redis":
		client, err := infraredis.NewClient(ctx)
		if err != nil {
			return nil, err
		}
		return &Backend{Store: storage.NewRedisStore(client), Redis: client, close: client.Close}, nil
	}
	return nil, errors.New(msg.GetMessage("storage.error.unknown-driver", driver))
}
