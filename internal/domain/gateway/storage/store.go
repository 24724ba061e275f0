package storage

import (
	"context"

	"weather-dashboard/internal/domain/model"
)

// Keys written by the dashboard. They match what the browser client keeps in local storage.
const (
	KeyFavorites        = "weather-favorites"
	KeyUnit             = "weather-unit"
	KeyTheme            = "theme"
	KeyInstallDismissed = "pwa-dismissed"
	KeyInstalled        = "pwa-installed"
)

// KeyValueStore is a string key/value store with last-write-wins semantics
type KeyValueStore interface {
	// Get returns the stored value. The boolean is false when the key was never written.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Health reports whether the backing store is reachable
	Health(ctx context.Context) model.ComponentHealthStatus

	// Driver names the backing store
	Driver() string
}
