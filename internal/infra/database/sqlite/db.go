package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"weather-dashboard/pkg/resource"
)

const defaultPath = "data/weather-dashboard.db"

// Open opens the database file configured under app.storage.sqlite.path, creating its directory
func Open(ctx context.Context) (*sql.DB, error) {
	return OpenFile(ctx, resource.GetStringOrDefault("app.storage.sqlite.path", defaultPath))
}

// OpenFile opens the database at path
func OpenFile(ctx context.Context, path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	// one writer at a time
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite: %w", err)
	}
	return db, nil
}
