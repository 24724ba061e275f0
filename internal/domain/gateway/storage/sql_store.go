package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"weather-dashboard/internal/domain/model"
)

// dialect holds the statements that differ between SQL drivers
type dialect struct {
	name        string
	createTable string
	selectValue string
	upsertValue string
	deleteValue string
}

var sqliteDialect = dialect{
	name: "sqlite",
	createTable: `CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	)`,
	selectValue: `SELECT value FROM kv_store WHERE key = ?`,
	upsertValue: `INSERT INTO kv_store(key, value, updated_at) VALUES(?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
	deleteValue: `DELETE FROM kv_store WHERE key = ?`,
}

var postgresDialect = dialect{
	name: "postgres",
	createTable: `CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	selectValue: `SELECT value FROM kv_store WHERE key = $1`,
	upsertValue: `INSERT INTO kv_store(key, value, updated_at) VALUES($1, $2, $3)
		ON CONFLICT(key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
	deleteValue: `DELETE FROM kv_store WHERE key = $1`,
}

// SQLStore persists values in a kv_store table through database/sql
type SQLStore struct {
	db      *sql.DB
	dialect dialect
}

var _ KeyValueStore = (*SQLStore)(nil)

// NewSQLiteStore creates the kv_store table if needed on a modernc.org/sqlite connection
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLStore, error) {
	return newSQLStore(ctx, db, sqliteDialect)
}

// NewPostgresStore creates the kv_store table if needed on a lib/pq connection
func NewPostgresStore(ctx context.Context, db *sql.DB) (*SQLStore, error) {
	return newSQLStore(ctx, db, postgresDialect)
}

func newSQLStore(ctx context.Context, db *sql.DB, d dialect) (*SQLStore, error) {
	if _, err := db.ExecContext(ctx, d.createTable); err != nil {
		return nil, fmt.Errorf("failed to create kv_store table: %w", err)
	}
	return &SQLStore{db: db, dialect: d}, nil
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, s.dialect.selectValue, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.upsertValue, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.deleteValue, key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Health(ctx context.Context) model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"driver":  s.Driver(),
				"message": err.Error(),
			},
		}
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"driver":  s.Driver(),
			"message": string(model.StatusUp),
		},
	}
}

func (s *SQLStore) Driver() string {
	return s.dialect.name
}
