package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"weather-dashboard/internal/domain/model"
)

func newSQLiteStore(t *testing.T) *SQLStore {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "dashboard.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store, err := NewSQLiteStore(context.Background(), db)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func exerciseStore(t *testing.T, store KeyValueStore) {
	ctx := context.Background()

	if _, found, err := store.Get(ctx, KeyFavorites); err != nil || found {
		t.Fatalf("expected missing key, got found=%v err=%v", found, err)
	}

	if err := store.Set(ctx, KeyFavorites, `["Jakarta"]`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Set(ctx, KeyFavorites, `["Jakarta","Tokyo"]`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	value, found, err := store.Get(ctx, KeyFavorites)
	if err != nil || !found {
		t.Fatalf("expected stored key, got found=%v err=%v", found, err)
	}
	if value != `["Jakarta","Tokyo"]` {
		t.Errorf("expected last write to win, got %s", value)
	}

	if err := store.Delete(ctx, KeyFavorites); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Delete(ctx, KeyFavorites); err != nil {
		t.Fatalf("deleting a missing key should not fail: %v", err)
	}
	if _, found, _ := store.Get(ctx, KeyFavorites); found {
		t.Error("expected key to be deleted")
	}

	if health := store.Health(ctx); health.Status != model.StatusUp {
		t.Errorf("expected store to be UP, got %+v", health)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestSQLiteStore(t *testing.T) {
	exerciseStore(t, newSQLiteStore(t))
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.db")
	ctx := context.Background()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	store, err := NewSQLiteStore(ctx, db)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	if err := store.Set(ctx, KeyUnit, "F"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = db.Close()

	db, err = sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to reopen sqlite: %v", err)
	}
	defer db.Close()
	store, err = NewSQLiteStore(ctx, db)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	value, found, err := store.Get(ctx, KeyUnit)
	if err != nil || !found || value != "F" {
		t.Errorf("expected F after reopen, got %q found=%v err=%v", value, found, err)
	}
	if store.Driver() != "sqlite" {
		t.Errorf("unexpected driver %s", store.Driver())
	}
}
