package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestOpenMemory(t *testing.T) {
	viper.Set("app.storage.driver", "memory")
	t.Cleanup(func() { viper.Set("app.storage.driver", "") })

	backend, err := Open(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer backend.Close()
	if backend.Store.Driver() != "memory" || backend.Redis != nil {
		t.Errorf("unexpected backend %+v", backend)
	}
}

func TestOpenSQLite(t *testing.T) {
	viper.Set("app.storage.driver", "sqlite")
	viper.Set("app.storage.sqlite.path", filepath.Join(t.TempDir(), "nested", "dashboard.db"))
	t.Cleanup(func() {
		viper.Set("app.storage.driver", "")
		viper.Set("app.storage.sqlite.path", "")
	})

	backend, err := Open(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer backend.Close()

	ctx := context.Background()
	if err := backend.Store.Set(ctx, "theme", "dark"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if value, ok, _ := backend.Store.Get(ctx, "theme"); !ok || value != "dark" {
		t.Errorf("expected dark, got %q", value)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	viper.Set("app.storage.driver", "etcd")
	t.Cleanup(func() { viper.Set("app.storage.driver", "") })

	if _, err := Open(context.Background()); err == nil {
		t.Error("expected an error for an unknown driver")
	}
}
