package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"weather-dashboard/pkg/resource"
)

// Open connects to the database configured under app.storage.postgres
func Open(ctx context.Context) (*sql.DB, error) {
	host := resource.GetStringOrDefault("app.storage.postgres.host", "localhost")
	port := resource.GetStringOrDefault("app.storage.postgres.port", "5432")
	password := resource.GetString("app.storage.postgres.password")
	username := resource.GetString("app.storage.postgres.username")
	database := resource.GetString("app.storage.postgres.database")
	schema := resource.GetStringOrDefault("app.storage.postgres.schema", "public")
	sslMode := resource.GetStringOrDefault("app.storage.postgres.ssl-mode", "disable")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		host, port, username, password, database, sslMode, schema)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	db.SetMaxOpenConns(resource.GetIntOrDefault("app.storage.postgres.max-open-conns", 10))

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	return db, nil
}
