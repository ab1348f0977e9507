// FilePath: internal/database/database.go
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/gaugeworks/levelhub/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	nuts "github.com/vaudience/go-nuts"
)

// NewRedisClient connects the shared Redis handle used by the session
// and reading repositories. The client is long-lived and shared across
// all requests; go-redis serializes access internally.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("error connecting to Redis: %w", err)
	}

	nuts.L.Infof("[Redis] Connected to %s:%d/%d", cfg.Host, cfg.Port, cfg.DB)
	return client, nil
}

// NewArchiveDB connects to the TimescaleDB instance used for optional
// long-term reading archival and verifies the extension is present.
func NewArchiveDB(cfg config.PostgresConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("error connecting to archive database: %w", err)
	}

	var hasTimescaleDB bool
	err = db.Get(&hasTimescaleDB, "SELECT EXISTS (SELECT 1 FROM pg_extension WHERE extname = 'timescaledb')")
	if err != nil || !hasTimescaleDB {
		db.Close()
		return nil, fmt.Errorf("TimescaleDB extension not available")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error pinging archive database: %w", err)
	}

	nuts.L.Infof("[ArchiveDB] Connected to %s:%d/%s", cfg.Host, cfg.Port, cfg.DBName)
	return db, nil
}
