// FilePath: internal/repository/timescale/timescale.reading_archive.go

// Package timescale archives gauge readings into a TimescaleDB
// hypertable for long-term queries. The archive is optional and
// best-effort; the Redis log stays the source of truth for /retrieve.
package timescale

import (
	"context"
	"time"

	"github.com/gaugeworks/levelhub/internal/errors"
	"github.com/gaugeworks/levelhub/internal/models"
	"github.com/gaugeworks/levelhub/internal/repository"
	"github.com/jmoiron/sqlx"
)

type ReadingArchiveRepo struct {
	db *sqlx.DB
}

// NewReadingArchive creates the archive repository and initializes its
// schema.
func NewReadingArchive(db *sqlx.DB) (repository.ReadingArchive, error) {
	repo := &ReadingArchiveRepo{db: db}
	if err := repo.initializeSchema(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *ReadingArchiveRepo) initializeSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS gauge_readings (
			id TEXT PRIMARY KEY,
			device_id TEXT NOT NULL,
			event INTEGER NOT NULL,
			level DOUBLE PRECISION NOT NULL,
			reported_at TIMESTAMPTZ NOT NULL
		)`,
		`SELECT create_hypertable('gauge_readings', 'reported_at',
			chunk_time_interval => INTERVAL '1 day',
			if_not_exists => TRUE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_gauge_readings_device_reported
		 ON gauge_readings(device_id, reported_at DESC)`,
	}

	for _, query := range queries {
		if _, err := r.db.Exec(query); err != nil {
			return errors.NewStoreError("failed to initialize archive schema", err)
		}
	}
	return nil
}

func (r *ReadingArchiveRepo) Insert(ctx context.Context, reading models.Reading) error {
	query := `
		INSERT INTO gauge_readings (id, device_id, event, level, reported_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING`

	reportedAt := time.Unix(reading.Time, 0).UTC()
	_, err := r.db.ExecContext(ctx, query,
		reading.ID, reading.DeviceID, reading.Event, reading.Level, reportedAt)
	if err != nil {
		return errors.NewStoreError("failed to archive reading", err)
	}
	return nil
}

func (r *ReadingArchiveRepo) GetRange(ctx context.Context, deviceID string, start, end time.Time) ([]models.Reading, error) {
	query := `
		SELECT id, device_id, event, level, reported_at
		FROM gauge_readings
		WHERE device_id = $1 AND reported_at BETWEEN $2 AND $3
		ORDER BY reported_at ASC`

	rows, err := r.db.QueryxContext(ctx, query, deviceID, start, end)
	if err != nil {
		return nil, errors.NewStoreError("failed to query archived readings", err)
	}
	defer rows.Close()

	readings := []models.Reading{}
	for rows.Next() {
		var (
			reading    models.Reading
			reportedAt time.Time
		)
		if err := rows.Scan(&reading.ID, &reading.DeviceID, &reading.Event, &reading.Level, &reportedAt); err != nil {
			return nil, errors.NewStoreError("failed to scan archived reading", err)
		}
		reading.Time = reportedAt.Unix()
		readings = append(readings, reading)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewStoreError("failed to iterate archived readings", err)
	}
	return readings, nil
}
