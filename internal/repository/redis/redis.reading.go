// FilePath: internal/repository/redis/redis.reading.go
package redis

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gaugeworks/levelhub/internal/errors"
	"github.com/gaugeworks/levelhub/internal/models"
	"github.com/gaugeworks/levelhub/internal/repository"
	goredis "github.com/redis/go-redis/v9"
)

type ReadingRepo struct {
	RedisBaseRepo
}

// NewReadingRepository creates a Redis-backed reading repository. Each
// device's log is a Redis list of JSON records in arrival order.
func NewReadingRepository(client *goredis.Client, opTimeout time.Duration) repository.ReadingRepository {
	return &ReadingRepo{RedisBaseRepo: newBaseRepo(client, opTimeout)}
}

func (r *ReadingRepo) Append(ctx context.Context, deviceID string, reading models.Reading) error {
	// The device id lives in the key, not the record.
	reading.DeviceID = ""
	payload, err := json.Marshal(reading)
	if err != nil {
		return errors.NewInternalError("failed to serialize reading", err)
	}

	opCtx, cancel := r.opContext(ctx)
	defer cancel()

	if err := r.client.RPush(opCtx, readingKey(deviceID), payload).Err(); err != nil {
		return errors.NewStoreError("failed to append reading", err)
	}
	return nil
}

func (r *ReadingRepo) List(ctx context.Context, deviceID string, offset, limit int64) ([]models.Reading, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = offset + limit - 1
	}

	opCtx, cancel := r.opContext(ctx)
	defer cancel()

	// LRANGE on a missing key returns an empty list, matching the
	// unknown-device contract.
	raw, err := r.client.LRange(opCtx, readingKey(deviceID), offset, stop).Result()
	if err != nil {
		return nil, errors.NewStoreError("failed to list readings", err)
	}

	readings := make([]models.Reading, 0, len(raw))
	for _, entry := range raw {
		var reading models.Reading
		if err := json.Unmarshal([]byte(entry), &reading); err != nil {
			return nil, errors.NewInternalError("failed to decode stored reading", err)
		}
		reading.DeviceID = deviceID
		readings = append(readings, reading)
	}
	return readings, nil
}

func (r *ReadingRepo) Trim(ctx context.Context, deviceID string, max int64) error {
	if max <= 0 {
		return nil
	}

	opCtx, cancel := r.opContext(ctx)
	defer cancel()

	// Keep the newest max entries; the oldest fall off the head.
	if err := r.client.LTrim(opCtx, readingKey(deviceID), -max, -1).Err(); err != nil {
		return errors.NewStoreError("failed to trim readings", err)
	}
	return nil
}

func (r *ReadingRepo) Devices(ctx context.Context) ([]string, error) {
	opCtx, cancel := r.opContext(ctx)
	defer cancel()

	var (
		devices []string
		cursor  uint64
	)
	for {
		keys, next, err := r.client.Scan(opCtx, cursor, readingKeyPrefix+"*", 100).Result()
		if err != nil {
			return nil, errors.NewStoreError("failed to scan device logs", err)
		}
		for _, key := range keys {
			devices = append(devices, strings.TrimPrefix(key, readingKeyPrefix))
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return devices, nil
}
