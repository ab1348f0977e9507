// FilePath: internal/repository/redis/redis.baserepo.go

// Package redis implements the session and reading repositories on a
// shared go-redis client. Keys are namespaced (session:, readings:) so
// tokens and device logs cannot collide.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "session:"
	readingKeyPrefix = "readings:"
)

// RedisBaseRepo holds the shared client and the bounded per-operation
// timeout every store call runs under. A hung store call must fail the
// request, never hang it.
type RedisBaseRepo struct {
	client    *redis.Client
	opTimeout time.Duration
}

func newBaseRepo(client *redis.Client, opTimeout time.Duration) RedisBaseRepo {
	if opTimeout <= 0 {
		opTimeout = 5 * time.Second
	}
	return RedisBaseRepo{client: client, opTimeout: opTimeout}
}

// opContext derives the bounded context for a single store operation.
func (r *RedisBaseRepo) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.opTimeout)
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

func readingKey(deviceID string) string {
	return readingKeyPrefix + deviceID
}
