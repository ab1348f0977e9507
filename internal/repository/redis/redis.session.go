// FilePath: internal/repository/redis/redis.session.go
package redis

import (
	"context"
	"time"

	"github.com/gaugeworks/levelhub/internal/errors"
	"github.com/gaugeworks/levelhub/internal/repository"
	goredis "github.com/redis/go-redis/v9"
)

type SessionRepo struct {
	RedisBaseRepo
}

// NewSessionRepository creates a Redis-backed session repository.
func NewSessionRepository(client *goredis.Client, opTimeout time.Duration) repository.SessionRepository {
	return &SessionRepo{RedisBaseRepo: newBaseRepo(client, opTimeout)}
}

func (r *SessionRepo) Put(ctx context.Context, token, deviceID string, ttl time.Duration) error {
	opCtx, cancel := r.opContext(ctx)
	defer cancel()

	if err := r.client.Set(opCtx, sessionKey(token), deviceID, ttl).Err(); err != nil {
		return errors.NewStoreError("failed to store session", err)
	}
	return nil
}

func (r *SessionRepo) Get(ctx context.Context, token string) (string, error) {
	opCtx, cancel := r.opContext(ctx)
	defer cancel()

	deviceID, err := r.client.Get(opCtx, sessionKey(token)).Result()
	if err == goredis.Nil {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", errors.NewStoreError("failed to look up session", err)
	}
	return deviceID, nil
}

func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	opCtx, cancel := r.opContext(ctx)
	defer cancel()

	// DEL on an absent key is a no-op; delete stays idempotent.
	if err := r.client.Del(opCtx, sessionKey(token)).Err(); err != nil {
		return errors.NewStoreError("failed to delete session", err)
	}
	return nil
}
