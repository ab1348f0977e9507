// FilePath: internal/repository/memory/memory.session.go

// Package memory provides in-process repository implementations. They
// back unit tests and let the service run without a Redis instance;
// semantics match the Redis repositories including TTL expiry.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/gaugeworks/levelhub/internal/repository"
)

type sessionEntry struct {
	deviceID  string
	expiresAt time.Time
}

type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]sessionEntry
	now      func() time.Time
}

// NewSessionRepository creates an in-memory session repository.
func NewSessionRepository() *SessionRepo {
	return &SessionRepo{
		sessions: make(map[string]sessionEntry),
		now:      time.Now,
	}
}

var _ repository.SessionRepository = (*SessionRepo)(nil)

func (r *SessionRepo) Put(ctx context.Context, token, deviceID string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := sessionEntry{deviceID: deviceID}
	if ttl > 0 {
		entry.expiresAt = r.now().Add(ttl)
	}
	r.sessions[token] = entry
	return nil
}

func (r *SessionRepo) Get(ctx context.Context, token string) (string, error) {
	r.mu.RLock()
	entry, ok := r.sessions[token]
	r.mu.RUnlock()

	if !ok {
		return "", repository.ErrNotFound
	}
	if !entry.expiresAt.IsZero() && r.now().After(entry.expiresAt) {
		r.mu.Lock()
		delete(r.sessions, token)
		r.mu.Unlock()
		return "", repository.ErrNotFound
	}
	return entry.deviceID, nil
}

func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, token)
	return nil
}
