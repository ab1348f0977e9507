// FilePath: internal/repository/repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gaugeworks/levelhub/internal/models"
)

var (
	// ErrNotFound indicates that a requested record was not found
	ErrNotFound = errors.New("record not found")
	// ErrInvalidInput indicates that the input data is invalid
	ErrInvalidInput = errors.New("invalid input")
)

// SessionRepository stores the token -> device-id associations that back
// the auth gate. All operations are I/O-bound and may fail when the
// store is unreachable.
type SessionRepository interface {
	// Put associates token with deviceID, overwriting any prior
	// association. The store-level TTL mirrors the token lifetime.
	Put(ctx context.Context, token, deviceID string, ttl time.Duration) error
	// Get returns the device id a token was issued for, or ErrNotFound
	// if the token is absent or expired.
	Get(ctx context.Context, token string) (string, error)
	// Delete removes the association. Deleting an absent token is not
	// an error.
	Delete(ctx context.Context, token string) error
}

// ReadingRepository stores the per-device append-only reading logs.
type ReadingRepository interface {
	// Append adds one reading to the end of the device's log. Concurrent
	// appends for the same device serialize in the store's natural order.
	Append(ctx context.Context, deviceID string, reading models.Reading) error
	// List returns readings in append order. offset/limit page through
	// the log; limit 0 returns everything from offset on. An unknown
	// device yields an empty slice, not an error.
	List(ctx context.Context, deviceID string, offset, limit int64) ([]models.Reading, error)
	// Trim drops the oldest entries so at most max remain.
	Trim(ctx context.Context, deviceID string, max int64) error
	// Devices lists the ids of all devices that have a reading log.
	Devices(ctx context.Context) ([]string, error)
}

// ReadingArchive is the optional long-term relational archive.
type ReadingArchive interface {
	Insert(ctx context.Context, reading models.Reading) error
	GetRange(ctx context.Context, deviceID string, start, end time.Time) ([]models.Reading, error)
}
