// FilePath: internal/repository/memory/memory.reading.go
package memory

import (
	"context"
	"sync"

	"github.com/gaugeworks/levelhub/internal/models"
	"github.com/gaugeworks/levelhub/internal/repository"
)

type ReadingRepo struct {
	mu   sync.RWMutex
	logs map[string][]models.Reading
}

// NewReadingRepository creates an in-memory reading repository.
func NewReadingRepository() *ReadingRepo {
	return &ReadingRepo{
		logs: make(map[string][]models.Reading),
	}
}

var _ repository.ReadingRepository = (*ReadingRepo)(nil)

func (r *ReadingRepo) Append(ctx context.Context, deviceID string, reading models.Reading) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reading.DeviceID = ""
	r.logs[deviceID] = append(r.logs[deviceID], reading)
	return nil
}

func (r *ReadingRepo) List(ctx context.Context, deviceID string, offset, limit int64) ([]models.Reading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	log := r.logs[deviceID]
	if offset >= int64(len(log)) {
		return []models.Reading{}, nil
	}

	end := int64(len(log))
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	readings := make([]models.Reading, 0, end-offset)
	for _, reading := range log[offset:end] {
		reading.DeviceID = deviceID
		readings = append(readings, reading)
	}
	return readings, nil
}

func (r *ReadingRepo) Trim(ctx context.Context, deviceID string, max int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := r.logs[deviceID]
	if max <= 0 || int64(len(log)) <= max {
		return nil
	}
	r.logs[deviceID] = append([]models.Reading(nil), log[int64(len(log))-max:]...)
	return nil
}

func (r *ReadingRepo) Devices(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	devices := make([]string, 0, len(r.logs))
	for deviceID := range r.logs {
		devices = append(devices, deviceID)
	}
	return devices, nil
}
