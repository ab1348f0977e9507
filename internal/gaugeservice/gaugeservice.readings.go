// FilePath: internal/gaugeservice/gaugeservice.readings.go
package gaugeservice

import (
	"context"
	"fmt"

	"github.com/gaugeworks/levelhub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// AppendReading appends one reading to the device's log. Bearer-only
// authorization: the gate has already checked the caller holds a live
// token, but no ownership link between that token and the target device
// id is enforced.
func (s *GaugeService) AppendReading(ctx context.Context, reading models.Reading) error {
	reading.ID = models.NewReadingID()

	if err := s.Readings.Append(ctx, reading.DeviceID, reading); err != nil {
		return fmt.Errorf("failed to append reading: %w", err)
	}

	if s.Archive != nil {
		// Archival is best-effort; the Redis log already holds the data.
		if err := s.Archive.Insert(ctx, reading); err != nil {
			nuts.L.Warnf("[GaugeService] Failed to archive reading %s for device %s: %v",
				reading.ID, reading.DeviceID, err)
		}
	}
	return nil
}

// ListReadings returns the device's readings in append order, each
// tagged with the device id. Unknown devices yield an empty slice.
// limit 0 returns the full log from offset on.
func (s *GaugeService) ListReadings(ctx context.Context, deviceID string, offset, limit int64) ([]models.Reading, error) {
	readings, err := s.Readings.List(ctx, deviceID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list readings: %w", err)
	}
	return readings, nil
}
