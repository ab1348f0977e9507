// FilePath: internal/cleanup/cleanup.go
package cleanup

import (
	"context"
	"fmt"
	"time"

	"github.com/gaugeworks/levelhub/internal/config"
	"github.com/gaugeworks/levelhub/internal/repository"
	nuts "github.com/vaudience/go-nuts"
)

// RetentionService enforces the per-device reading cap. With a zero cap
// the service is inert and logs grow unboundedly, which matches the
// reference behavior.
type RetentionService struct {
	readings repository.ReadingRepository
	cfg      config.RetentionConfig
	events   *nuts.EventEmitter
}

// New creates a new RetentionService
func New(readings repository.ReadingRepository, cfg config.RetentionConfig) *RetentionService {
	return &RetentionService{
		readings: readings,
		cfg:      cfg,
		events:   nuts.NewEventEmitter(),
	}
}

// Enabled reports whether a retention cap is configured.
func (s *RetentionService) Enabled() bool {
	return s.cfg.MaxReadingsPerDevice > 0
}

// Run enforces retention on the configured interval until the context
// is canceled. It returns immediately when no cap is configured.
func (s *RetentionService) Run(ctx context.Context) {
	if !s.Enabled() {
		nuts.L.Infof("[Retention] No reading cap configured, logs are unbounded")
		return
	}

	interval := s.cfg.Interval
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	nuts.L.Infof("[Retention] Trimming device logs to %d entries every %s",
		s.cfg.MaxReadingsPerDevice, interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Enforce(ctx); err != nil {
				nuts.L.Errorf("[Retention] Enforcement pass failed: %v", err)
			}
		}
	}
}

// Enforce runs a single retention pass over all device logs.
func (s *RetentionService) Enforce(ctx context.Context) error {
	if !s.Enabled() {
		return nil
	}

	devices, err := s.readings.Devices(ctx)
	if err != nil {
		return fmt.Errorf("failed to list device logs: %w", err)
	}

	for _, deviceID := range devices {
		// Probe one entry past the cap; an empty page means the log is
		// within bounds and a trim would be a no-op.
		overflow, err := s.readings.List(ctx, deviceID, s.cfg.MaxReadingsPerDevice, 1)
		if err != nil {
			nuts.L.Errorf("[Retention] Failed to inspect log for device %s: %v", deviceID, err)
			continue
		}
		if len(overflow) == 0 {
			continue
		}

		if err := s.readings.Trim(ctx, deviceID, s.cfg.MaxReadingsPerDevice); err != nil {
			nuts.L.Errorf("[Retention] Failed to trim log for device %s: %v", deviceID, err)
			continue
		}
		if err := s.events.Emit("readings.trimmed", deviceID); err != nil {
			nuts.L.Errorf("[Retention] Failed to emit trim event for device %s: %v", deviceID, err)
		}
	}
	return nil
}

// OnRetention registers a callback for retention events. The handler is
// registered as-is; the emitter reflect-calls it with the device id.
func (s *RetentionService) OnRetention(event string, handler func(id string)) {
	if _, err := s.events.On(event, "retention_handler", handler); err != nil {
		nuts.L.Errorf("[Retention] Failed to register handler for %s: %v", event, err)
	}
}
