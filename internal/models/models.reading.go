// FilePath: internal/models/models.reading.go
package models

import "github.com/segmentio/ksuid"

// Reading represents a single level-gauge sample. Time is the
// caller-supplied epoch timestamp; appends keep arrival order, not
// timestamp order.
type Reading struct {
	ID       string  `json:"id,omitempty" db:"id"`
	DeviceID string  `json:"deviceid,omitempty" db:"device_id"`
	Time     int64   `json:"time" db:"time"`
	Event    int     `json:"event" db:"event"`
	Level    float64 `json:"level" db:"level"`
}

// NewReadingID returns a time-sortable record id for a stored reading.
func NewReadingID() string {
	return "rd_" + ksuid.New().String()
}
