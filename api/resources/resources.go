// FilePath: api/resources/resources.go
package resources

import (
	"net/http"

	"github.com/gaugeworks/levelhub/internal/gaugeservice"
)

// Resources holds all HTTP resource handlers
type Resources struct {
	Devices     *DeviceHandlers
	Readings    *ReadingHandlers
	Sessions    *SessionHandlers
	HealthCheck func(w http.ResponseWriter, r *http.Request)
}

// NewResources creates a new Resources instance
func NewResources(svc *gaugeservice.GaugeService) *Resources {
	return &Resources{
		Devices:  &DeviceHandlers{gaugeservice: svc},
		Readings: &ReadingHandlers{gaugeservice: svc},
		Sessions: &SessionHandlers{gaugeservice: svc},
	}
}

// SetHealthCheck sets the health check handler
func (r *Resources) SetHealthCheck(h func(w http.ResponseWriter, r *http.Request)) {
	r.HealthCheck = h
}
