// FilePath: internal/gaugeservice/gaugeservice.device.go
package gaugeservice

import (
	"context"
	"fmt"

	"github.com/gaugeworks/levelhub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// RegisterDevice derives the device id from the serial, issues a session
// token and stores the session under the token lifetime. The three steps
// are strictly sequential; there is no cross-step transaction, so a
// failed session write leaves no stored state behind (the issued token
// is simply never persisted).
func (s *GaugeService) RegisterDevice(ctx context.Context, name, serial string) (*models.Registration, error) {
	deviceID, err := s.deriver.DeviceID(serial)
	if err != nil {
		return nil, fmt.Errorf("failed to derive device id: %w", err)
	}

	tok, err := s.tokens.Issue(deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	if err := s.Sessions.Put(ctx, tok, deviceID, s.tokens.Lifetime()); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	nuts.L.Infof("[GaugeService] Registered device %s (%s)", deviceID, name)
	return &models.Registration{
		DeviceID: deviceID,
		Token:    tok,
		TTL:      s.TokenTTL(),
	}, nil
}
