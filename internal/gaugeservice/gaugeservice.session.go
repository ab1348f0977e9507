// FilePath: internal/gaugeservice/gaugeservice.session.go
package gaugeservice

import (
	"context"
	"fmt"

	nuts "github.com/vaudience/go-nuts"
)

// CloseSession invalidates a session token. Closing an unknown or
// already-expired token succeeds; the caller only cares that the token
// is dead afterwards.
func (s *GaugeService) CloseSession(ctx context.Context, token string) error {
	if err := s.Sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	nuts.L.Debugf("[GaugeService] Session closed")
	return nil
}
