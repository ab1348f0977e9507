// FilePath: internal/gaugeservice/gaugeservice.go
package gaugeservice

import (
	"github.com/gaugeworks/levelhub/internal/cleanup"
	"github.com/gaugeworks/levelhub/internal/config"
	"github.com/gaugeworks/levelhub/internal/errors"
	"github.com/gaugeworks/levelhub/internal/identity"
	"github.com/gaugeworks/levelhub/internal/repository"
	"github.com/gaugeworks/levelhub/internal/token"
)

// GaugeService contains all repositories and service-wide dependencies
type GaugeService struct {
	Sessions repository.SessionRepository
	Readings repository.ReadingRepository
	// Archive is the optional TimescaleDB archive; nil disables archival.
	Archive repository.ReadingArchive
	Cleanup *cleanup.RetentionService

	deriver *identity.Deriver
	tokens  *token.Service
}

// New creates a new GaugeService instance
func New(
	deriver *identity.Deriver,
	tokens *token.Service,
	sessions repository.SessionRepository,
	readings repository.ReadingRepository,
	archive repository.ReadingArchive,
	retention config.RetentionConfig,
) *GaugeService {
	svc := &GaugeService{
		Sessions: sessions,
		Readings: readings,
		Archive:  archive,
		deriver:  deriver,
		tokens:   tokens,
	}
	svc.Cleanup = cleanup.New(readings, retention)
	return svc
}

// TokenTTL returns the session token lifetime in seconds.
func (s *GaugeService) TokenTTL() int {
	return int(s.tokens.Lifetime().Seconds())
}

// TokenStructurallyValid reports whether a presented token parses and
// carries a good signature; session-store membership remains the
// authoritative liveness check.
func (s *GaugeService) TokenStructurallyValid(tok string) bool {
	return s.tokens.Valid(tok)
}

// Validate checks if all required dependencies are initialized
func (s *GaugeService) Validate() error {
	if s.deriver == nil {
		return ErrMissingDependency("deriver")
	}
	if s.tokens == nil {
		return ErrMissingDependency("tokens")
	}
	if s.Sessions == nil {
		return ErrMissingDependency("sessions")
	}
	if s.Readings == nil {
		return ErrMissingDependency("readings")
	}
	return nil
}

func ErrMissingDependency(name string) error {
	return errors.NewInternalError("missing dependency: "+name, nil)
}
