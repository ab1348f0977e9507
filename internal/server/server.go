// FilePath: internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gaugeworks/levelhub/api"
	"github.com/gaugeworks/levelhub/internal/config"
	"github.com/gaugeworks/levelhub/internal/database"
	"github.com/gaugeworks/levelhub/internal/gaugeservice"
	"github.com/gaugeworks/levelhub/internal/identity"
	"github.com/gaugeworks/levelhub/internal/monitoring"
	"github.com/gaugeworks/levelhub/internal/repository"
	redisrepo "github.com/gaugeworks/levelhub/internal/repository/redis"
	"github.com/gaugeworks/levelhub/internal/repository/timescale"
	"github.com/gaugeworks/levelhub/internal/token"
	"github.com/gorilla/handlers"
	nuts "github.com/vaudience/go-nuts"
)

// Server represents our HTTP server
type Server struct {
	config       *config.Config
	srv          *http.Server
	gaugeservice *gaugeservice.GaugeService
	monitoring   *monitoring.Service
	retention    context.CancelFunc
}

// New creates a new server instance
func New(cfg *config.Config) *Server {
	return &Server{
		config: cfg,
	}
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Initialize services
	s.gaugeservice = initializeGaugeService(s.config)
	s.monitoring = monitoring.NewService(monitoring.Config{
		PrometheusEndpoint: s.config.Monitoring.PrometheusEndpoint,
		LokiEndpoint:       s.config.Monitoring.LokiEndpoint,
	})

	// Set up retention event handlers
	s.setupRetentionHandlers()

	// Build router and HTTP server
	router := api.NewRouter(s.gaugeservice, s.config.Auth.MasterKey)
	s.srv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port),
		Handler:      handlers.RecoveryHandler()(router),
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	// Start the retention loop
	retentionCtx, cancel := context.WithCancel(context.Background())
	s.retention = cancel
	go s.gaugeservice.Cleanup.Run(retentionCtx)

	// Start server
	go func() {
		nuts.L.Infof("[Server] Starting server on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			nuts.L.Errorf("[Server] Error starting server: %v", err)
			os.Exit(1)
		}
	}()

	return s.waitForShutdown()
}

// waitForShutdown waits for interrupt signal and gracefully shuts down the server
func (s *Server) waitForShutdown() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	nuts.L.Infof("[Server] Shutting down server...")
	if s.retention != nil {
		s.retention()
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}

func (s *Server) setupRetentionHandlers() {
	s.gaugeservice.Cleanup.OnRetention("readings.trimmed", func(id string) {
		nuts.L.Infof("[Retention] Reading log for device %s trimmed", id)
		s.monitoring.RecordEvent("readings_trimmed", map[string]string{
			"device_id": id,
		})
	})
}

// initializeGaugeService creates and configures the gauge service
func initializeGaugeService(cfg *config.Config) *gaugeservice.GaugeService {
	// Shared Redis handle for sessions and reading logs
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		nuts.L.Fatalf("[Server] Failed to connect to Redis: %v", err)
	}

	sessions := redisrepo.NewSessionRepository(redisClient, cfg.Redis.OpTimeout)
	readings := redisrepo.NewReadingRepository(redisClient, cfg.Redis.OpTimeout)

	archive := initArchive(cfg)

	deriver := identity.NewDeriver(cfg.Auth.Namespace())
	tokens := token.NewService(cfg.Auth.TokenSecret, cfg.Auth.Lifetime())

	svc := gaugeservice.New(deriver, tokens, sessions, readings, archive, cfg.Retention)
	if err := svc.Validate(); err != nil {
		nuts.L.Fatalf("[Server] Invalid service wiring: %v", err)
	}
	return svc
}

func initArchive(cfg *config.Config) repository.ReadingArchive {
	if !cfg.Archive.Enabled {
		return nil
	}

	db, err := database.NewArchiveDB(cfg.Archive.Postgres)
	if err != nil {
		nuts.L.Fatalf("[Server] Failed to connect to reading archive: %v", err)
	}
	archive, err := timescale.NewReadingArchive(db)
	if err != nil {
		nuts.L.Fatalf("[Server] Failed to initialize reading archive: %v", err)
	}
	return archive
}
