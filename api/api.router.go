// FilePath: api/api.router.go
package api

import (
	"net/http"

	"github.com/gaugeworks/levelhub/api/middleware"
	"github.com/gaugeworks/levelhub/api/resources"
	"github.com/gaugeworks/levelhub/internal/gaugeservice"
	"github.com/gorilla/mux"
	nuts "github.com/vaudience/go-nuts"
)

type Router struct {
	router    *mux.Router
	auth      *middleware.TokenAuthMiddleware
	resources *resources.Resources
}

// NewRouter builds the HTTP surface: /device and /health are public,
// everything else sits behind the token gate.
func NewRouter(svc *gaugeservice.GaugeService, masterKey string) *Router {
	r := &Router{
		router:    mux.NewRouter(),
		auth:      middleware.NewTokenAuthMiddleware(masterKey, svc.Sessions, svc.TokenStructurallyValid),
		resources: resources.NewResources(svc),
	}
	r.resources.SetHealthCheck(defaultHealthCheck)

	r.setupRoutes()
	return r
}

func (r *Router) setupRoutes() {
	// Public routes: registration and liveness bypass the gate entirely.
	r.router.HandleFunc("/device", r.resources.Devices.RegisterDevice).Methods(http.MethodPost)
	r.router.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		r.resources.HealthCheck(w, req)
	}).Methods(http.MethodGet)

	// Protected routes
	protected := r.router.PathPrefix("").Subrouter()
	protected.Use(r.auth.Authenticate)

	protected.HandleFunc("/store", r.resources.Readings.StoreReading).Methods(http.MethodPost)
	protected.HandleFunc("/retrieve", r.resources.Readings.RetrieveReadings).Methods(http.MethodPost)
	protected.HandleFunc("/close", r.resources.Sessions.CloseSession).Methods(http.MethodPost)
}

// SetHealthCheck replaces the default liveness handler.
func (r *Router) SetHealthCheck(h func(w http.ResponseWriter, req *http.Request)) {
	r.resources.SetHealthCheck(h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

func defaultHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok","version":"` + nuts.GetVersion() + `"}`))
}
