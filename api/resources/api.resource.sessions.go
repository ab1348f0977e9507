// FilePath: api/resources/api.resource.sessions.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/gaugeworks/levelhub/internal/errors"
	"github.com/gaugeworks/levelhub/internal/gaugeservice"
	nuts "github.com/vaudience/go-nuts"
)

// SessionHandlers encapsulates the session-related HTTP handlers
type SessionHandlers struct {
	gaugeservice *gaugeservice.GaugeService
}

type closeSessionRequest struct {
	Token string `json:"token"`
}

// @Summary Close a session
// @Description Invalidate a session token; subsequent requests with it are rejected
// @Tags sessions
// @Accept json
// @Produce json
// @Param session body closeSessionRequest true "Token to invalidate"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.APIError
// @Failure 403 {object} errors.APIError
// @Failure 500 {object} errors.APIError
// @Router /close [post]
// @Security ApiTokenAuth
func (h *SessionHandlers) CloseSession(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var req closeSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}
	if req.Token == "" {
		respondWithError(w, errors.NewValidationError("token is required", nil).WithRequestID(requestID))
		return
	}

	if err := h.gaugeservice.CloseSession(r.Context(), req.Token); err != nil {
		respondWithError(w, errors.NewInternalError("Internal error", err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"result": "ok"})
}
