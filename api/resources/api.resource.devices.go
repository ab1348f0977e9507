// FilePath: api/resources/api.resource.devices.go
package resources

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gaugeworks/levelhub/internal/errors"
	"github.com/gaugeworks/levelhub/internal/gaugeservice"
	nuts "github.com/vaudience/go-nuts"
)

// DeviceHandlers encapsulates the device-related HTTP handlers
type DeviceHandlers struct {
	gaugeservice *gaugeservice.GaugeService
}

type registerDeviceRequest struct {
	Device struct {
		Name   string `json:"name"`
		Serial string `json:"serial"`
	} `json:"device"`
}

// @Summary Register a device
// @Description Derive the device id from the serial, open a session and return its token
// @Tags devices
// @Accept json
// @Produce json
// @Param device body registerDeviceRequest true "Device name and serial"
// @Success 200 {object} models.Registration
// @Failure 400 {object} errors.APIError
// @Failure 500 {object} errors.APIError
// @Router /device [post]
func (h *DeviceHandlers) RegisterDevice(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var req registerDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}
	if req.Device.Name == "" {
		respondWithError(w, errors.NewValidationError("device.name is required", nil).WithRequestID(requestID))
		return
	}
	// A blank serial has no derivable identity; reject it here instead of
	// letting the derivation fail as a 500.
	if strings.TrimSpace(req.Device.Serial) == "" {
		respondWithError(w, errors.NewValidationError("device.serial is required", nil).WithRequestID(requestID))
		return
	}

	registration, err := h.gaugeservice.RegisterDevice(r.Context(), req.Device.Name, req.Device.Serial)
	if err != nil {
		respondWithError(w, errors.NewInternalError("Internal error", err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, registration)
}

// Shared response helpers for all resource handlers.

func respondWithError(w http.ResponseWriter, err *errors.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(err)
	nuts.L.Errorf("[API] %s", err.Error())
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
