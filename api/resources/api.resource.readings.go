// FilePath: api/resources/api.resource.readings.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/gaugeworks/levelhub/api/middleware"
	"github.com/gaugeworks/levelhub/internal/errors"
	"github.com/gaugeworks/levelhub/internal/gaugeservice"
	"github.com/gaugeworks/levelhub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// ReadingHandlers encapsulates the reading-related HTTP handlers
type ReadingHandlers struct {
	gaugeservice *gaugeservice.GaugeService
}

type storeReadingRequest struct {
	DeviceID string   `json:"deviceid"`
	Time     *int64   `json:"time"`
	Event    *int     `json:"event"`
	Level    *float64 `json:"level"`
}

type retrieveReadingsRequest struct {
	DeviceID string `json:"deviceid"`
	Offset   int64  `json:"offset"`
	Limit    int64  `json:"limit"`
}

type retrieveReadingsResponse struct {
	Data []models.Reading `json:"data"`
}

// @Summary Store a reading
// @Description Append one level-gauge reading to the device's log
// @Tags readings
// @Accept json
// @Produce json
// @Param reading body storeReadingRequest true "Reading to append"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.APIError
// @Failure 403 {object} errors.APIError
// @Failure 500 {object} errors.APIError
// @Router /store [post]
// @Security ApiTokenAuth
func (h *ReadingHandlers) StoreReading(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var req storeReadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}
	if req.DeviceID == "" {
		respondWithError(w, errors.NewValidationError("deviceid is required", nil).WithRequestID(requestID))
		return
	}
	if req.Time == nil || req.Event == nil || req.Level == nil {
		respondWithError(w, errors.NewValidationError("time, event and level are required", nil).WithRequestID(requestID))
		return
	}

	reading := models.Reading{
		DeviceID: req.DeviceID,
		Time:     *req.Time,
		Event:    *req.Event,
		Level:    *req.Level,
	}

	// Bearer-only authorization: the gate verified the token, the target
	// deviceid is taken from the body as-is.
	if bearer := middleware.SessionDeviceID(r.Context()); bearer != "" && bearer != req.DeviceID {
		nuts.L.Debugf("[ReadingHandler] Token for device %s writing to device %s", bearer, req.DeviceID)
	}

	if err := h.gaugeservice.AppendReading(r.Context(), reading); err != nil {
		respondWithError(w, errors.NewInternalError("Internal error", err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"result": "ok"})
}

// @Summary Retrieve readings
// @Description Return the device's readings in append order, optionally paged
// @Tags readings
// @Accept json
// @Produce json
// @Param query body retrieveReadingsRequest true "Device id with optional offset/limit"
// @Success 200 {object} retrieveReadingsResponse
// @Failure 400 {object} errors.APIError
// @Failure 403 {object} errors.APIError
// @Failure 500 {object} errors.APIError
// @Router /retrieve [post]
// @Security ApiTokenAuth
func (h *ReadingHandlers) RetrieveReadings(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var req retrieveReadingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}
	if req.DeviceID == "" {
		respondWithError(w, errors.NewValidationError("deviceid is required", nil).WithRequestID(requestID))
		return
	}
	if req.Offset < 0 || req.Limit < 0 {
		respondWithError(w, errors.NewValidationError("offset and limit must not be negative", nil).WithRequestID(requestID))
		return
	}

	readings, err := h.gaugeservice.ListReadings(r.Context(), req.DeviceID, req.Offset, req.Limit)
	if err != nil {
		respondWithError(w, errors.NewInternalError("Internal error", err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, retrieveReadingsResponse{Data: readings})
}
