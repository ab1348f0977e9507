// FilePath: internal/models/models.device.go
package models

// Device describes a registered level-gauge device. The ID is derived
// deterministically from the serial, so devices are never stored as rows;
// the struct exists for request/response shaping.
type Device struct {
	ID     string `json:"deviceid"`
	Name   string `json:"name"`
	Serial string `json:"serial"`
}

// Registration is the result of a successful device registration.
type Registration struct {
	DeviceID string `json:"deviceid"`
	Token    string `json:"token"`
	// TTL is the session token lifetime in seconds.
	TTL int `json:"ttl"`
}
