// FilePath: internal/models/models.session.go
package models

import "time"

// Session is the stored association of a token to the device it was
// issued for. The store-level TTL mirrors the token's encoded expiry.
type Session struct {
	Token     string    `json:"token"`
	DeviceID  string    `json:"deviceid"`
	ExpiresAt time.Time `json:"expires_at"`
}
