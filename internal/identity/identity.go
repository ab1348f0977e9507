// FilePath: internal/identity/identity.go

// Package identity derives stable device identifiers from hardware
// serial numbers. The derivation is a version-5 UUID over a fixed
// namespace, so the same serial always maps to the same id on every
// instance and across restarts.
package identity

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Deriver maps device serials to deterministic device ids.
type Deriver struct {
	namespace uuid.UUID
}

// NewDeriver creates a Deriver scoped to the given namespace UUID.
func NewDeriver(namespace uuid.UUID) *Deriver {
	return &Deriver{namespace: namespace}
}

// DeviceID returns the canonical UUIDv5 string for the serial.
// An empty or blank serial is a contract violation, not a runtime fault.
func (d *Deriver) DeviceID(serial string) (string, error) {
	if strings.TrimSpace(serial) == "" {
		return "", fmt.Errorf("device serial must not be empty")
	}
	// NewSHA1 over a namespace is exactly the RFC 4122 v5 construction.
	return uuid.NewSHA1(d.namespace, []byte(serial)).String(), nil
}
