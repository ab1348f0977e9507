// FilePath: internal/token/token.go

// Package token issues and verifies the signed session tokens handed to
// devices at registration time. Tokens are HS256 JWTs carrying the device
// id as subject and an absolute expiry. Verification here is purely
// structural; whether a token is still live is the session store's call.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Service signs and verifies session tokens with a shared secret.
type Service struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

// NewService creates a token service. lifetime is the validity window
// encoded into every issued token.
func NewService(secret string, lifetime time.Duration) *Service {
	return &Service{
		secret:   []byte(secret),
		lifetime: lifetime,
		now:      time.Now,
	}
}

// Issue produces a signed token for the given device id. The expiry is
// now+lifetime; persistence of the token is the caller's job.
func (s *Service) Issue(deviceID string) (string, error) {
	if deviceID == "" {
		return "", fmt.Errorf("device id must not be empty")
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   deviceID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Valid reports whether the token parses, carries a good signature and
// has not passed its encoded expiry. It never returns an error: any
// parse or signature failure simply fails closed.
func (s *Service) Valid(tokenString string) bool {
	_, err := s.parse(tokenString)
	return err == nil
}

// Subject returns the device id a structurally valid token was issued
// for, or an error if the token does not verify.
func (s *Service) Subject(tokenString string) (string, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return claims.Subject, nil
}

// Lifetime returns the configured validity window.
func (s *Service) Lifetime() time.Duration {
	return s.lifetime
}

func (s *Service) parse(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
