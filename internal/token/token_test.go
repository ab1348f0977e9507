// FilePath: internal/token/token_test.go
package token

import (
	"strings"
	"testing"
	"time"
)

func TestService_IssueAndValid(t *testing.T) {
	svc := NewService("skjdhfjk", time.Hour)

	tok, err := svc.Issue("2bd062b9-3b69-50cc-9ddf-166fbca91f37")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if tok == "" {
		t.Fatal("Issue() returned an empty token")
	}
	if !svc.Valid(tok) {
		t.Error("Valid() = false for a freshly issued token")
	}
}

func TestService_Subject(t *testing.T) {
	svc := NewService("skjdhfjk", time.Hour)

	tok, err := svc.Issue("device-123")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	sub, err := svc.Subject(tok)
	if err != nil {
		t.Fatalf("Subject() error = %v", err)
	}
	if sub != "device-123" {
		t.Errorf("Subject() = %q, want %q", sub, "device-123")
	}
}

func TestService_Issue_EmptyDeviceID(t *testing.T) {
	svc := NewService("skjdhfjk", time.Hour)

	if _, err := svc.Issue(""); err == nil {
		t.Error("Issue(\"\") expected error, got nil")
	}
}

func TestService_Valid_FailsClosed(t *testing.T) {
	svc := NewService("skjdhfjk", time.Hour)

	tok, err := svc.Issue("device-123")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt"},
		{"master credential", "master-key"},
		{"truncated", tok[:len(tok)-10]},
		{"tampered signature", tok[:len(tok)-4] + "AAAA"},
		{"tampered payload", tamperPayload(tok)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if svc.Valid(tt.token) {
				t.Errorf("Valid(%q) = true, want false", tt.token)
			}
		})
	}
}

func TestService_Valid_WrongSecret(t *testing.T) {
	issuer := NewService("skjdhfjk", time.Hour)
	verifier := NewService("another-secret", time.Hour)

	tok, err := issuer.Issue("device-123")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if verifier.Valid(tok) {
		t.Error("Valid() = true for a token signed with a different secret")
	}
}

func TestService_Valid_Expired(t *testing.T) {
	svc := NewService("skjdhfjk", time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tok, err := svc.Issue("device-123")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	svc.now = time.Now
	if svc.Valid(tok) {
		t.Error("Valid() = true for a token past its expiry")
	}
}

// tamperPayload flips a character inside the claims segment so the
// signature no longer matches.
func tamperPayload(tok string) string {
	parts := strings.Split(tok, ".")
	if len(parts) != 3 || len(parts[1]) == 0 {
		return tok
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	return parts[0] + "." + string(payload) + "." + parts[2]
}
