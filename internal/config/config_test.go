// FilePath: internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 5656 {
		t.Errorf("Server.Port = %d, want 5656", cfg.Server.Port)
	}
	if cfg.Redis.Port != 6379 {
		t.Errorf("Redis.Port = %d, want 6379", cfg.Redis.Port)
	}
	if cfg.Auth.TokenLifetime != 3600 {
		t.Errorf("Auth.TokenLifetime = %d, want 3600", cfg.Auth.TokenLifetime)
	}
	if cfg.Auth.DeviceNamespace != "27d03927-7c8f-469e-8ba1-68a376d43cc9" {
		t.Errorf("Auth.DeviceNamespace = %q, want the default namespace", cfg.Auth.DeviceNamespace)
	}
	if cfg.Auth.MasterKey != "master-key" {
		t.Errorf("Auth.MasterKey = %q, want master-key", cfg.Auth.MasterKey)
	}
	if cfg.Archive.Enabled {
		t.Error("Archive.Enabled = true, want disabled by default")
	}
	if cfg.Retention.MaxReadingsPerDevice != 0 {
		t.Errorf("Retention.MaxReadingsPerDevice = %d, want 0 (unbounded)", cfg.Retention.MaxReadingsPerDevice)
	}
}

func TestAuthConfig_Helpers(t *testing.T) {
	auth := AuthConfig{
		DeviceNamespace: "27d03927-7c8f-469e-8ba1-68a376d43cc9",
		TokenLifetime:   3600,
	}

	if got := auth.Namespace().String(); got != auth.DeviceNamespace {
		t.Errorf("Namespace() = %q, want %q", got, auth.DeviceNamespace)
	}
	if auth.Lifetime() != time.Hour {
		t.Errorf("Lifetime() = %v, want 1h", auth.Lifetime())
	}
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Auth: AuthConfig{
				DeviceNamespace: "27d03927-7c8f-469e-8ba1-68a376d43cc9",
				TokenSecret:     "secret",
				TokenLifetime:   3600,
			},
		}
	}

	if err := validateConfig(valid()); err != nil {
		t.Fatalf("validateConfig() error = %v for a valid config", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad namespace", func(c *Config) { c.Auth.DeviceNamespace = "not-a-uuid" }},
		{"empty secret", func(c *Config) { c.Auth.TokenSecret = "" }},
		{"zero lifetime", func(c *Config) { c.Auth.TokenLifetime = 0 }},
		{"archive without host", func(c *Config) { c.Archive.Enabled = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := validateConfig(cfg); err == nil {
				t.Error("validateConfig() expected error, got nil")
			}
		})
	}
}
