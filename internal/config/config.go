// FilePath: internal/config/config.go
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// Config holds all configuration for the service
type Config struct {
	Server     ServerConfig
	Redis      RedisConfig
	Archive    ArchiveConfig
	Auth       AuthConfig
	Retention  RetentionConfig
	Monitoring MonitoringConfig
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Host            string        `mapstructure:"host"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type RedisConfig struct {
	Host      string        `mapstructure:"host"`
	Port      int           `mapstructure:"port"`
	Password  string        `mapstructure:"password"`
	DB        int           `mapstructure:"db"`
	OpTimeout time.Duration `mapstructure:"op_timeout"`
}

// ArchiveConfig controls the optional TimescaleDB reading archive.
type ArchiveConfig struct {
	Enabled  bool           `mapstructure:"enabled"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type AuthConfig struct {
	// DeviceNamespace is the UUID namespace for device-id derivation.
	DeviceNamespace string `mapstructure:"device_namespace"`
	TokenSecret     string `mapstructure:"token_secret"`
	// TokenLifetime is the session token lifetime in seconds.
	TokenLifetime int `mapstructure:"token_lifetime"`
	// MasterKey is the break-glass credential that bypasses session checks.
	MasterKey string `mapstructure:"master_key"`
}

type RetentionConfig struct {
	// MaxReadingsPerDevice caps each device log; 0 keeps logs unbounded.
	MaxReadingsPerDevice int64         `mapstructure:"max_readings_per_device"`
	Interval             time.Duration `mapstructure:"interval"`
}

type MonitoringConfig struct {
	LogLevel           string `mapstructure:"log_level"`
	PrometheusEndpoint string `mapstructure:"prometheus_endpoint"`
	LokiEndpoint       string `mapstructure:"loki_endpoint"`
}

// Load initializes configuration from environment variables and config file
func Load() (*Config, error) {
	viper.SetEnvPrefix("LEVELHUB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Load config file if exists
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.port", 5656)
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.read_timeout", "15s")
	viper.SetDefault("server.write_timeout", "15s")
	viper.SetDefault("server.shutdown_timeout", "30s")

	// Redis defaults
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.op_timeout", "5s")

	// Archive defaults
	viper.SetDefault("archive.enabled", false)
	viper.SetDefault("archive.postgres.sslmode", "disable")

	// Auth defaults
	viper.SetDefault("auth.device_namespace", "27d03927-7c8f-469e-8ba1-68a376d43cc9")
	viper.SetDefault("auth.token_secret", "skjdhfjk")
	viper.SetDefault("auth.token_lifetime", 3600)
	viper.SetDefault("auth.master_key", "master-key")

	// Retention defaults; 0 keeps the log unbounded
	viper.SetDefault("retention.max_readings_per_device", 0)
	viper.SetDefault("retention.interval", "10m")

	// Monitoring defaults
	viper.SetDefault("monitoring.log_level", "info")
	viper.SetDefault("monitoring.prometheus_endpoint", "http://localhost:9090")
	viper.SetDefault("monitoring.loki_endpoint", "http://localhost:3100")
}

func validateConfig(config *Config) error {
	if _, err := uuid.Parse(config.Auth.DeviceNamespace); err != nil {
		return fmt.Errorf("auth.device_namespace is not a valid UUID: %w", err)
	}
	if config.Auth.TokenSecret == "" {
		return fmt.Errorf("auth.token_secret is required")
	}
	if config.Auth.TokenLifetime <= 0 {
		return fmt.Errorf("auth.token_lifetime must be positive")
	}
	if config.Archive.Enabled && config.Archive.Postgres.Host == "" {
		return fmt.Errorf("archive.postgres.host is required when archive is enabled")
	}
	return nil
}

// Namespace returns the parsed device-id namespace UUID.
// Load has already validated the value, so this never fails after startup.
func (c *AuthConfig) Namespace() uuid.UUID {
	return uuid.MustParse(c.DeviceNamespace)
}

// Lifetime returns the token lifetime as a duration.
func (c *AuthConfig) Lifetime() time.Duration {
	return time.Duration(c.TokenLifetime) * time.Second
}
