// Package config provides environment-driven configuration for the phylo server.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

// Secret wraps a sensitive string to prevent accidental logging or marshalling.
type Secret string

// String implements fmt.Stringer, returning a redacted placeholder.
func (s Secret) String() string { return "[REDACTED]" }

// GoString implements fmt.GoStringer, returning a redacted placeholder.
func (s Secret) GoString() string { return "[REDACTED]" }

// MarshalText implements encoding.TextMarshaler, returning a redacted placeholder.
func (s Secret) MarshalText() ([]byte, error) { return []byte("[REDACTED]"), nil }

// Value returns the underlying secret string.
func (s Secret) Value() string { return string(s) }

// Config holds all application configuration values.
type Config struct {
	DatabaseURL    Secret
	Port           string
	MetricsPort    string
	ListenHost     string
	CORSOrigins    []string
	LogLevel       string
	LogFormat      string
	DBMaxConns     int32
	RateLimitRPS   float64
	RateLimitBurst int
	RelationFanout int
	AutoMigrate    bool
	EnableHSTS     bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: Secret(envOrDefault("DATABASE_URL", "")),
		Port:        envOrDefault("PORT", "3040"),
		MetricsPort: envOrDefault("METRICS_PORT", "9092"),
		ListenHost:  envOrDefault("LISTEN_HOST", "127.0.0.1"),
		LogLevel:    envOrDefault("LOG_LEVEL", "info"),
		LogFormat:   envOrDefault("LOG_FORMAT", "json"),
		AutoMigrate: envOrDefault("AUTO_MIGRATE", "true") == "true",
		EnableHSTS:  envOrDefault("ENABLE_HSTS", "false") == "true",
	}

	maxConns, err := strconv.Atoi(envOrDefault("DB_MAX_CONNS", "10"))
	if err != nil || maxConns < 2 || maxConns > 200 {
		return nil, fmt.Errorf("DB_MAX_CONNS must be an integer between 2 and 200")
	}
	cfg.DBMaxConns = int32(maxConns) //nolint:gosec // bounded above.

	rps, err := strconv.ParseFloat(envOrDefault("RATE_LIMIT_RPS", "50"), 64)
	if err != nil || rps <= 0 || rps > 10_000 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS must be a number between 0 and 10000")
	}
	cfg.RateLimitRPS = rps

	burst, err := strconv.Atoi(envOrDefault("RATE_LIMIT_BURST", "100"))
	if err != nil || burst < 1 || burst > 100_000 {
		return nil, fmt.Errorf("RATE_LIMIT_BURST must be an integer between 1 and 100000")
	}
	cfg.RateLimitBurst = burst

	fanout, err := strconv.Atoi(envOrDefault("RELATION_FANOUT", "8"))
	if err != nil || fanout < 1 || fanout > 64 {
		return nil, fmt.Errorf("RELATION_FANOUT must be an integer between 1 and 64")
	}
	cfg.RelationFanout = fanout

	origins := envOrDefault("CORS_ORIGINS", "http://localhost:3002")
	cfg.CORSOrigins = strings.Split(origins, ",")

	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Addr returns the API listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.ListenHost, c.Port)
}

// MetricsAddr returns the Prometheus listen address.
func (c *Config) MetricsAddr() string {
	return net.JoinHostPort(c.ListenHost, c.MetricsPort)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
