package api

import (
	"os"
	"strings"
	"time"
)

// Config holds the HTTP server settings.
type Config struct {
	Addr            string
	CORSOrigins     []string // "*" allows every origin; empty disables CORS
	ShutdownTimeout time.Duration
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
	}
}

// ConfigFromEnv reads IRRD_ADDR, IRRD_CORS_ORIGINS (comma separated) and
// IRRD_SHUTDOWN_TIMEOUT on top of DefaultConfig. Unparsable values are ignored.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if addr := os.Getenv("IRRD_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if origins := os.Getenv("IRRD_CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = splitList(origins)
	}
	if timeout := os.Getenv("IRRD_SHUTDOWN_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			cfg.ShutdownTimeout = d
		}
	}
	return cfg
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
