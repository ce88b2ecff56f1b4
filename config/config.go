package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Fetch   FetchConfig
	Cleaner CleanerConfig
	Metrics MetricsConfig
	Log     LogConfig
	MCP     MCPConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // default: 8080
	Mode string // "debug", "release", "test"; default: "release"

	// ShutdownTimeout bounds how long in-flight requests may drain.
	ShutdownTimeout time.Duration // default: 5s
}

// FetchConfig controls the outbound request to the article URL.
type FetchConfig struct {
	// Timeout bounds the whole fetch: connect, headers and body.
	Timeout time.Duration // default: 20s

	// MaxBodyBytes caps how much of the response body is read.
	MaxBodyBytes int64 // default: 10 MiB

	// MaxRedirects is the number of redirects followed before giving up.
	MaxRedirects int // default: 10

	// Proxy is an optional http(s) proxy URL for outbound requests.
	Proxy string

	// TLSFingerprint dials HTTPS with a Chrome-like ClientHello.
	TLSFingerprint bool // default: false
}

// CleanerConfig controls post-processing of the extracted article.
type CleanerConfig struct {
	// StripSelectors are CSS selectors removed from the extracted content.
	// default: ["script", "style", "noscript", "iframe", "form"]
	StripSelectors []string
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool // default: true
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "json"
}

// MCPConfig controls the MCP server binary.
type MCPConfig struct {
	// Format is the default tool output format: "markdown" or "html".
	Format string // default: "markdown"
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            envOr("READABLE_HOST", "0.0.0.0"),
			Port:            envIntOr("READABLE_PORT", 8080),
			Mode:            envOr("READABLE_MODE", "release"),
			ShutdownTimeout: envDurationOr("READABLE_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Fetch: FetchConfig{
			Timeout:        envDurationOr("READABLE_FETCH_TIMEOUT", 20*time.Second),
			MaxBodyBytes:   envInt64Or("READABLE_FETCH_MAX_BODY", 10<<20),
			MaxRedirects:   envIntOr("READABLE_FETCH_MAX_REDIRECTS", 10),
			Proxy:          os.Getenv("READABLE_FETCH_PROXY"),
			TLSFingerprint: envBoolOr("READABLE_TLS_FINGERPRINT", false),
		},
		Cleaner: CleanerConfig{
			StripSelectors: envSliceOr("READABLE_STRIP_SELECTORS", []string{
				"script", "style", "noscript", "iframe", "form",
			}),
		},
		Metrics: MetricsConfig{
			Enabled: envBoolOr("READABLE_METRICS_ENABLED", true),
		},
		Log: LogConfig{
			Level:  envOr("READABLE_LOG_LEVEL", "info"),
			Format: envOr("READABLE_LOG_FORMAT", "json"),
		},
		MCP: MCPConfig{
			Format: envOr("READABLE_MCP_FORMAT", "markdown"),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envInt64Or(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envSliceOr(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return fallback
}
