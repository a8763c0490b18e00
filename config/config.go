package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	Auth      AuthConfig      `json:"auth"`
	HTTP      HTTPConfig      `json:"http"`
	Aggregate AggregateConfig `json:"aggregate"`
	RateLimit RateLimitConfig `json:"rate_limit"`
	Logging   LoggingConfig   `json:"logging"`
	Telemetry TelemetryConfig `json:"telemetry"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"60s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"60s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type DatabaseConfig struct {
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"25"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"30s"`
}

type AuthConfig struct {
	TokenSecret     string `json:"token_secret" env:"AUTH_TOKEN_SECRET"`
	TokenSecretFile string `json:"-" env:"AUTH_TOKEN_SECRET_FILE"`
	TokenIssuer     string `json:"token_issuer" env:"AUTH_TOKEN_ISSUER" default:"feedhub-auth"`
	TokenAudience   string `json:"token_audience" env:"AUTH_TOKEN_AUDIENCE" default:"feedhub"`
}

type HTTPConfig struct {
	ClientTimeout       time.Duration `json:"client_timeout" env:"HTTP_CLIENT_TIMEOUT" default:"30s"`
	DialTimeout         time.Duration `json:"dial_timeout" env:"HTTP_DIAL_TIMEOUT" default:"10s"`
	TLSHandshakeTimeout time.Duration `json:"tls_handshake_timeout" env:"HTTP_TLS_HANDSHAKE_TIMEOUT" default:"10s"`
	IdleConnTimeout     time.Duration `json:"idle_conn_timeout" env:"HTTP_IDLE_CONN_TIMEOUT" default:"90s"`
}

type AggregateConfig struct {
	DefaultPageSize int           `json:"default_page_size" env:"AGGREGATE_DEFAULT_PAGE_SIZE" default:"30"`
	MaxPageSize     int           `json:"max_page_size" env:"AGGREGATE_MAX_PAGE_SIZE" default:"100"`
	MaxConcurrency  int           `json:"max_concurrency" env:"AGGREGATE_MAX_CONCURRENCY" default:"8"`
	FeedTimeout     time.Duration `json:"feed_timeout" env:"AGGREGATE_FEED_TIMEOUT" default:"10s"`
}

type RateLimitConfig struct {
	ExternalAPIInterval time.Duration `json:"external_api_interval" env:"RATE_LIMIT_EXTERNAL_API_INTERVAL" default:"1s"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

type TelemetryConfig struct {
	Enabled      bool   `json:"enabled" env:"OTEL_ENABLED" default:"false"`
	OTLPEndpoint string `json:"otlp_endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"http://localhost:4318"`
	ServiceName  string `json:"service_name" env:"OTEL_SERVICE_NAME" default:"feedhub"`
}

// NewConfig creates a new configuration by loading from environment variables
// with fallback to default values
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	// Load token secret from file if configured (Docker Secrets support)
	if config.Auth.TokenSecretFile != "" {
		content, err := os.ReadFile(config.Auth.TokenSecretFile)
		if err == nil {
			config.Auth.TokenSecret = strings.TrimSpace(string(content))
		}
		// If file read fails, the env var value (if any) remains in effect
	}

	return config, nil
}

// Load is an alias for NewConfig
func Load() (*Config, error) {
	return NewConfig()
}
