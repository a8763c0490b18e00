package config

import (
	"os"
	"testing"
	"time"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Aggregate.DefaultPageSize != 30 {
		t.Errorf("Aggregate.DefaultPageSize = %d, want 30", cfg.Aggregate.DefaultPageSize)
	}
	if cfg.Aggregate.MaxConcurrency != 8 {
		t.Errorf("Aggregate.MaxConcurrency = %d, want 8", cfg.Aggregate.MaxConcurrency)
	}
	if cfg.Aggregate.FeedTimeout != 10*time.Second {
		t.Errorf("Aggregate.FeedTimeout = %v, want 10s", cfg.Aggregate.FeedTimeout)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Auth.TokenIssuer != "feedhub-auth" {
		t.Errorf("Auth.TokenIssuer = %q, want feedhub-auth", cfg.Auth.TokenIssuer)
	}
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("AGGREGATE_FEED_TIMEOUT", "15s")
	t.Setenv("AGGREGATE_MAX_CONCURRENCY", "4")
	t.Setenv("OTEL_ENABLED", "true")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Aggregate.FeedTimeout != 15*time.Second {
		t.Errorf("Aggregate.FeedTimeout = %v, want 15s", cfg.Aggregate.FeedTimeout)
	}
	if cfg.Aggregate.MaxConcurrency != 4 {
		t.Errorf("Aggregate.MaxConcurrency = %d, want 4", cfg.Aggregate.MaxConcurrency)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true")
	}
}

func TestNewConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"invalid port", "SERVER_PORT", "0"},
		{"non-numeric port", "SERVER_PORT", "abc"},
		{"invalid duration", "AGGREGATE_FEED_TIMEOUT", "soon"},
		{"zero page size", "AGGREGATE_DEFAULT_PAGE_SIZE", "0"},
		{"zero concurrency", "AGGREGATE_MAX_CONCURRENCY", "0"},
		{"bad log level", "LOG_LEVEL", "verbose"},
		{"sub-second rate interval", "RATE_LIMIT_EXTERNAL_API_INTERVAL", "100ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			if _, err := NewConfig(); err == nil {
				t.Errorf("NewConfig() with %s=%s should fail", tt.key, tt.value)
			}
		})
	}
}

func TestNewConfig_SecretFromFile(t *testing.T) {
	secretFile := t.TempDir() + "/token_secret"
	if err := os.WriteFile(secretFile, []byte("s3cret\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("AUTH_TOKEN_SECRET_FILE", secretFile)

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}

	if cfg.Auth.TokenSecret != "s3cret" {
		t.Errorf("Auth.TokenSecret = %q, want trimmed file content", cfg.Auth.TokenSecret)
	}
}
