package config

import (
	"fmt"
	"strings"
	"time"
)

// validateConfig validates the loaded configuration values
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}

	if err := validateHTTPConfig(&config.HTTP); err != nil {
		return fmt.Errorf("HTTP config validation failed: %w", err)
	}

	if err := validateAggregateConfig(&config.Aggregate); err != nil {
		return fmt.Errorf("aggregate config validation failed: %w", err)
	}

	if err := validateRateLimitConfig(&config.RateLimit); err != nil {
		return fmt.Errorf("rate limit config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got ReadTimeout: %v", config.ReadTimeout)
	}

	if config.WriteTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got WriteTimeout: %v", config.WriteTimeout)
	}

	if config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got IdleTimeout: %v", config.IdleTimeout)
	}

	return nil
}

func validateDatabaseConfig(config *DatabaseConfig) error {
	if config.MaxConnections < 1 {
		return fmt.Errorf("max connections must be at least 1, got %d", config.MaxConnections)
	}

	if config.ConnectionTimeout <= 0 {
		return fmt.Errorf("connection timeout must be positive, got %v", config.ConnectionTimeout)
	}

	return nil
}

func validateHTTPConfig(config *HTTPConfig) error {
	if config.ClientTimeout <= 0 {
		return fmt.Errorf("client timeout must be positive, got %v", config.ClientTimeout)
	}

	if config.DialTimeout <= 0 {
		return fmt.Errorf("dial timeout must be positive, got %v", config.DialTimeout)
	}

	if config.TLSHandshakeTimeout <= 0 {
		return fmt.Errorf("TLS handshake timeout must be positive, got %v", config.TLSHandshakeTimeout)
	}

	if config.IdleConnTimeout <= 0 {
		return fmt.Errorf("idle connection timeout must be positive, got %v", config.IdleConnTimeout)
	}

	return nil
}

func validateAggregateConfig(config *AggregateConfig) error {
	if config.DefaultPageSize <= 0 {
		return fmt.Errorf("default page size must be positive, got %d", config.DefaultPageSize)
	}

	if config.MaxPageSize < config.DefaultPageSize {
		return fmt.Errorf("max page size must be >= default page size (got max=%d, default=%d)",
			config.MaxPageSize, config.DefaultPageSize)
	}

	if config.MaxConcurrency < 1 {
		return fmt.Errorf("max concurrency must be at least 1, got %d", config.MaxConcurrency)
	}

	if config.FeedTimeout <= 0 {
		return fmt.Errorf("feed timeout must be positive, got %v", config.FeedTimeout)
	}

	return nil
}

func validateRateLimitConfig(config *RateLimitConfig) error {
	if config.ExternalAPIInterval < time.Second {
		return fmt.Errorf("external API interval must be at least 1 second, got %v", config.ExternalAPIInterval)
	}

	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	level := strings.ToLower(config.Level)

	valid := false
	for _, validLevel := range validLevels {
		if level == validLevel {
			valid = true
			break
		}
	}

	if !valid {
		return fmt.Errorf("log level must be one of: %s, got %s",
			strings.Join(validLevels, ", "), config.Level)
	}

	validFormats := []string{"json", "text"}
	format := strings.ToLower(config.Format)

	valid = false
	for _, validFormat := range validFormats {
		if format == validFormat {
			valid = true
			break
		}
	}

	if !valid {
		return fmt.Errorf("log format must be one of: %s, got %s",
			strings.Join(validFormats, ", "), config.Format)
	}

	return nil
}
