package config

import (
	"fmt"
	"strings"
)

func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}

	if err := validateCacheConfig(&config.Cache); err != nil {
		return fmt.Errorf("cache config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	if err := validateAnalyticsConfig(&config.Analytics); err != nil {
		return fmt.Errorf("analytics config validation failed: %w", err)
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
	if config.Host == "" {
		return fmt.Errorf("database host must not be empty")
	}

	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("database port must be between 1 and 65535, got %d", config.Port)
	}

	if config.Name == "" {
		return fmt.Errorf("database name must not be empty")
	}

	if config.MaxConns < 1 {
		return fmt.Errorf("max connections must be at least 1, got %d", config.MaxConns)
	}

	if config.MinConns < 0 || config.MinConns > config.MaxConns {
		return fmt.Errorf("min connections must be between 0 and max connections, got %d", config.MinConns)
	}

	if config.QueryTimeout <= 0 {
		return fmt.Errorf("query timeout must be positive, got %v", config.QueryTimeout)
	}

	return nil
}

func validateCacheConfig(config *CacheConfig) error {
	if config.RedisAddr == "" {
		return fmt.Errorf("redis address must not be empty")
	}

	if config.TrendingExpiry <= 0 {
		return fmt.Errorf("trending cache expiry must be positive, got %v", config.TrendingExpiry)
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
		return fmt.Errorf("log level must be one of %v, got %s", validLevels, config.Level)
	}

	switch strings.ToLower(config.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log format must be json or text, got %s", config.Format)
	}

	return nil
}

func validateAnalyticsConfig(config *AnalyticsConfig) error {
	if config.QueueSize < 1 {
		return fmt.Errorf("analytics queue size must be at least 1, got %d", config.QueueSize)
	}

	return nil
}
