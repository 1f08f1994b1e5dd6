// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Required credentials are validated at startup and surfaced as structured errors

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Storage contains link persistence configuration
	Storage StorageConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Fetch contains content fetcher configuration
	Fetch FetchConfig

	// Analyzer contains AI completion endpoint configuration
	Analyzer AnalyzerConfig

	// Auth contains session provider configuration
	Auth AuthConfig

	// LogLevel controls log verbosity (debug/info/warn/error)
	LogLevel string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// StorageConfig holds link persistence configuration
type StorageConfig struct {
	// Path is the SQLite database file path
	Path string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// FetchConfig holds content fetcher configuration
type FetchConfig struct {
	// RelayURL is an optional fetch relay; pages are requested as
	// <RelayURL>?url=<escaped target> when set, directly otherwise.
	RelayURL string

	// Timeout bounds a single page fetch
	Timeout time.Duration
}

// AnalyzerConfig holds AI completion endpoint configuration
type AnalyzerConfig struct {
	// APIKey authenticates completion requests; required
	APIKey string

	// Model is the completion model name
	Model string

	// Endpoint overrides the completion API base URL
	Endpoint string
}

// AuthConfig holds session provider configuration
type AuthConfig struct {
	// JWTSecret signs session tokens; required
	JWTSecret string

	// SessionTTL is the session lifetime
	SessionTTL time.Duration
}

// MissingKeyError reports a required environment variable that is not set
type MissingKeyError struct {
	Key string
}

// Error implements the error interface
func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("required configuration %s is not set", e.Key)
}

// IsMissingKey checks if an error is a MissingKeyError
func IsMissingKey(err error) bool {
	var missingErr *MissingKeyError
	return errors.As(err, &missingErr)
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Storage: StorageConfig{
			Path: getEnvOrDefault("STORAGE_PATH", "stash.db"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
		Fetch: FetchConfig{
			RelayURL: getEnvOrDefault("FETCH_RELAY_URL", ""),
			Timeout:  time.Duration(getEnvAsIntOrDefault("FETCH_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Analyzer: AnalyzerConfig{
			APIKey:   os.Getenv("ANALYZER_API_KEY"),
			Model:    getEnvOrDefault("ANALYZER_MODEL", "gemini-2.5-flash"),
			Endpoint: getEnvOrDefault("ANALYZER_ENDPOINT", ""),
		},
		Auth: AuthConfig{
			JWTSecret:  os.Getenv("AUTH_JWT_SECRET"),
			SessionTTL: time.Duration(getEnvAsIntOrDefault("AUTH_SESSION_TTL_HOURS", 24)) * time.Hour,
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid. Missing required
// credentials are reported as MissingKeyError values, joined, so startup
// can fail with one loud diagnostic naming everything that is absent.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New("port cannot be empty"))
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		errs = append(errs, errors.New("cache type must be 'redis' or 'memory'"))
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		errs = append(errs, errors.New("redis address cannot be empty when using redis cache"))
	}

	if c.Analyzer.APIKey == "" {
		errs = append(errs, &MissingKeyError{Key: "ANALYZER_API_KEY"})
	}

	if c.Auth.JWTSecret == "" {
		errs = append(errs, &MissingKeyError{Key: "AUTH_JWT_SECRET"})
	}

	if c.Fetch.Timeout <= 0 {
		errs = append(errs, errors.New("fetch timeout must be positive"))
	}

	return errors.Join(errs...)
}
