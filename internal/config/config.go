package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Jobs   JobsConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port           string
	Env            string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string
	RateLimit      int
	RateLimitBurst int
}

// StoreConfig holds path store settings. Backend selects the implementation;
// the DB_* fields only matter for the surrealdb backend.
type StoreConfig struct {
	Backend   string
	Prefix    string
	Host      string
	Port      string
	Namespace string
	Database  string
	User      string
	Password  string
}

// JobsConfig holds background job settings
type JobsConfig struct {
	SweeperEnabled  bool
	SweeperInterval time.Duration
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			Env:            getEnv("SERVER_ENV", "development"),
			ReadTimeout:    getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			AllowedOrigins: getSliceEnv("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			RateLimit:      getIntEnv("RATE_LIMIT", 100),
			RateLimitBurst: getIntEnv("RATE_LIMIT_BURST", 20),
		},
		Store: StoreConfig{
			Backend:   getEnv("STORE_BACKEND", "memory"),
			Prefix:    getEnv("STORE_PREFIX", ""),
			Host:      getEnv("DB_HOST", "localhost"),
			Port:      getEnv("DB_PORT", "8000"),
			Namespace: getEnv("DB_NAMESPACE", "quest"),
			Database:  getEnv("DB_DATABASE", "main"),
			User:      getEnv("DB_USER", "root"),
			Password:  getEnv("DB_PASSWORD", "root"),
		},
		Jobs: JobsConfig{
			SweeperEnabled:  getBoolEnv("SWEEPER_ENABLED", true),
			SweeperInterval: getDurationEnv("SWEEPER_INTERVAL", time.Minute),
		},
	}, nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	// Server validation
	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT is required"))
	}
	if c.Server.Env != "development" && c.Server.Env != "production" && c.Server.Env != "test" {
		errs = append(errs, fmt.Errorf("SERVER_ENV must be 'development', 'production', or 'test', got '%s'", c.Server.Env))
	}
	if len(c.Server.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS must have at least one origin"))
	}
	if c.Server.RateLimit <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT must be positive"))
	}
	if c.Server.RateLimitBurst < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_BURST must not be negative"))
	}

	// Store validation
	switch c.Store.Backend {
	case "memory":
	case "surrealdb":
		if c.Store.Host == "" {
			errs = append(errs, errors.New("DB_HOST is required for the surrealdb backend"))
		}
		if c.Store.Port == "" {
			errs = append(errs, errors.New("DB_PORT is required for the surrealdb backend"))
		}
		if c.Store.Namespace == "" {
			errs = append(errs, errors.New("DB_NAMESPACE is required for the surrealdb backend"))
		}
		if c.Store.Database == "" {
			errs = append(errs, errors.New("DB_DATABASE is required for the surrealdb backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORE_BACKEND must be 'memory' or 'surrealdb', got '%s'", c.Store.Backend))
	}
	if c.IsProduction() && c.Store.Backend == "memory" {
		errs = append(errs, errors.New("STORE_BACKEND 'memory' loses all data on restart and is not allowed in production"))
	}

	// Jobs validation
	if c.Jobs.SweeperEnabled && c.Jobs.SweeperInterval <= 0 {
		errs = append(errs, errors.New("SWEEPER_INTERVAL must be positive when SWEEPER_ENABLED is true"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
