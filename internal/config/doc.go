// Package config manages application configuration for the Quest API.
//
// The config package loads and validates configuration from environment variables.
// All configuration is centralized here to provide a single source of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables:
//
//	cfg, err := config.Load()
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS, rate limits)
//   - StoreConfig: path store backend selection and connection settings
//   - JobsConfig: background job settings
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT       - HTTP server port (default: 8080)
//	SERVER_ENV        - development, production, or test
//	STORE_BACKEND     - memory or surrealdb (default: memory)
//	STORE_PREFIX      - optional path prefix for shared backends
//	DB_HOST           - SurrealDB host (surrealdb backend only)
//	DB_PORT           - SurrealDB port
//	DB_NAMESPACE      - SurrealDB namespace
//	DB_DATABASE       - SurrealDB database name
//	SWEEPER_ENABLED   - run the session sweeper (default: true)
//	SWEEPER_INTERVAL  - sweep cadence (default: 1m)
//
// # Default Values
//
// Sensible defaults are provided for development:
//
//	func getEnv(key, defaultValue string) string {
//	    if value := os.Getenv(key); value != "" {
//	        return value
//	    }
//	    return defaultValue
//	}
package config
