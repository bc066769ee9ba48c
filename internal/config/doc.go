// Package config manages application configuration for the Superheroes API.
//
// Configuration is read from environment variables into tagged structs with
// caarlos0/env. A .env file, when present, is loaded first with godotenv.
//
//	cfg, err := config.Load()
//	if err != nil { ... }
//	if err := cfg.Validate(); err != nil { ... }
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, timeouts, log level)
//   - DatabaseConfig: SQL driver selection and connection settings
//   - TracingConfig: OTLP trace exporter settings
//   - MetricsConfig: Prometheus endpoint settings
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT        - HTTP server port (default: 5555)
//	SERVER_ENV         - development, production or test
//	LOG_LEVEL          - debug, info, warn or error
//	DB_DRIVER          - sqlite (default) or postgres
//	DB_PATH            - SQLite database file (default: app.db)
//	DB_HOST, DB_PORT   - PostgreSQL address
//	OTEL_ENABLED       - export traces over OTLP/HTTP
//	METRICS_ENABLED    - serve Prometheus metrics
package config
