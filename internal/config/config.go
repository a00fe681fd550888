// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-snake-bench server. It aggregates all sub-configurations and is
// populated by merging values from a .env file, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: environment variable name of a scalar field.
type StructuredConfig struct {
	// App holds application-level settings: version, logging, session
	// lifetime, auth rate limiting and the engine quota.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC health servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration of outbound integrations: bots, the
	// engine-analysis service and the Google identity provider.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for the background run executor.
	Workers Workers `envPrefix:"WORKERS_"`

	// Redis holds the run-event bus settings. An empty address disables
	// the bus.
	Redis Redis `envPrefix:"REDIS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// SessionTTL is the lifetime of a login session.
	// Env: APP_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// RateLimitAttempts is the number of failed auth attempts per window
	// after which a client is blocked.
	// Env: APP_RATE_LIMIT_ATTEMPTS
	RateLimitAttempts int `env:"RATE_LIMIT_ATTEMPTS"`

	// RateLimitWindow is both the counting window and the block duration.
	// Env: APP_RATE_LIMIT_WINDOW
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW"`

	// EngineMonthlyLimit is the number of engine analyses a regular user may
	// request per calendar month.
	// Env: APP_ENGINE_MONTHLY_LIMIT
	EngineMonthlyLimit int `env:"ENGINE_MONTHLY_LIMIT"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend: a postgres:// URL uses pgx, a sqlite:// URL,
	// a file: URI or a *.db path uses SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server. Empty
	// disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds the handling of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSAllowedOrigins lists browser origins allowed to call the API.
	// Env: SERVER_CORS_ALLOWED_ORIGINS (comma separated)
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// Adapter holds configuration of outbound integrations.
type Adapter struct {
	// BotTimeout bounds a single call to a user bot.
	// Env: ADAPTER_BOT_TIMEOUT
	BotTimeout time.Duration `env:"BOT_TIMEOUT"`

	// EngineTimeout bounds a single call to the engine-analysis service.
	// Env: ADAPTER_ENGINE_TIMEOUT
	EngineTimeout time.Duration `env:"ENGINE_TIMEOUT"`

	// MaxResponseBytes caps the body read from a bot or the engine. A
	// larger body fails the call.
	// Env: ADAPTER_MAX_RESPONSE_BYTES
	MaxResponseBytes int `env:"MAX_RESPONSE_BYTES"`

	// EngineURL and EnginePassword are fallbacks for ENGINE_ANALYSE_URL and
	// ENGINE_ANALYSE_PASSWORD, which take precedence at call time.
	// Env: ADAPTER_ENGINE_URL, ADAPTER_ENGINE_PASSWORD
	EngineURL      string `env:"ENGINE_URL"`
	EnginePassword string `env:"ENGINE_PASSWORD"`

	// GoogleClientID is the fallback for GOOGLE_CLIENT_ID.
	// Env: ADAPTER_GOOGLE_CLIENT_ID
	GoogleClientID string `env:"GOOGLE_CLIENT_ID"`

	// GoogleJWKSURL is where Google signing keys are fetched from.
	// Env: ADAPTER_GOOGLE_JWKS_URL
	GoogleJWKSURL string `env:"GOOGLE_JWKS_URL"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RunConcurrency is the number of runs executed in parallel, both by the
	// background executor and by batch runs.
	// Env: WORKERS_RUN_CONCURRENCY
	RunConcurrency int `env:"RUN_CONCURRENCY"`

	// RunQueueSize is the capacity of the background execution queue.
	// Env: WORKERS_RUN_QUEUE_SIZE
	RunQueueSize int `env:"RUN_QUEUE_SIZE"`
}

// Redis holds connection settings of the run-event bus.
type Redis struct {
	// Env: REDIS_ADDR
	Addr string `env:"ADDR"`
	// Env: REDIS_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: REDIS_DB
	DB int `env:"DB"`
	// Env: REDIS_CHANNEL
	Channel string `env:"CHANNEL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file (only fills variables that are not already set)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Defaults are applied to every field left empty.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(os.Args[1:]...).
		withJSON().
		build()
}
