package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for both the
// authentication server and the storage server. It is populated by merging
// values from environment variables and command-line flags, with hard-coded
// defaults filling any remaining gaps.
//
// Struct tags:
//   - env — environment variable name for the field (caarlos0/env).
type StructuredConfig struct {
	// App holds security parameters: the process secret and token lifetimes.
	App App

	// Storage holds the settings for the user-record store: the HTTP base
	// URL consumed by the authentication server and the database DSN used
	// by the storage server.
	Storage Storage

	// Server holds the inbound HTTP listener settings.
	Server Server
}

// App holds application-level configuration values that control the session
// and remember-token mechanics.
type App struct {
	// SecretKey is the process-wide secret used both to sign session tokens
	// and as the MAC key for remember tokens. Constant for the process
	// lifetime; must be kept confidential.
	// Env: SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// TokenIssuer is the "iss" claim embedded in every session token.
	// Env: TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// SessionDuration is how long a session token stays valid (e.g. "24h").
	// Env: SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// RememberDuration is the lifetime of the persistent remember-token
	// cookie issued on login (e.g. "8760h" for one year).
	// Env: REMEMBER_DURATION
	RememberDuration time.Duration `env:"REMEMBER_DURATION"`
}

// Storage holds configuration for the user-record store.
type Storage struct {
	// URL is the base URL of the storage service consumed by the
	// authentication server (e.g. "http://storage:5001").
	// Env: STORAGE_URL
	URL string `env:"STORAGE_URL"`

	// RequestTimeout bounds every HTTP call to the storage service. Calls
	// exceeding it fail and surface as a service error; there is no retry.
	// Env: STORAGE_TIMEOUT
	RequestTimeout time.Duration `env:"STORAGE_TIMEOUT"`

	// DSN is the database connection string used by the storage server.
	// A "postgres://" scheme selects the pgx driver; anything else is
	// treated as a SQLite file path.
	// Env: DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds the inbound HTTP listener settings.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on,
	// in "host:port" format (e.g. "0.0.0.0:5000").
	// Env: ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (first non-zero value
// wins per field):
//  1. Environment variables
//  2. Command-line flags
//  3. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withDefaults().
		build()
}
