// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the identity
// service. It is populated by merging environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token signing parameters and the application version.
	App App `envPrefix:"APP_"`

	// Security holds the abuse-protection policy: redirect allowlist,
	// login rate limits and password policy.
	Security Security `envPrefix:"SECURITY_"`

	// OAuth holds settings shared by every delegated identity provider.
	OAuth OAuth `envPrefix:"OAUTH_"`

	// Storage holds the relational database and shared cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control the session
// token lifecycle and versioning.
type App struct {
	// TokenSignKey is the HMAC secret used to sign session tokens and OAuth
	// state parameters.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// StateDuration bounds the time between starting an OAuth flow and
	// completing it.
	// Env: APP_STATE_DURATION
	StateDuration time.Duration `env:"STATE_DURATION"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimal zerolog level name (debug, info, warn...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Security holds the abuse-protection settings of the Security Guard.
type Security struct {
	// RedirectAllowlist lists the domains accepted as post-login redirect
	// targets. Subdomains of a listed domain are accepted too.
	// Env: SECURITY_REDIRECT_ALLOWLIST (comma separated)
	RedirectAllowlist []string `env:"REDIRECT_ALLOWLIST" envSeparator:","`

	// DevelopmentMode additionally allows localhost redirects.
	// Env: SECURITY_DEVELOPMENT_MODE
	DevelopmentMode bool `env:"DEVELOPMENT_MODE"`

	// DefaultRedirect is used when a flow starts without a redirect target.
	// Env: SECURITY_DEFAULT_REDIRECT
	DefaultRedirect string `env:"DEFAULT_REDIRECT"`

	// LoginMaxAttempts is the number of login attempts per key and window.
	// Env: SECURITY_LOGIN_MAX_ATTEMPTS
	LoginMaxAttempts int `env:"LOGIN_MAX_ATTEMPTS"`

	// LoginWindow is the fixed window of the login rate limit.
	// Env: SECURITY_LOGIN_WINDOW
	LoginWindow time.Duration `env:"LOGIN_WINDOW"`

	// PasswordMinLength is the minimal accepted password length.
	// Env: SECURITY_PASSWORD_MIN_LENGTH
	PasswordMinLength int `env:"PASSWORD_MIN_LENGTH"`
}

// OAuth holds settings shared by all delegated identity providers.
type OAuth struct {
	// CallbackBaseURL is the externally reachable base URL of this service;
	// provider callbacks are registered as
	// {CallbackBaseURL}/api/auth/oauth/{provider}/callback.
	// Env: OAUTH_CALLBACK_BASE_URL
	CallbackBaseURL string `env:"CALLBACK_BASE_URL"`

	// RequestTimeout bounds every token exchange and profile fetch.
	// Env: OAUTH_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// DisableAutoLinkByEmail stops sign-ins from attaching a new provider to
	// an existing account that merely shares the email address.
	// Env: OAUTH_DISABLE_AUTO_LINK_BY_EMAIL
	DisableAutoLinkByEmail bool `env:"DISABLE_AUTO_LINK_BY_EMAIL"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Redis holds the shared cache used by the rate limiter in multi-instance
	// deployments. When Address is empty an in-memory store is used.
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the dialect by scheme: "postgres://" / "postgresql://" for
	// PostgreSQL and "sqlite://" (or "file:") for a local SQLite database.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Redis holds connection settings for the shared rate-limit store.
type Redis struct {
	// Env: STORAGE_REDIS_ADDRESS
	Address string `env:"ADDRESS"`
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the internal gRPC server. The gRPC
	// server is disabled when empty.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ThrottleRPS and ThrottleBurst configure the per-client-IP token bucket
	// applied to every HTTP request.
	// Env: SERVER_THROTTLE_RPS, SERVER_THROTTLE_BURST
	ThrottleRPS   float64 `env:"THROTTLE_RPS"`
	ThrottleBurst int     `env:"THROTTLE_BURST"`

	// TrustedProxies lists the reverse proxies (IPs or CIDRs) whose
	// X-Forwarded-For, X-Real-IP and True-Client-IP headers are believed.
	// Forwarded headers from any other peer are ignored.
	// Env: SERVER_TRUSTED_PROXIES (comma separated)
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		build()
}
