// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// ledger-gate application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the gateway version.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the inbound
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Bridge holds connection settings for the ledger node's bridge API.
	Bridge Bridge `envPrefix:"BRIDGE_"`

	// RateLimit holds the per-client request limiter parameters.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running gateway
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Bridge holds connection settings for the outbound node bridge client.
type Bridge struct {
	// URL is the base URL of the ledger node's bridge API
	// (e.g. "http://localhost:3001").
	// Env: BRIDGE_URL
	URL string `env:"URL"`

	// Timeout bounds every outbound bridge call (e.g. "15s").
	// Env: BRIDGE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// RateLimit holds the per-client fixed-window limiter parameters.
type RateLimit struct {
	// MaxRequests is the number of requests one client may issue within a
	// window before being rejected. Zero falls back to the built-in default
	// of 500.
	// Env: RATE_LIMIT_MAX_REQUESTS
	MaxRequests int `env:"MAX_REQUESTS"`

	// Window is the counting window duration. Zero falls back to the
	// built-in default of 60s.
	// Env: RATE_LIMIT_WINDOW
	Window time.Duration `env:"WINDOW"`

	// SweepInterval is how often stale client records are evicted from the
	// tracker. Zero falls back to 2m.
	// Env: RATE_LIMIT_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`

	// IdleTTL is how long after window expiry a client record is kept
	// before the sweeper may evict it. Zero falls back to 5m.
	// Env: RATE_LIMIT_IDLE_TTL
	IdleTTL time.Duration `env:"IDLE_TTL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
