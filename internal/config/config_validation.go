// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Built-in defaults applied when no source sets a value.
const (
	defaultHTTPAddress = "0.0.0.0:3000"
	defaultAppVersion  = "0.0.0-dev"

	defaultBridgeTimeout = 15 * time.Second

	defaultRateLimitMaxRequests   = 500
	defaultRateLimitWindow        = 60 * time.Second
	defaultRateLimitSweepInterval = 2 * time.Minute
	defaultRateLimitIdleTTL       = 5 * time.Minute
)

// withDefaults fills every unset field with its built-in default. Only the
// bridge URL has no default: the gateway is useless without a node to talk
// to, so validate rejects its absence instead.
func (cfg *StructuredConfig) withDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.App.Version == "" {
		cfg.App.Version = defaultAppVersion
	}
	if cfg.Bridge.Timeout == 0 {
		cfg.Bridge.Timeout = defaultBridgeTimeout
	}
	if cfg.RateLimit.MaxRequests == 0 {
		cfg.RateLimit.MaxRequests = defaultRateLimitMaxRequests
	}
	if cfg.RateLimit.Window == 0 {
		cfg.RateLimit.Window = defaultRateLimitWindow
	}
	if cfg.RateLimit.SweepInterval == 0 {
		cfg.RateLimit.SweepInterval = defaultRateLimitSweepInterval
	}
	if cfg.RateLimit.IdleTTL == 0 {
		cfg.RateLimit.IdleTTL = defaultRateLimitIdleTTL
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Bridge.URL == "" {
		return ErrInvalidBridgeConfigs
	}

	if cfg.RateLimit.MaxRequests < 0 || cfg.RateLimit.Window < 0 {
		return ErrInvalidRateLimitConfigs
	}
	if cfg.RateLimit.SweepInterval < 0 || cfg.RateLimit.IdleTTL < 0 {
		return ErrInvalidRateLimitConfigs
	}

	return nil
}
