package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidBridgeConfigs indicates invalid node bridge settings
	// (for example, a missing base URL).
	ErrInvalidBridgeConfigs = errors.New("invalid bridge configuration")
	// ErrInvalidRateLimitConfigs indicates invalid rate limiter settings
	// (for example, a negative ceiling or window).
	ErrInvalidRateLimitConfigs = errors.New("invalid rate limit configuration")
)
