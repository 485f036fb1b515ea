// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the handler layer itself (request parsing and the
// rate limiting middleware). Callers can match against them with [errors.Is].
var (
	// ErrUnresolvableClient is returned by the rate limiting middleware when
	// the request carries no usable remote address, so no client record can be
	// attributed.
	ErrUnresolvableClient = errors.New("client address could not be resolved")

	// ErrTrackerUnavailable is returned when the limiter's shared state is
	// missing; requests are rejected rather than admitted unmetered.
	ErrTrackerUnavailable = errors.New("rate limit tracker is unavailable")

	// ErrInvalidQueryParameter is returned when a query parameter cannot be
	// parsed (e.g. a non-numeric quantity).
	ErrInvalidQueryParameter = errors.New("invalid query parameter")

	// ErrInvalidJSONBody is returned when a request body cannot be decoded.
	ErrInvalidJSONBody = errors.New("invalid JSON was passed")
)
