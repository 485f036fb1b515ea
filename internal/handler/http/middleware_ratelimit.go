// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/ledger-gate/internal/logger"
	"github.com/MKhiriev/ledger-gate/internal/ratelimit"
)

// withRateLimit is the admission gate in front of every route. Each request is
// attributed to its client IP and checked against the shared [ratelimit.Tracker];
// requests over the per-window ceiling are rejected with 429 and a Retry-After
// header, without touching the client's record.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if h.tracker == nil {
			log.Error().Msg("rate limit tracker is not configured")
			writeError(w, ErrTrackerUnavailable)
			return
		}

		ip, err := clientIP(r)
		if err != nil {
			log.Err(err).Str("remote_addr", r.RemoteAddr).Msg("cannot attribute request to a client")
			writeError(w, err)
			return
		}

		now := time.Now()
		if err := h.tracker.Allow(ip, now); err != nil {
			retryAfter := retryAfterSeconds(h.tracker.RetryAfter(ip, now))
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))

			log.Warn().
				Str("client_ip", ip).
				Int("retry_after", retryAfter).
				Msg("rate limit exceeded")
			writeError(w, ratelimit.ErrLimitExceeded)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP extracts the client's IP from the request's remote address.
// "host:port" addresses are split; a bare IP (no port) is accepted as-is.
func clientIP(r *http.Request) (string, error) {
	remoteAddr := strings.TrimSpace(r.RemoteAddr)
	if remoteAddr == "" {
		return "", ErrUnresolvableClient
	}

	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return host, nil
	}

	if ip := net.ParseIP(remoteAddr); ip != nil {
		return ip.String(), nil
	}

	return "", ErrUnresolvableClient
}

// retryAfterSeconds rounds the wait up to whole seconds so the advertised
// delay is never shorter than the actual one.
func retryAfterSeconds(wait time.Duration) int {
	if wait <= 0 {
		return 0
	}
	return int(math.Ceil(wait.Seconds()))
}
