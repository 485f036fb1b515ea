// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"sync"
	"time"
)

// Default limiter parameters: 500 requests per client per 60-second window.
const (
	DefaultMaxRequests = 500
	DefaultWindow      = 60 * time.Second
)

// Record is one client's usage within its active counting window.
type Record struct {
	// WindowStart marks when the current counting window began.
	WindowStart time.Time

	// Count is the number of requests admitted for this client since
	// WindowStart.
	Count int
}

// Tracker is the process-wide mapping from client IP to [Record].
//
// It is created once at startup and shared by every request-handling
// goroutine; all access goes through a single mutex. The critical section is
// a pure in-memory read-modify-write, so the coarse lock is not a bottleneck
// at the request volumes this service handles.
//
// A Tracker must be constructed with [NewTracker]; the zero value is not
// usable.
type Tracker struct {
	mu      sync.Mutex
	records map[string]Record

	maxRequests int
	window      time.Duration
}

// NewTracker returns a Tracker admitting up to maxRequests per client within
// each window. Non-positive arguments fall back to the defaults.
func NewTracker(maxRequests int, window time.Duration) *Tracker {
	if maxRequests <= 0 {
		maxRequests = DefaultMaxRequests
	}
	if window <= 0 {
		window = DefaultWindow
	}

	return &Tracker{
		records:     make(map[string]Record),
		maxRequests: maxRequests,
		window:      window,
	}
}

// Allow performs the admission check for a single request from ip at time now.
//
// The whole read-modify-write runs under one lock acquisition so that two
// concurrent requests from the same client can never both observe
// Count == max-1 and double-admit over the ceiling.
//
// Admission rules, in order:
//   - no record, or the window expired (now is strictly more than one window
//     past WindowStart): start a fresh window with this request as its first;
//   - Count strictly below the ceiling: increment, window start unchanged;
//   - otherwise: reject with [ErrLimitExceeded] and mutate nothing.
//
// A record sitting exactly at the ceiling is rejected until the window rolls
// over.
func (t *Tracker) Allow(ip string, now time.Time) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.records[ip]
	if !ok || now.Sub(rec.WindowStart) > t.window {
		t.records[ip] = Record{WindowStart: now, Count: 1}
		return nil
	}

	if rec.Count < t.maxRequests {
		rec.Count++
		t.records[ip] = rec
		return nil
	}

	return ErrLimitExceeded
}

// RetryAfter reports how long the client identified by ip has to wait from
// now until its window rolls over and requests are admitted again. It returns
// zero if the client has no record or the window has already expired.
func (t *Tracker) RetryAfter(ip string, now time.Time) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.records[ip]
	if !ok {
		return 0
	}

	remaining := t.window - now.Sub(rec.WindowStart)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Sweep evicts every record whose window expired more than idleTTL before
// now and returns the number of records removed.
//
// Records are never evicted on the request path, so a long-running process
// accumulates one record per distinct client forever unless Sweep runs
// periodically (see the workers package).
func (t *Tracker) Sweep(now time.Time, idleTTL time.Duration) int {
	cutoff := now.Add(-(t.window + idleTTL))

	t.mu.Lock()
	defer t.mu.Unlock()

	evicted := 0
	for ip, rec := range t.records {
		if rec.WindowStart.Before(cutoff) {
			delete(t.records, ip)
			evicted++
		}
	}
	return evicted
}

// Record returns a snapshot of the stored record for ip and whether one
// exists. Intended for tests and introspection.
func (t *Tracker) Record(ip string) (Record, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.records[ip]
	return rec, ok
}

// Len returns the number of tracked clients.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.records)
}

// MaxRequests returns the per-window request ceiling.
func (t *Tracker) MaxRequests() int { return t.maxRequests }

// Window returns the counting window duration.
func (t *Tracker) Window() time.Duration { return t.window }
