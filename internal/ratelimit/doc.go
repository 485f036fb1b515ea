// Package ratelimit implements the per-client fixed-window request limiter
// used at the edge of the HTTP service.
//
// Each client IP gets a counting window of a fixed duration. Requests are
// admitted while the counter stays below the configured ceiling; once the
// ceiling is reached the client is rejected until the window rolls over.
//
// Fixed-window counting admits up to twice the ceiling across a window
// boundary (a burst at the very end of one window followed by a burst at the
// start of the next). That trade-off is intentional here: the limiter exists
// to shape abusive traffic, not to enforce an exact rate.
package ratelimit
