// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import "errors"

// ErrLimitExceeded is returned by [Tracker.Allow] when the client has already
// used up its request quota for the current window. The request must be
// rejected and the stored record is left untouched; the client is expected to
// retry once the window rolls over.
var ErrLimitExceeded = errors.New("rate limit exceeded")
