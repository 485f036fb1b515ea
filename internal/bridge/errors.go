// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import "errors"

// Sentinel errors returned by the bridge client. Node-reported failures are
// wrapped around these so callers can classify them with [errors.Is] without
// parsing response bodies.
var (
	// ErrBadRequest indicates the node rejected the request as malformed.
	ErrBadRequest = errors.New("node rejected request")

	// ErrNotFound indicates the requested entity does not exist on the node.
	ErrNotFound = errors.New("entity not found on node")

	// ErrConflict indicates the request conflicts with the node's current
	// state (e.g. voting on an already answered approval).
	ErrConflict = errors.New("conflict on node")

	// ErrNodeInternal indicates the node reported an internal failure.
	ErrNodeInternal = errors.New("node internal error")

	// ErrNodeUnavailable indicates the node could not be reached at the
	// transport level (connection refused, timeout, DNS failure).
	ErrNodeUnavailable = errors.New("node unavailable")
)
