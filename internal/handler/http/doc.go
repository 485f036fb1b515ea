// Package http exposes the ledger node's bridge API as REST endpoints.
//
// The handler is a thin façade: every route decodes the request, delegates to
// a service (which delegates to the node), and encodes the result. The only
// stateful logic at this layer is the per-client rate limiting middleware.
package http
