// Package bridge is the outbound client for the ledger node's bridge API.
//
// The node owns all ledger semantics: consensus, storage, signature
// verification, and governance evaluation. This package treats it as an
// opaque collaborator with a request/response contract, translating transport
// failures and node status codes into sentinel errors the HTTP layer can map.
package bridge
