package models

// Signature is the detached signature block attached to event requests,
// events, approvals, and validation proofs as emitted by the ledger node.
type Signature struct {
	// Signer is the key identifier of the signing party.
	Signer string `json:"signer"`

	// Timestamp is the node-side signing time in its native epoch units.
	Timestamp uint64 `json:"timestamp"`

	// Value is the base-encoded signature bytes.
	Value string `json:"value"`

	// ContentHash is the hash of the signed content.
	ContentHash string `json:"content_hash"`
}
