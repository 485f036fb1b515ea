package models

import "encoding/json"

// SubjectData is the current materialized state of one subject known to the
// node.
type SubjectData struct {
	SubjectID    string          `json:"subject_id"`
	GovernanceID string          `json:"governance_id"`
	SN           uint64          `json:"sn"`
	PublicKey    string          `json:"public_key"`
	Namespace    string          `json:"namespace"`
	Name         string          `json:"name"`
	SchemaID     string          `json:"schema_id"`
	Owner        string          `json:"owner"`
	Creator      string          `json:"creator"`
	Properties   json.RawMessage `json:"properties"`
	Active       bool            `json:"active"`
}

// ValidationProof is the validation evidence of a subject's latest event: the
// proof document and the validators' signatures over it.
type ValidationProof struct {
	Proof      json.RawMessage `json:"proof"`
	Signatures []Signature     `json:"signatures"`
}

// PreauthorizedSubject is one entry of the node's pre-authorization list: a
// subject the node is allowed to fetch, with the providers to fetch it from.
type PreauthorizedSubject struct {
	SubjectID string   `json:"subject_id"`
	Providers []string `json:"providers"`
}

// AuthorizeSubject is the payload for pre-authorizing a subject.
type AuthorizeSubject struct {
	// Providers lists peers the subject may be obtained from. An empty list
	// authorizes the subject without pinning providers.
	Providers []string `json:"providers"`
}

// SubjectQuery filters and paginates subject listings.
type SubjectQuery struct {
	// SubjectType narrows the listing ("all" or "governances").
	SubjectType string

	// GovernanceID restricts the listing to subjects of one governance.
	GovernanceID string

	// From is the identifier of the first subject to consider.
	From string

	// Quantity caps the number of returned entries; nil means no cap.
	Quantity *int64
}

// PageQuery is plain from/quantity pagination.
type PageQuery struct {
	From     string
	Quantity *int64
}

// EventQuery paginates a subject's event log by sequence number.
type EventQuery struct {
	From     *int64
	Quantity *int64
}

// KeysQuery selects the signature algorithm for key registration.
type KeysQuery struct {
	// Algorithm is "Ed25519" or "Secp256k1"; empty lets the node choose its
	// default.
	Algorithm string
}
