package models

import "encoding/json"

// Approval request states as reported by the node.
const (
	ApprovalStatePending           = "Pending"
	ApprovalStateObsolete          = "Obsolete"
	ApprovalStateRespondedAccepted = "RespondedAccepted"
	ApprovalStateRespondedRejected = "RespondedRejected"
)

// ApprovalRequest is one approval petition received by the node, optionally
// already answered.
//
// Request and Response are node-owned composite structures (the signed event
// request under evaluation, the resulting patch, hashes, and signatures);
// the gateway relays them without interpretation.
type ApprovalRequest struct {
	ID      string          `json:"id"`
	Request json.RawMessage `json:"request"`
	// The node spells this field "reponse" on the wire; keep it verbatim so
	// existing clients keep working.
	Response json.RawMessage `json:"reponse,omitempty"`
	State    string          `json:"state"`
}

// ApprovalVote is the caller's verdict on a pending approval request.
type ApprovalVote struct {
	// State must be ApprovalStateRespondedAccepted or
	// ApprovalStateRespondedRejected.
	State string `json:"state"`
}

// ApprovalQuery filters and paginates approval request listings.
type ApprovalQuery struct {
	// Status optionally filters by approval state
	// (pending, obsolete, responded_accepted, responded_rejected).
	Status string

	// From is the identifier of the first approval to consider.
	From string

	// Quantity caps the number of returned entries; nil means no cap.
	Quantity *int64
}
