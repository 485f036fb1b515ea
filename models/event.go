package models

import "encoding/json"

// SignedEventRequest is an event request as submitted to (and stored by) the
// node: a polymorphic request body plus an optional detached signature.
//
// The request payload can describe any event kind the ledger supports (fact,
// creation, transfer, end of life). Its shape is owned by the node, so the
// gateway passes it through verbatim instead of re-modelling ledger
// semantics.
type SignedEventRequest struct {
	Request   json.RawMessage `json:"request"`
	Signature *Signature      `json:"signature,omitempty"`
}

// EventRequestResponse acknowledges an accepted event request.
type EventRequestResponse struct {
	RequestID string `json:"request_id"`
	SubjectID string `json:"subject_id,omitempty"`
}

// RequestState describes where an event request currently sits in the node's
// processing pipeline.
type RequestState struct {
	ID        string `json:"id"`
	SubjectID string `json:"subject_id"`
	SN        uint64 `json:"sn"`
	State     string `json:"state"`
	Success   bool   `json:"success"`
}

// SignedEvent is one ledger event of a subject together with its evaluation
// and approval outcome and the subject key's signature.
type SignedEvent struct {
	SubjectID     string          `json:"subject_id"`
	EventRequest  json.RawMessage `json:"event_request"`
	GovVersion    uint64          `json:"gov_version"`
	SN            uint64          `json:"sn"`
	Patch         json.RawMessage `json:"patch,omitempty"`
	StateHash     string          `json:"state_hash"`
	EvalSuccess   bool            `json:"eval_success"`
	ApprRequired  bool            `json:"appr_required"`
	Approved      bool            `json:"approved"`
	HashPrevEvent string          `json:"hash_prev_event"`
	Evaluators    []Signature     `json:"evaluators"`
	Approvers     []Signature     `json:"approvers"`
	Signature     Signature       `json:"signature"`
}
