package bridge

import (
	"context"

	"github.com/MKhiriev/ledger-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/bridge_mock.go -package=mock

// Bridge is the full surface of the ledger node consumed by the gateway.
//
// Every method maps one-to-one onto a node bridge operation. Implementations
// must honour ctx cancellation and return the package's sentinel errors for
// node-reported failures.
type Bridge interface {
	// SendEventRequest submits a signed event request (fact, creation,
	// transfer, or end of life) to the node.
	SendEventRequest(ctx context.Context, req models.SignedEventRequest) (models.EventRequestResponse, error)

	// EventRequest fetches a previously submitted event request by id.
	EventRequest(ctx context.Context, requestID string) (models.SignedEventRequest, error)

	// EventRequestState reports where an event request sits in the node's
	// processing pipeline.
	EventRequestState(ctx context.Context, requestID string) (models.RequestState, error)

	// Approvals lists approval requests received by the node, optionally
	// filtered by state and paginated.
	Approvals(ctx context.Context, q models.ApprovalQuery) ([]models.ApprovalRequest, error)

	// Approval fetches one approval request by id.
	Approval(ctx context.Context, id string) (models.ApprovalRequest, error)

	// VoteApproval records the caller's verdict on a pending approval
	// request and returns the updated entity.
	VoteApproval(ctx context.Context, id string, vote models.ApprovalVote) (models.ApprovalRequest, error)

	// AllowedSubjects lists subjects pre-authorized on the node.
	AllowedSubjects(ctx context.Context, q models.PageQuery) ([]models.PreauthorizedSubject, error)

	// AuthorizeSubject pre-authorizes a subject, optionally pinning the
	// providers it may be fetched from.
	AuthorizeSubject(ctx context.Context, subjectID string, auth models.AuthorizeSubject) (string, error)

	// RegisterKeys has the node generate and register a keypair for event
	// creation; the public key is returned.
	RegisterKeys(ctx context.Context, q models.KeysQuery) (string, error)

	// Subjects lists subjects known to the node.
	Subjects(ctx context.Context, q models.SubjectQuery) ([]models.SubjectData, error)

	// Subject fetches one subject by id.
	Subject(ctx context.Context, subjectID string) (models.SubjectData, error)

	// ValidationProof returns the validation evidence of the subject's
	// latest event.
	ValidationProof(ctx context.Context, subjectID string) (models.ValidationProof, error)

	// EventsOfSubject lists a subject's events with pagination by sequence
	// number.
	EventsOfSubject(ctx context.Context, subjectID string, q models.EventQuery) ([]models.SignedEvent, error)

	// EventOfSubject fetches a single event of a subject by sequence number.
	EventOfSubject(ctx context.Context, subjectID string, sn uint64) (models.SignedEvent, error)

	// ControllerID returns the node's controller identifier (its public key).
	ControllerID(ctx context.Context) (string, error)

	// PeerID returns the node's network peer identifier.
	PeerID(ctx context.Context) (string, error)
}
