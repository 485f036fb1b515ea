package service

import (
	"context"

	"github.com/MKhiriev/ledger-gate/models"
)

type EventsService interface {
	SendEventRequest(ctx context.Context, req models.SignedEventRequest) (models.EventRequestResponse, error)
	GetEventRequest(ctx context.Context, requestID string) (models.SignedEventRequest, error)
	GetEventRequestState(ctx context.Context, requestID string) (models.RequestState, error)
}

type ApprovalsService interface {
	GetApprovals(ctx context.Context, q models.ApprovalQuery) ([]models.ApprovalRequest, error)
	GetApproval(ctx context.Context, id string) (models.ApprovalRequest, error)
	VoteApproval(ctx context.Context, id string, vote models.ApprovalVote) (models.ApprovalRequest, error)
}

type SubjectsService interface {
	GetSubjects(ctx context.Context, q models.SubjectQuery) ([]models.SubjectData, error)
	GetSubject(ctx context.Context, subjectID string) (models.SubjectData, error)
	GetValidationProof(ctx context.Context, subjectID string) (models.ValidationProof, error)
	GetEventsOfSubject(ctx context.Context, subjectID string, q models.EventQuery) ([]models.SignedEvent, error)
	GetEventOfSubject(ctx context.Context, subjectID string, sn uint64) (models.SignedEvent, error)
}

type AuthorizationService interface {
	GetAllowedSubjects(ctx context.Context, q models.PageQuery) ([]models.PreauthorizedSubject, error)
	AuthorizeSubject(ctx context.Context, subjectID string, auth models.AuthorizeSubject) (string, error)
}

type NodeService interface {
	RegisterKeys(ctx context.Context, q models.KeysQuery) (string, error)
	GetControllerID(ctx context.Context) (string, error)
	GetPeerID(ctx context.Context) (string, error)
	GetAppVersion(ctx context.Context) string
}
