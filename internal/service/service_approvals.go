package service

import (
	"context"

	"github.com/MKhiriev/ledger-gate/internal/bridge"
	"github.com/MKhiriev/ledger-gate/internal/logger"
	"github.com/MKhiriev/ledger-gate/models"
)

type approvalsService struct {
	node bridge.Bridge

	logger *logger.Logger
}

func NewApprovalsService(node bridge.Bridge, logger *logger.Logger) ApprovalsService {
	return &approvalsService{node: node, logger: logger}
}

func (s *approvalsService) GetApprovals(ctx context.Context, q models.ApprovalQuery) ([]models.ApprovalRequest, error) {
	if q.Quantity != nil && *q.Quantity < 0 {
		return nil, ErrValidationNegativeQuantity
	}

	return s.node.Approvals(ctx, q)
}

func (s *approvalsService) GetApproval(ctx context.Context, id string) (models.ApprovalRequest, error) {
	return s.node.Approval(ctx, id)
}

func (s *approvalsService) VoteApproval(ctx context.Context, id string, vote models.ApprovalVote) (models.ApprovalRequest, error) {
	if vote.State != models.ApprovalStateRespondedAccepted && vote.State != models.ApprovalStateRespondedRejected {
		return models.ApprovalRequest{}, ErrValidationInvalidVoteState
	}

	voted, err := s.node.VoteApproval(ctx, id, vote)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("approval_id", id).Msg("voting approval on node")
		return models.ApprovalRequest{}, err
	}

	return voted, nil
}
