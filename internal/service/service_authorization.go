package service

import (
	"context"

	"github.com/MKhiriev/ledger-gate/internal/bridge"
	"github.com/MKhiriev/ledger-gate/internal/logger"
	"github.com/MKhiriev/ledger-gate/models"
)

type authorizationService struct {
	node bridge.Bridge

	logger *logger.Logger
}

func NewAuthorizationService(node bridge.Bridge, logger *logger.Logger) AuthorizationService {
	return &authorizationService{node: node, logger: logger}
}

func (s *authorizationService) GetAllowedSubjects(ctx context.Context, q models.PageQuery) ([]models.PreauthorizedSubject, error) {
	if q.Quantity != nil && *q.Quantity < 0 {
		return nil, ErrValidationNegativeQuantity
	}

	return s.node.AllowedSubjects(ctx, q)
}

func (s *authorizationService) AuthorizeSubject(ctx context.Context, subjectID string, auth models.AuthorizeSubject) (string, error) {
	// A missing providers list authorizes the subject without pinning
	// providers; normalize nil so the node always sees a JSON array.
	if auth.Providers == nil {
		auth.Providers = []string{}
	}

	result, err := s.node.AuthorizeSubject(ctx, subjectID, auth)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("subject_id", subjectID).Msg("preauthorizing subject on node")
		return "", err
	}

	return result, nil
}
