package service

import (
	"context"

	"github.com/MKhiriev/ledger-gate/internal/bridge"
	"github.com/MKhiriev/ledger-gate/internal/logger"
	"github.com/MKhiriev/ledger-gate/models"
)

type subjectsService struct {
	node bridge.Bridge

	logger *logger.Logger
}

func NewSubjectsService(node bridge.Bridge, logger *logger.Logger) SubjectsService {
	return &subjectsService{node: node, logger: logger}
}

func (s *subjectsService) GetSubjects(ctx context.Context, q models.SubjectQuery) ([]models.SubjectData, error) {
	if q.Quantity != nil && *q.Quantity < 0 {
		return nil, ErrValidationNegativeQuantity
	}

	return s.node.Subjects(ctx, q)
}

func (s *subjectsService) GetSubject(ctx context.Context, subjectID string) (models.SubjectData, error) {
	return s.node.Subject(ctx, subjectID)
}

func (s *subjectsService) GetValidationProof(ctx context.Context, subjectID string) (models.ValidationProof, error) {
	return s.node.ValidationProof(ctx, subjectID)
}

func (s *subjectsService) GetEventsOfSubject(ctx context.Context, subjectID string, q models.EventQuery) ([]models.SignedEvent, error) {
	if q.Quantity != nil && *q.Quantity < 0 {
		return nil, ErrValidationNegativeQuantity
	}

	return s.node.EventsOfSubject(ctx, subjectID, q)
}

func (s *subjectsService) GetEventOfSubject(ctx context.Context, subjectID string, sn uint64) (models.SignedEvent, error) {
	return s.node.EventOfSubject(ctx, subjectID, sn)
}
