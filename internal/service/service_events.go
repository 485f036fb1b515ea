package service

import (
	"context"

	"github.com/MKhiriev/ledger-gate/internal/bridge"
	"github.com/MKhiriev/ledger-gate/internal/logger"
	"github.com/MKhiriev/ledger-gate/models"
)

type eventsService struct {
	node bridge.Bridge

	logger *logger.Logger
}

func NewEventsService(node bridge.Bridge, logger *logger.Logger) EventsService {
	return &eventsService{node: node, logger: logger}
}

func (s *eventsService) SendEventRequest(ctx context.Context, req models.SignedEventRequest) (models.EventRequestResponse, error) {
	resp, err := s.node.SendEventRequest(ctx, req)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("sending event request to node")
		return models.EventRequestResponse{}, err
	}

	logger.FromContext(ctx).Debug().Str("request_id", resp.RequestID).Msg("event request accepted by node")
	return resp, nil
}

func (s *eventsService) GetEventRequest(ctx context.Context, requestID string) (models.SignedEventRequest, error) {
	return s.node.EventRequest(ctx, requestID)
}

func (s *eventsService) GetEventRequestState(ctx context.Context, requestID string) (models.RequestState, error) {
	return s.node.EventRequestState(ctx, requestID)
}
