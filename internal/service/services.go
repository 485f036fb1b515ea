// Package service holds the thin domain services between the HTTP handlers
// and the node bridge. They validate what can be validated without ledger
// knowledge and delegate everything else to the node.
package service

import (
	"github.com/MKhiriev/ledger-gate/internal/bridge"
	"github.com/MKhiriev/ledger-gate/internal/config"
	"github.com/MKhiriev/ledger-gate/internal/logger"
)

type Services struct {
	EventsService        EventsService
	ApprovalsService     ApprovalsService
	SubjectsService      SubjectsService
	AuthorizationService AuthorizationService
	NodeService          NodeService
}

func NewServices(node bridge.Bridge, cfg config.App, logger *logger.Logger) (*Services, error) {
	nodeService, err := NewNodeService(node, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		EventsService:        NewEventsService(node, logger),
		ApprovalsService:     NewApprovalsService(node, logger),
		SubjectsService:      NewSubjectsService(node, logger),
		AuthorizationService: NewAuthorizationService(node, logger),
		NodeService:          nodeService,
	}, nil
}
