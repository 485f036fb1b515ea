package service

import (
	"context"

	"github.com/MKhiriev/ledger-gate/internal/bridge"
	"github.com/MKhiriev/ledger-gate/internal/config"
	"github.com/MKhiriev/ledger-gate/internal/logger"
	"github.com/MKhiriev/ledger-gate/models"
)

// Key algorithms accepted by the node.
const (
	AlgorithmEd25519   = "Ed25519"
	AlgorithmSecp256k1 = "Secp256k1"
)

type nodeService struct {
	node       bridge.Bridge
	appVersion string

	logger *logger.Logger
}

func NewNodeService(node bridge.Bridge, cfg config.App, logger *logger.Logger) (NodeService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &nodeService{
		node:       node,
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *nodeService) RegisterKeys(ctx context.Context, q models.KeysQuery) (string, error) {
	if q.Algorithm != "" && q.Algorithm != AlgorithmEd25519 && q.Algorithm != AlgorithmSecp256k1 {
		return "", ErrValidationInvalidAlgorithm
	}

	return s.node.RegisterKeys(ctx, q)
}

func (s *nodeService) GetControllerID(ctx context.Context) (string, error) {
	return s.node.ControllerID(ctx)
}

func (s *nodeService) GetPeerID(ctx context.Context) (string, error) {
	return s.node.PeerID(ctx)
}

func (s *nodeService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
