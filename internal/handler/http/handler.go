package http

import (
	"github.com/MKhiriev/ledger-gate/internal/logger"
	"github.com/MKhiriev/ledger-gate/internal/ratelimit"
	"github.com/MKhiriev/ledger-gate/internal/service"
)

type Handler struct {
	services *service.Services
	tracker  *ratelimit.Tracker

	logger *logger.Logger
}

func NewHandler(services *service.Services, tracker *ratelimit.Tracker, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		tracker:  tracker,
		logger:   logger,
	}
}
