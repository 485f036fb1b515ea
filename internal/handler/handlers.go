package handler

import (
	"github.com/MKhiriev/ledger-gate/internal/config"
	"github.com/MKhiriev/ledger-gate/internal/handler/http"
	"github.com/MKhiriev/ledger-gate/internal/logger"
	"github.com/MKhiriev/ledger-gate/internal/ratelimit"
	"github.com/MKhiriev/ledger-gate/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, tracker *ratelimit.Tracker, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, tracker, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
