package main

import (
	"fmt"

	"github.com/MKhiriev/ledger-gate/internal/bridge"
	"github.com/MKhiriev/ledger-gate/internal/config"
	"github.com/MKhiriev/ledger-gate/internal/handler"
	"github.com/MKhiriev/ledger-gate/internal/logger"
	"github.com/MKhiriev/ledger-gate/internal/ratelimit"
	"github.com/MKhiriev/ledger-gate/internal/server"
	"github.com/MKhiriev/ledger-gate/internal/service"
	"github.com/MKhiriev/ledger-gate/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("ledger-gate")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	node := bridge.NewHTTPBridge(bridge.Config{
		BaseURL: cfg.Bridge.URL,
		Timeout: cfg.Bridge.Timeout,
	})

	services, err := service.NewServices(node, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	tracker := ratelimit.NewTracker(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)

	handlers, err := handler.NewHandlers(services, tracker, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	sweeper := workers.NewTrackerSweeper(tracker, cfg.RateLimit.SweepInterval, cfg.RateLimit.IdleTTL, log)
	workers.NewWorkers(sweeper).Run()
	defer sweeper.Stop()

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
