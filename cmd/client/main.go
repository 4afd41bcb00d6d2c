package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/address-search/internal/adapter"
	"github.com/MKhiriev/address-search/internal/client"
	"github.com/MKhiriev/address-search/internal/config"
	"github.com/MKhiriev/address-search/internal/logger"
	"github.com/MKhiriev/address-search/internal/search"
	"github.com/MKhiriev/address-search/internal/store"
	"github.com/MKhiriev/address-search/internal/tui"
	"github.com/MKhiriev/address-search/internal/workers"
	"github.com/MKhiriev/address-search/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewClientLogger("address-search-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	lookup, err := adapter.NewHTTPLookupAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create lookup adapter")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if err := localStorage.Close(); err != nil {
			log.Err(err).Msg("error closing local storage")
		}
	}()

	persister := workers.NewLastResultsPersister(localStorage.LastResultsRepository, cfg.Workers.QueueSize, log)

	notifier := tui.NewNotifier()
	coordinator, err := search.NewCoordinator(lookup, notifier, cfg.Search, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create search coordinator")
	}

	ui := tui.New(coordinator, notifier, cfg.Search, buildInfo, log)

	app, err := client.NewApp(coordinator, localStorage.LastResultsRepository, persister, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
	}
}
