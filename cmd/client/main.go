// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/go-library-sync/internal/adapter"
	"github.com/MKhiriev/go-library-sync/internal/catalog"
	"github.com/MKhiriev/go-library-sync/internal/client"
	"github.com/MKhiriev/go-library-sync/internal/config"
	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/internal/metrics"
	"github.com/MKhiriev/go-library-sync/internal/service"
	"github.com/MKhiriev/go-library-sync/internal/store"
	"github.com/MKhiriev/go-library-sync/internal/tui"
	"github.com/MKhiriev/go-library-sync/internal/workers"
	"github.com/MKhiriev/go-library-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const progressInterval = 100 * time.Millisecond

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("library-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("library-client", cfg.LogDir)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().Str("build", buildInfo.String()).Str("schema", cfg.App.SchemaVersion).Msg("library client")

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	host, err := adapter.NewHTTPLibraryHost(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create library host adapter")
	}

	index := catalog.NewIndex(storages.Files, log)
	if err = index.Load(); err != nil {
		log.Warn().Err(err).Msg("cached catalog documents are unreadable")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	services := service.NewClientServices(service.SyncDeps{
		Host:             host,
		State:            storages.State,
		Files:            storages.Files,
		Catalog:          index,
		Metrics:          metrics.NewSyncMetrics(registry),
		Schema:           cfg.App.SchemaVersion,
		Logger:           log,
		ProgressInterval: progressInterval,
	})

	bgWorkers := workers.NewClientWorkers(*cfg, services, registry, log)
	ui := tui.New(services, index, buildInfo, log)

	app, err := client.NewApp(services, ui, bgWorkers, storages, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
