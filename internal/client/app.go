// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/internal/service"
	"github.com/MKhiriev/go-library-sync/internal/workers"
)

type App struct {
	services *service.ClientServices
	ui       UI
	workers  workers.Worker
	storage  io.Closer

	logger *logger.Logger
}

// NewApp assembles the client runtime. workers and storage may be nil.
func NewApp(services *service.ClientServices, ui UI, w workers.Worker, storage io.Closer, logger *logger.Logger) (*App, error) {
	if services == nil || services.Sync == nil {
		return nil, errNoServices
	}
	if ui == nil {
		return nil, errNoUI
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  w,
		storage:  storage,
		logger:   logger,
	}, nil
}

// Run blocks until the UI exits or the process receives SIGINT/SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Msg("client starting")

	if a.workers != nil {
		a.workers.Start(ctx)
	}
	defer a.shutdown()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

// shutdown stops the workers before the sync core so that no update check
// starts against a closed controller, and closes storage last.
func (a *App) shutdown() {
	if a.workers != nil {
		a.workers.Stop()
	}

	a.services.Sync.Close()

	if a.storage != nil {
		if err := a.storage.Close(); err != nil {
			a.logger.Err(err).Str("func", "*App.shutdown").Msg("error closing storage")
		}
	}

	a.logger.Info().Msg("client stopped")
}
