// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/internal/service"
	"github.com/MKhiriev/go-library-sync/models"
)

type TUI struct {
	services  *service.ClientServices
	catalog   catalogView
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, catalog catalogView, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, catalog: catalog, buildInfo: buildInfo, logger: logger}
}

// Run shows the status screen until the user quits or ctx is cancelled.
// Sync events are forwarded into the program loop for its lifetime.
func (t *TUI) Run(ctx context.Context) error {
	model := newStatusModel(ctx, t.services.Sync, t.catalog, t.buildInfo)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribe := t.services.Sync.Subscribe(func(ev models.Event) {
		p.Send(eventMsg{event: ev})
	})
	defer unsubscribe()

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		t.logger.Info().Msg("ui stopped by context")
		return nil
	}
	return err
}
