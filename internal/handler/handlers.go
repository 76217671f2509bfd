// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-library-sync/internal/config"
	"github.com/MKhiriev/go-library-sync/internal/handler/http"
	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/internal/metrics"
	"github.com/MKhiriev/go-library-sync/internal/store"
)

// Handlers groups the transport handlers of the export host.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(files store.ExportFiles, cfg *config.ServerConfig, httpMetrics *metrics.HTTPMetrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(files, cfg, httpMetrics, logger),
	}, nil
}
