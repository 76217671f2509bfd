// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-library-sync/internal/config"
	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/internal/metrics"
	"github.com/MKhiriev/go-library-sync/internal/store"
	"github.com/MKhiriev/go-library-sync/internal/utils"
)

type Handler struct {
	files   store.ExportFiles
	schema  string
	version string
	metrics *metrics.HTTPMetrics
	traces  *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler returns a Handler serving files. httpMetrics may be nil.
func NewHandler(files store.ExportFiles, cfg *config.ServerConfig, httpMetrics *metrics.HTTPMetrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		files:   files,
		schema:  cfg.SchemaVersion,
		version: cfg.Version,
		metrics: httpMetrics,
		traces:  utils.NewUUIDGenerator(),
		logger:  logger,
	}
}
