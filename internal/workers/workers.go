// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-library-sync/internal/config"
	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewClientWorkers builds the client background workers: the periodic update
// check and, when an address is configured, the metrics endpoint.
func NewClientWorkers(cfg config.ClientConfig, services *service.ClientServices, gatherer prometheus.Gatherer, log *logger.Logger) *Workers {
	ws := []Worker{
		&updateCheckWorker{job: services.UpdateCheckJob, interval: cfg.Workers.UpdateCheckInterval},
	}
	if cfg.MetricsAddress != "" {
		ws = append(ws, NewMetricsWorker(cfg.MetricsAddress, gatherer, log))
	}
	return &Workers{workers: ws}
}

// Start starts every worker in order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

type updateCheckWorker struct {
	job      service.UpdateCheckJob
	interval time.Duration
}

func (w *updateCheckWorker) Start(ctx context.Context) {
	w.job.Start(ctx, w.interval)
}

func (w *updateCheckWorker) Stop() {
	w.job.Stop()
}
