// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/internal/metrics"
)

const metricsShutdownTimeout = 5 * time.Second

// MetricsWorker serves the Prometheus scrape endpoint at /metrics.
type MetricsWorker struct {
	addr   string
	server *http.Server
	logger *logger.Logger

	mu       sync.Mutex
	listener net.Listener
	done     chan struct{}
}

func NewMetricsWorker(addr string, gatherer prometheus.Gatherer, log *logger.Logger) *MetricsWorker {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(gatherer))

	return &MetricsWorker{
		addr:   addr,
		server: &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second},
		logger: log,
	}
}

// Start binds the address and serves in the background. A bind failure is
// logged and leaves the worker idle.
func (w *MetricsWorker) Start(_ context.Context) {
	ln, err := net.Listen("tcp", w.addr)
	if err != nil {
		w.logger.Err(err).Str("func", "MetricsWorker.Start").Str("addr", w.addr).Msg("metrics endpoint disabled")
		return
	}

	w.mu.Lock()
	w.listener = ln
	w.done = make(chan struct{})
	done := w.done
	w.mu.Unlock()

	w.logger.Info().Str("addr", ln.Addr().String()).Msg("metrics endpoint listening")
	go func() {
		defer close(done)
		if err := w.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			w.logger.Err(err).Str("func", "MetricsWorker.Start").Msg("metrics endpoint stopped")
		}
	}()
}

// Addr returns the bound address, or "" when the worker is not serving.
func (w *MetricsWorker) Addr() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.listener == nil {
		return ""
	}
	return w.listener.Addr().String()
}

func (w *MetricsWorker) Stop() {
	w.mu.Lock()
	done := w.done
	w.done = nil
	w.listener = nil
	w.mu.Unlock()

	if done == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
	defer cancel()
	if err := w.server.Shutdown(ctx); err != nil {
		w.logger.Err(err).Str("func", "MetricsWorker.Stop").Msg("metrics endpoint shutdown")
	}
	<-done
}
