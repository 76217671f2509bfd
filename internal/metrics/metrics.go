// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes Prometheus instrumentation for the library sync
// client and the export host.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "library_sync"

// Download results used as label values.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// SyncMetrics groups the client-side collectors.
type SyncMetrics struct {
	downloadsTotal   *prometheus.CounterVec
	downloadedBytes  prometheus.Counter
	downloadDuration prometheus.Histogram
	updateChecks     *prometheus.CounterVec
	queueLength      prometheus.Gauge
	manifestTitles   prometheus.Gauge
}

// NewSyncMetrics registers the client collectors on reg. A nil reg yields
// collectors that are not registered anywhere.
func NewSyncMetrics(reg prometheus.Registerer) *SyncMetrics {
	factory := promauto.With(reg)

	return &SyncMetrics{
		downloadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "archive_downloads_total",
				Help:      "Total number of archive transfers by result",
			},
			[]string{"result"},
		),
		downloadedBytes: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "archive_bytes_downloaded_total",
				Help:      "Total bytes written to finished archives",
			},
		),
		downloadDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "archive_download_duration_seconds",
				Help:      "Archive transfer duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
			},
		),
		updateChecks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "update_checks_total",
				Help:      "Total number of manifest refreshes by result",
			},
			[]string{"result"},
		),
		queueLength: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "download_queue_length",
				Help:      "Titles waiting in the download queue",
			},
		),
		manifestTitles: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "manifest_titles",
				Help:      "Titles listed in the last fetched manifest",
			},
		),
	}
}

// Nop returns collectors registered nowhere.
func Nop() *SyncMetrics {
	return NewSyncMetrics(nil)
}

// DownloadSucceeded records a finished archive transfer.
func (m *SyncMetrics) DownloadSucceeded(bytes int64, elapsed time.Duration) {
	m.downloadsTotal.WithLabelValues(ResultSuccess).Inc()
	m.downloadedBytes.Add(float64(bytes))
	m.downloadDuration.Observe(elapsed.Seconds())
}

// DownloadFailed records a failed archive transfer.
func (m *SyncMetrics) DownloadFailed() {
	m.downloadsTotal.WithLabelValues(ResultFailure).Inc()
}

// UpdateChecked records a manifest refresh.
func (m *SyncMetrics) UpdateChecked(err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	m.updateChecks.WithLabelValues(result).Inc()
}

func (m *SyncMetrics) SetQueueLength(n int) {
	m.queueLength.Set(float64(n))
}

func (m *SyncMetrics) SetManifestTitles(n int) {
	m.manifestTitles.Set(float64(n))
}

// HTTPMetrics groups the export host collectors.
type HTTPMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	bytesServed     prometheus.Counter
}

func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	factory := promauto.With(reg)

	return &HTTPMetrics{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		bytesServed: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_bytes_served_total",
				Help:      "Total response bytes written",
			},
		),
	}
}

// ObserveRequest records one served request.
func (m *HTTPMetrics) ObserveRequest(method, route string, status int, bytes int64, elapsed time.Duration) {
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
	m.bytesServed.Add(float64(bytes))
}

// Handler returns the scrape endpoint for g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
