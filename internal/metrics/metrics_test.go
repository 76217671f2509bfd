// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncMetrics_Downloads(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewSyncMetrics(reg)

	m.DownloadSucceeded(1024, 2*time.Second)
	m.DownloadSucceeded(1024, time.Second)
	m.DownloadFailed()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.downloadsTotal.WithLabelValues(ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.downloadsTotal.WithLabelValues(ResultFailure)))
	assert.Equal(t, 2048.0, testutil.ToFloat64(m.downloadedBytes))
}

func TestSyncMetrics_UpdateChecksAndGauges(t *testing.T) {
	m := NewSyncMetrics(prometheus.NewRegistry())

	m.UpdateChecked(nil)
	m.UpdateChecked(errors.New("offline"))
	m.SetQueueLength(3)
	m.SetManifestTitles(7)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.updateChecks.WithLabelValues(ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.updateChecks.WithLabelValues(ResultFailure)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.queueLength))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.manifestTitles))
}

func TestNop_DoesNotPanic(t *testing.T) {
	m := Nop()
	assert.NotPanics(t, func() {
		m.DownloadSucceeded(1, time.Millisecond)
		m.SetQueueLength(1)
	})
	// a second set registered nowhere must not collide with the first
	assert.NotPanics(t, func() { _ = Nop() })
}

func TestHandler_ExposesRegisteredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)
	m.ObserveRequest(http.MethodGet, "/{schema}/{file}", http.StatusOK, 10, time.Millisecond)

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), "library_sync_http_requests_total"))
	assert.True(t, strings.Contains(string(body), `status="200"`))
}
