// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-library-sync/internal/config"
	"github.com/MKhiriev/go-library-sync/internal/logger"
)

func newTestHost(t *testing.T, serverURL string) *httpLibraryHost {
	t.Helper()
	adapterCfg := config.ClientAdapter{HostURL: serverURL, RequestTimeout: 2 * time.Second}
	appCfg := config.ClientApp{SchemaVersion: "3"}

	h, err := NewHTTPLibraryHost(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return h.(*httpLibraryHost)
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPLibraryHost_BaseURL(t *testing.T) {
	tests := []struct {
		name    string
		host    string
		want    string
		wantErr bool
	}{
		{name: "with scheme", host: "https://example.org/static/ios-export/", want: "https://example.org/static/ios-export/3"},
		{name: "without scheme", host: "localhost:8080", want: "http://localhost:8080/3"},
		{name: "empty", host: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHTTPLibraryHost(config.ClientAdapter{HostURL: tt.host}, config.ClientApp{SchemaVersion: "3"}, logger.Nop())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, h.(*httpLibraryHost).baseURL)
		})
	}
}

// ── GetManifest ─────────────────────────────────────────────────────────────

func TestGetManifest_CurrentShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/3/last_updated.json", r.URL.Path)
		assert.Equal(t, "no-cache", r.Header.Get("Cache-Control"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"titles":{"Genesis":"t1","Exodus":"t2"},"comment":"New commentary"}`))
	}))
	defer srv.Close()

	m, err := newTestHost(t, srv.URL).GetManifest(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Genesis", "Exodus"}, m.Titles.Keys())
	v, _ := m.Titles.Get("Exodus")
	assert.Equal(t, "t2", v)
	assert.Equal(t, "New commentary", m.Comment)
}

func TestGetManifest_LegacyShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Genesis":"t1"}`))
	}))
	defer srv.Close()

	m, err := newTestHost(t, srv.URL).GetManifest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Genesis"}, m.Titles.Keys())
	assert.Empty(t, m.Comment)
}

func TestGetManifest_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "not found", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "server error", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
		{name: "unavailable", status: http.StatusServiceUnavailable, wantErr: ErrServiceUnavailable},
		{name: "teapot", status: http.StatusTeapot, wantErr: ErrUnexpectedStatus},
		{name: "garbage", status: http.StatusOK, body: `<html>`, wantErr: ErrInvalidManifest},
		{name: "array", status: http.StatusOK, body: `["Genesis"]`, wantErr: ErrInvalidManifest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestHost(t, srv.URL).GetManifest(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetManifest_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	h := newTestHost(t, srv.URL)
	h.requestTimeout = 50 * time.Millisecond

	_, err := h.GetManifest(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHostUnreachable)
}

func TestGetManifest_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestHost(t, url).GetManifest(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHostUnreachable)
}

// ── DownloadDocument ────────────────────────────────────────────────────────

func TestDownloadDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/3/toc.json":
			_, _ = w.Write([]byte(`[{"category":"Tanakh"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	h := newTestHost(t, srv.URL)

	body, err := h.DownloadDocument(context.Background(), "toc.json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"category":"Tanakh"}]`, string(body))

	_, err = h.DownloadDocument(context.Background(), "hebrew_categories.json")
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── DownloadArchive ─────────────────────────────────────────────────────────

func TestDownloadArchive_Success(t *testing.T) {
	payload := bytes.Repeat([]byte("z"), 100_000)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/Pirkei Avot.zip", r.URL.Path)
		assert.Equal(t, "/3/Pirkei%20Avot.zip", r.URL.EscapedPath())
		w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	var (
		dst       bytes.Buffer
		lastWrote int64
		lastTotal int64
		calls     int
	)
	status, err := newTestHost(t, srv.URL).DownloadArchive(context.Background(), "Pirkei Avot", &dst,
		func(written, total int64) {
			calls++
			assert.GreaterOrEqual(t, written, lastWrote)
			lastWrote, lastTotal = written, total
		})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, payload, dst.Bytes())
	assert.Positive(t, calls)
	assert.Equal(t, int64(len(payload)), lastWrote)
	assert.Equal(t, int64(len(payload)), lastTotal)
}

func TestDownloadArchive_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such title", http.StatusNotFound)
	}))
	defer srv.Close()

	var dst bytes.Buffer
	status, err := newTestHost(t, srv.URL).DownloadArchive(context.Background(), "X", &dst, nil)

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, status)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, dst.Len())
}

func TestDownloadArchive_IgnoresMetadataTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(150 * time.Millisecond)
		_, _ = w.Write([]byte("slow but fine"))
	}))
	defer srv.Close()

	h := newTestHost(t, srv.URL)
	h.requestTimeout = 20 * time.Millisecond

	var dst bytes.Buffer
	status, err := h.DownloadArchive(context.Background(), "Genesis", &dst, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "slow but fine", dst.String())
}

func TestDownloadArchive_Cancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var dst bytes.Buffer
	status, err := newTestHost(t, srv.URL).DownloadArchive(ctx, "Genesis", &dst, nil)
	require.Error(t, err)
	assert.Zero(t, status)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// ── Ping ────────────────────────────────────────────────────────────────────

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(http.StatusNotFound)
	}))

	h := newTestHost(t, srv.URL)
	assert.NoError(t, h.Ping(context.Background()))

	srv.Close()
	assert.ErrorIs(t, h.Ping(context.Background()), ErrHostUnreachable)
}

func Test_escapeTitle(t *testing.T) {
	assert.Equal(t, "Genesis", escapeTitle("Genesis"))
	assert.Equal(t, "Pirkei%20Avot", escapeTitle("Pirkei Avot"))
	assert.Equal(t, "Rashi%20on%20Genesis%3A%201%2B2", escapeTitle("Rashi on Genesis: 1+2"))
}

func TestUserAgent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	appCfg := config.ClientApp{SchemaVersion: "3", Version: "1.4.0"}
	h, err := NewHTTPLibraryHost(config.ClientAdapter{HostURL: srv.URL, RequestTimeout: time.Second}, appCfg, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, h.Ping(context.Background()))
	assert.Equal(t, "go-library-sync/1.4.0", got)
	assert.Equal(t, "go-library-sync", userAgent(""))
}
