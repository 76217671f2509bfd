// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-library-sync/internal/config"
	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/internal/utils"
	"github.com/MKhiriev/go-library-sync/models"
)

const (
	manifestDocument = "last_updated.json"
	archiveExt       = ".zip"
)

type httpLibraryHost struct {
	client  *utils.HTTPClient
	baseURL string

	// requestTimeout bounds metadata requests. Archive transfers rely on the
	// caller's context only.
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHTTPLibraryHost constructs an HTTP implementation of [LibraryHost]. The
// base URL is "<adapterCfg.HostURL>/<appCfg.SchemaVersion>".
//
// Returns an error if adapterCfg.HostURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPLibraryHost(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (LibraryHost, error) {
	hostURL, err := normalizeBaseURL(adapterCfg.HostURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	baseURL := hostURL
	if schema := strings.Trim(appCfg.SchemaVersion, "/ "); schema != "" {
		baseURL += "/" + url.PathEscape(schema)
	}

	client := utils.NewHTTPClient(userAgent(appCfg.Version))
	client.SetBaseURL(baseURL)

	return &httpLibraryHost{
		client:         client,
		baseURL:        baseURL,
		requestTimeout: adapterCfg.RequestTimeout,
		logger:         logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// metadataRequest returns a request bound to ctx and the metadata timeout.
// The returned cancel func must be called once the response is consumed.
func (h *httpLibraryHost) metadataRequest(ctx context.Context) (*resty.Request, context.CancelFunc) {
	cancel := context.CancelFunc(func() {})
	if h.requestTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, h.requestTimeout)
	}
	return h.client.R().SetContext(ctx), cancel
}

// GetManifest implements [LibraryHost].
func (h *httpLibraryHost) GetManifest(ctx context.Context) (models.Manifest, error) {
	req, cancel := h.metadataRequest(ctx)
	defer cancel()

	resp, err := req.
		SetHeader("Cache-Control", "no-cache").
		SetHeader("Accept", "application/json").
		Get(manifestDocument)
	if err != nil {
		return models.Manifest{}, fmt.Errorf("%w: manifest request: %w", ErrHostUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Manifest{}, fmt.Errorf("manifest request: %w", err)
	}

	var manifest models.Manifest
	if err = json.Unmarshal(resp.Body(), &manifest); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*httpLibraryHost.GetManifest").Msg("error decoding manifest")
		return models.Manifest{}, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}

	return manifest, nil
}

// DownloadDocument implements [LibraryHost].
func (h *httpLibraryHost) DownloadDocument(ctx context.Context, name string) ([]byte, error) {
	req, cancel := h.metadataRequest(ctx)
	defer cancel()

	resp, err := req.Get(url.PathEscape(name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s request: %w", ErrHostUnreachable, name, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("%s request: %w", name, err)
	}

	return resp.Body(), nil
}

// DownloadArchive implements [LibraryHost]. The body is streamed, never
// buffered in memory.
func (h *httpLibraryHost) DownloadArchive(ctx context.Context, title string, dst io.Writer, progress ProgressFunc) (int, error) {
	log := logger.FromContext(ctx)

	resp, err := h.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(h.ArchiveURL(title))
	if err != nil {
		return 0, fmt.Errorf("%w: archive %q: %w", ErrHostUnreachable, title, err)
	}

	body := resp.RawBody()
	defer body.Close()

	status := resp.StatusCode()
	if status != http.StatusOK {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(body, 4<<10))
		return status, fmt.Errorf("archive %q: %w", title, mapStatus(status, ""))
	}

	total := int64(-1)
	if resp.RawResponse != nil {
		total = resp.RawResponse.ContentLength
	}

	written, err := io.Copy(dst, &progressReader{r: body, total: total, fn: progress})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return status, ctxErr
		}
		return status, fmt.Errorf("%w: archive %q interrupted after %d bytes: %w", ErrHostUnreachable, title, written, err)
	}
	if total >= 0 && written != total {
		return status, fmt.Errorf("%w: archive %q truncated: %d of %d bytes", ErrHostUnreachable, title, written, total)
	}

	log.Debug().Str("title", title).Int64("bytes", written).Msg("archive downloaded")
	return status, nil
}

// ArchiveURL returns the absolute URL of the archive for title.
func (h *httpLibraryHost) ArchiveURL(title string) string {
	return h.baseURL + "/" + escapeTitle(title) + archiveExt
}

// Ping implements [LibraryHost]. Any HTTP response counts as reachable.
func (h *httpLibraryHost) Ping(ctx context.Context) error {
	req, cancel := h.metadataRequest(ctx)
	defer cancel()

	if _, err := req.SetHeader("Cache-Control", "no-cache").Head(manifestDocument); err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrHostUnreachable, err)
	}
	return nil
}

func userAgent(version string) string {
	if version == "" {
		return "go-library-sync"
	}
	return "go-library-sync/" + version
}

// escapeTitle percent-encodes title as a single path segment. Spaces become
// %20 and reserved characters such as ':' or '?' are escaped as well.
func escapeTitle(title string) string {
	return strings.ReplaceAll(url.QueryEscape(title), "+", "%20")
}

type progressReader struct {
	r       io.Reader
	total   int64
	written int64
	fn      ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.written += int64(n)
		if p.fn != nil {
			p.fn(p.written, p.total)
		}
	}
	return n, err
}
