// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer abstraction for talking to the
// remote library host.
//
// The primary abstraction is [LibraryHost], which decouples the sync core
// from the underlying protocol. The package ships an HTTP implementation
// ([NewHTTPLibraryHost]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-library-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/library_host_mock.go -package=mock

// ProgressFunc receives the number of archive bytes written so far and the
// expected total, or -1 when the host did not announce a length.
type ProgressFunc func(written, total int64)

// LibraryHost is the remote content host serving the manifest, the two
// auxiliary catalog documents and one archive per title. All paths are
// relative to "<host>/<schema>/".
type LibraryHost interface {
	// GetManifest fetches last_updated.json bypassing caches and normalises
	// both the current and the legacy shape into [models.Manifest].
	GetManifest(ctx context.Context) (models.Manifest, error)

	// DownloadDocument fetches an auxiliary document such as toc.json and
	// returns its body verbatim.
	DownloadDocument(ctx context.Context, name string) ([]byte, error)

	// DownloadArchive streams "<title>.zip" into dst. The returned status is
	// the HTTP status of the response, or 0 if none was received. Any status
	// other than 200 is returned together with a non-nil error and nothing
	// is written to dst.
	DownloadArchive(ctx context.Context, title string, dst io.Writer, progress ProgressFunc) (status int, err error)

	// Ping reports whether the host is reachable.
	Ping(ctx context.Context) error
}
