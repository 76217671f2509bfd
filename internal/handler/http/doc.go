// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the export host.
//
// It serves an export directory laid out as <schema>/<name> (the manifest,
// the auxiliary documents and one archive per title) to library clients.
// Request tracing, access logging, request metrics and compression of JSON
// documents are handled by middleware before a request reaches the file
// handler.
package http
