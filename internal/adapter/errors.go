// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors mapped from library host responses.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrHostUnreachable wraps transport failures: DNS, refused connections,
	// timeouts, aborted bodies.
	ErrHostUnreachable = errors.New("library host unreachable")

	// ErrInvalidManifest is returned when last_updated.json cannot be parsed.
	ErrInvalidManifest = errors.New("invalid manifest")
)
