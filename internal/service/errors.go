// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrDownloadFailed matches every [DownloadError].
	ErrDownloadFailed = errors.New("archive download failed")

	ErrUpdateCheckFailed = errors.New("update check failed")
	ErrControllerClosed  = errors.New("sync controller is closed")
)

// DownloadError describes a failed archive transfer. StatusCode is the HTTP
// status of the response, or 0 when no response was received.
type DownloadError struct {
	StatusCode int
	Title      string
	Err        error
}

func (e *DownloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d - %s: %v", e.StatusCode, e.Title, e.Err)
	}
	return fmt.Sprintf("%d - %s", e.StatusCode, e.Title)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

func (e *DownloadError) Is(target error) bool {
	return target == ErrDownloadFailed
}
