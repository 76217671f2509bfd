// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-library-sync/internal/store"
)

var errorStatusMap = map[error]int{
	store.ErrExportFileNotFound: http.StatusNotFound,
	store.ErrInvalidTitle:       http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
