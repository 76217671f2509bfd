// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-library-sync/internal/logger"

// ClientServices aggregates the client-side services.
type ClientServices struct {
	Sync           SyncController
	UpdateCheckJob UpdateCheckJob
}

func NewClientServices(deps SyncDeps) *ClientServices {
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	syncSvc := NewSyncController(deps)

	return &ClientServices{
		Sync:           syncSvc,
		UpdateCheckJob: NewUpdateCheckJob(syncSvc, deps.Logger),
	}
}
