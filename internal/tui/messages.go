// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-library-sync/models"

// eventMsg carries a sync event into the program loop.
type eventMsg struct {
	event models.Event
}

type stateLoadedMsg struct {
	state       models.SyncState
	downloading bool
}

type opDoneMsg struct {
	status string
	err    error
}
