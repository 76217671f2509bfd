// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-library-sync/models"
)

// Listener receives sync events. Listeners are invoked synchronously on the
// goroutine that produced the event and must not block for long.
type Listener func(models.Event)

// SyncController is the public face of the library sync client. It owns the
// sync state, the download queue and the single download pass, and reports
// every user-facing decision point as an [models.Event].
type SyncController interface {
	// Initialize loads the persisted state, checks for updates when the last
	// check is stale, and resumes downloading unless the user paused it.
	// A failed update check is returned, but the rest of Initialize still runs.
	Initialize(ctx context.Context) error

	// EnableLibraryDownload turns on offline mode: it creates the library
	// directories, sets shouldDownload, refreshes the manifest and starts
	// draining the rebuilt queue.
	EnableLibraryDownload(ctx context.Context) error

	// DisableAndDeleteLibrary stops any transfer, removes every stored archive,
	// forgets all stored versions and clears the queue.
	DisableAndDeleteLibrary(ctx context.Context) error

	// CheckForUpdates clears the queue, refreshes the manifest and either
	// rebuilds the queue and emits an update prompt, or emits an up-to-date
	// notice when notifyIfCurrent is true.
	CheckForUpdates(ctx context.Context, notifyIfCurrent bool) error

	// CheckForUpdatesIfNeeded runs CheckForUpdates(ctx, false) when offline
	// mode is on, the last check is stale and the host is reachable.
	CheckForUpdatesIfNeeded(ctx context.Context) error

	// PromptLibraryDownload emits the first-run prompt exactly once per install.
	PromptLibraryDownload(ctx context.Context) error
	// AcceptInitialDownload answers the first-run prompt with "download".
	AcceptInitialDownload(ctx context.Context) error
	// DeclineInitialDownload answers the first-run prompt with "not now".
	DeclineInitialDownload(ctx context.Context) error
	// AcceptUpdate answers the update prompt with "download".
	AcceptUpdate(ctx context.Context) error
	// DeclineUpdate answers the update prompt with "not now" and pauses.
	DeclineUpdate(ctx context.Context) error

	// RetryDownload clears the pause flag and resumes the queue.
	RetryDownload(ctx context.Context) error
	// PauseDownload stops the queue after the current transfer.
	PauseDownload(ctx context.Context) error
	// Prioritize moves a queued title to the front of the queue.
	Prioritize(ctx context.Context, title string) error

	// Subscribe registers l and returns a function that removes it.
	Subscribe(l Listener) (unsubscribe func())

	// State returns a deep copy of the current sync state.
	State() models.SyncState
	// Downloading reports whether a download pass is active.
	Downloading() bool
	// TitleState reports where a single title stands.
	TitleState(title string) models.TitleState
	// TitlesAvailable lists every title in the manifest in manifest order.
	TitlesAvailable() []string
	// TitlesDownloaded lists every title with a stored version.
	TitlesDownloaded() []string
	// UpdatesAvailable lists manifest titles whose stored version differs.
	UpdatesAvailable() []string

	// Wait blocks until the current download pass, if any, finishes.
	Wait()
	// Close stops the current download pass and waits for it to exit.
	Close()
}

// UpdateCheckJob periodically calls CheckForUpdatesIfNeeded.
type UpdateCheckJob interface {
	// Start stops any previous run and launches the ticker goroutine.
	Start(ctx context.Context, interval time.Duration)
	// Stop cancels the goroutine and blocks until it exits.
	Stop()
}

// ContentIndex is the catalog that reads the auxiliary documents cached next
// to the archives. It is reloaded each time a fresh copy is written.
type ContentIndex interface {
	ReloadTableOfContents() error
	ReloadCategories() error
}
