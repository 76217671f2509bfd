// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EventKind identifies what a sync Event reports.
type EventKind int

const (
	// EventChanged carries no payload: the state changed, re-query it.
	EventChanged EventKind = iota
	// EventProgress reports bytes written for the title being transferred.
	EventProgress
	// EventInitialDownloadPrompt asks whether to download the library.
	EventInitialDownloadPrompt
	// EventUsingOnlineLibrary follows a declined initial prompt.
	EventUsingOnlineLibrary
	// EventLibraryDownloading follows an accepted library download.
	EventLibraryDownloading
	// EventUpdatePrompt offers UpdateCount updates described by Comment.
	EventUpdatePrompt
	// EventUpdateDeferred follows a declined update prompt.
	EventUpdateDeferred
	// EventUpToDate reports that no updates are available.
	EventUpToDate
	// EventDownloadError reports a failed transfer of Title with StatusCode
	// and waits for a retry or pause decision.
	EventDownloadError
	// EventDownloadPaused follows the pause decision.
	EventDownloadPaused
)

var eventKindNames = map[EventKind]string{
	EventChanged:               "changed",
	EventProgress:              "progress",
	EventInitialDownloadPrompt: "initial_download_prompt",
	EventUsingOnlineLibrary:    "using_online_library",
	EventLibraryDownloading:    "library_downloading",
	EventUpdatePrompt:          "update_prompt",
	EventUpdateDeferred:        "update_deferred",
	EventUpToDate:              "up_to_date",
	EventDownloadError:         "download_error",
	EventDownloadPaused:        "download_paused",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is what the sync core surfaces to the rendering layer. Only the
// fields named by Kind are set.
type Event struct {
	Kind EventKind

	Title      string
	StatusCode int

	UpdateCount int
	Comment     string

	BytesWritten int64
	BytesTotal   int64
}
