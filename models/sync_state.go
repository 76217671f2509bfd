// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// Persisted key names. Every SyncState field lives under its own key in the
// state store so that a single mutation rewrites a single value.
const (
	KeyShouldDownload     = "shouldDownload"
	KeyDownloadPaused     = "downloadPaused"
	KeyLastDownload       = "lastDownload"
	KeyAvailableDownloads = "availableDownloads"
	KeyUpdateComment      = "updateComment"
	KeyDownloadQueue      = "downloadQueue"
	KeyDownloadInProgress = "downloadInProgress"
	KeyLastUpdateCheck    = "lastUpdateCheck"
	KeyLastUpdateSchema   = "lastUpdateSchema"

	// KeyLibraryDownloadPrompted is a one-time flag outside of SyncState that
	// records whether the user was already offered the library download.
	KeyLibraryDownloadPrompted = "libraryDownloadPrompted"
)

// SyncStateKeys lists the persisted SyncState keys in load order.
var SyncStateKeys = []string{
	KeyShouldDownload,
	KeyDownloadPaused,
	KeyLastDownload,
	KeyAvailableDownloads,
	KeyUpdateComment,
	KeyDownloadQueue,
	KeyDownloadInProgress,
	KeyLastUpdateCheck,
	KeyLastUpdateSchema,
}

// SyncState is the durable aggregate of the offline library.
type SyncState struct {
	// ShouldDownload is the master switch. False means online-only mode.
	ShouldDownload bool `json:"shouldDownload"`

	// DownloadPaused suspends queue draining without clearing the queue.
	DownloadPaused bool `json:"downloadPaused"`

	// LastDownload maps a title to the version stored locally. A nil value
	// means the title is known but was never downloaded.
	LastDownload OrderedMap[*string] `json:"lastDownload"`

	// AvailableDownloads is the last fetched manifest snapshot.
	AvailableDownloads OrderedMap[string] `json:"availableDownloads"`

	// UpdateComment is the free-text note of the latest manifest.
	UpdateComment string `json:"updateComment"`

	// DownloadQueue holds titles waiting for transfer, front first.
	DownloadQueue []string `json:"downloadQueue"`

	// DownloadInProgress holds titles whose transfer is active or was active
	// when the process stopped.
	DownloadInProgress []string `json:"downloadInProgress"`

	LastUpdateCheck  *time.Time `json:"lastUpdateCheck"`
	LastUpdateSchema *string    `json:"lastUpdateSchema"`
}

// Clone returns a deep copy of s.
func (s SyncState) Clone() SyncState {
	c := s
	c.LastDownload = s.LastDownload.Clone()
	c.AvailableDownloads = s.AvailableDownloads.Clone()
	c.DownloadQueue = slices.Clone(s.DownloadQueue)
	c.DownloadInProgress = slices.Clone(s.DownloadInProgress)
	if s.LastUpdateCheck != nil {
		t := *s.LastUpdateCheck
		c.LastUpdateCheck = &t
	}
	if s.LastUpdateSchema != nil {
		v := *s.LastUpdateSchema
		c.LastUpdateSchema = &v
	}
	return c
}

// IsUpToDate reports whether the locally stored version of title equals the
// version offered by the manifest.
func (s SyncState) IsUpToDate(title string) bool {
	available, ok := s.AvailableDownloads.Get(title)
	if !ok {
		return false
	}
	stored, _ := s.LastDownload.Get(title)
	return stored != nil && *stored == available
}

// FieldValue returns the value persisted under key, or nil for an unknown key.
func (s *SyncState) FieldValue(key string) any {
	switch key {
	case KeyShouldDownload:
		return s.ShouldDownload
	case KeyDownloadPaused:
		return s.DownloadPaused
	case KeyLastDownload:
		return s.LastDownload
	case KeyAvailableDownloads:
		return s.AvailableDownloads
	case KeyUpdateComment:
		return s.UpdateComment
	case KeyDownloadQueue:
		return s.DownloadQueue
	case KeyDownloadInProgress:
		return s.DownloadInProgress
	case KeyLastUpdateCheck:
		return s.LastUpdateCheck
	case KeyLastUpdateSchema:
		return s.LastUpdateSchema
	}
	return nil
}

// FieldPointer returns a pointer suitable for json.Unmarshal of the value
// stored under key, or nil for an unknown key.
func (s *SyncState) FieldPointer(key string) any {
	switch key {
	case KeyShouldDownload:
		return &s.ShouldDownload
	case KeyDownloadPaused:
		return &s.DownloadPaused
	case KeyLastDownload:
		return &s.LastDownload
	case KeyAvailableDownloads:
		return &s.AvailableDownloads
	case KeyUpdateComment:
		return &s.UpdateComment
	case KeyDownloadQueue:
		return &s.DownloadQueue
	case KeyDownloadInProgress:
		return &s.DownloadInProgress
	case KeyLastUpdateCheck:
		return &s.LastUpdateCheck
	case KeyLastUpdateSchema:
		return &s.LastUpdateSchema
	}
	return nil
}

// ResetField restores the default value of the field stored under key.
func (s *SyncState) ResetField(key string) {
	var zero SyncState
	switch key {
	case KeyShouldDownload:
		s.ShouldDownload = zero.ShouldDownload
	case KeyDownloadPaused:
		s.DownloadPaused = zero.DownloadPaused
	case KeyLastDownload:
		s.LastDownload = zero.LastDownload
	case KeyAvailableDownloads:
		s.AvailableDownloads = zero.AvailableDownloads
	case KeyUpdateComment:
		s.UpdateComment = zero.UpdateComment
	case KeyDownloadQueue:
		s.DownloadQueue = zero.DownloadQueue
	case KeyDownloadInProgress:
		s.DownloadInProgress = zero.DownloadInProgress
	case KeyLastUpdateCheck:
		s.LastUpdateCheck = zero.LastUpdateCheck
	case KeyLastUpdateSchema:
		s.LastUpdateSchema = zero.LastUpdateSchema
	}
}
