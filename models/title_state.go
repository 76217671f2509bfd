// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// TitleState is the offline status of a single title.
type TitleState int

const (
	TitleNotDownloaded TitleState = iota
	TitleQueued
	TitleInProgress
	TitleStored
	TitleOutdated
)

func (t TitleState) String() string {
	switch t {
	case TitleQueued:
		return "queued"
	case TitleInProgress:
		return "in progress"
	case TitleStored:
		return "stored"
	case TitleOutdated:
		return "outdated"
	default:
		return "not downloaded"
	}
}

// StateOf derives the TitleState of title from s.
func (s SyncState) StateOf(title string) TitleState {
	switch {
	case slices.Contains(s.DownloadInProgress, title):
		return TitleInProgress
	case slices.Contains(s.DownloadQueue, title):
		return TitleQueued
	case s.IsUpToDate(title):
		return TitleStored
	}

	if stored, ok := s.LastDownload.Get(title); ok && stored != nil {
		return TitleOutdated
	}
	return TitleNotDownloaded
}
