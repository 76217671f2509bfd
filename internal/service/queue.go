// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"slices"
	"time"

	"github.com/MKhiriev/go-library-sync/models"
)

// updateCheckMaxAge is how long a manifest stays fresh.
const updateCheckMaxAge = 7 * 24 * time.Hour

// titlesAvailable lists the manifest titles in manifest order.
func titlesAvailable(s models.SyncState) []string {
	return s.AvailableDownloads.Keys()
}

// titlesDownloaded lists every title with a non-null stored version.
func titlesDownloaded(s models.SyncState) []string {
	var out []string
	for _, title := range s.LastDownload.Keys() {
		if v, _ := s.LastDownload.Get(title); v != nil {
			out = append(out, title)
		}
	}
	return out
}

// updatesAvailable lists manifest titles whose stored version differs from
// the advertised one, never-downloaded titles included.
func updatesAvailable(s models.SyncState) []string {
	var out []string
	for _, title := range s.AvailableDownloads.Keys() {
		if !s.IsUpToDate(title) {
			out = append(out, title)
		}
	}
	return out
}

// rebuildQueue drops queued titles that left the manifest or are already up
// to date, then appends every outdated title that is neither queued nor in
// progress. Existing order is preserved and the result is idempotent.
func rebuildQueue(s *models.SyncState) {
	queue := make([]string, 0, len(s.DownloadQueue))
	for _, title := range s.DownloadQueue {
		if s.AvailableDownloads.Has(title) && !s.IsUpToDate(title) && !slices.Contains(queue, title) {
			queue = append(queue, title)
		}
	}

	for _, title := range updatesAvailable(*s) {
		if slices.Contains(queue, title) || slices.Contains(s.DownloadInProgress, title) {
			continue
		}
		queue = append(queue, title)
	}

	s.DownloadQueue = queue
}

// prioritize moves title to the front of the queue. It reports false when the
// title is not queued.
func prioritize(s *models.SyncState, title string) bool {
	i := slices.Index(s.DownloadQueue, title)
	if i < 0 {
		return false
	}
	queue := make([]string, 0, len(s.DownloadQueue))
	queue = append(queue, title)
	queue = append(queue, s.DownloadQueue[:i]...)
	queue = append(queue, s.DownloadQueue[i+1:]...)
	s.DownloadQueue = queue
	return true
}

// requeueInProgress moves interrupted titles to the back of the queue.
func requeueInProgress(s *models.SyncState) {
	for _, title := range s.DownloadInProgress {
		if !slices.Contains(s.DownloadQueue, title) {
			s.DownloadQueue = append(s.DownloadQueue, title)
		}
	}
	s.DownloadInProgress = []string{}
}

// startTransfer pops title from the queue and marks it in progress.
func startTransfer(s *models.SyncState, title string) {
	s.DownloadQueue = removeTitle(s.DownloadQueue, title)
	s.DownloadInProgress = append([]string{title}, removeTitle(s.DownloadInProgress, title)...)
}

// popNext drops titles already stored at the advertised version from the
// front of the queue and starts the transfer of the first one that is not.
func popNext(s *models.SyncState) (string, bool) {
	for len(s.DownloadQueue) > 0 {
		title := s.DownloadQueue[0]
		if !s.IsUpToDate(title) {
			startTransfer(s, title)
			return title, true
		}
		s.DownloadQueue = removeTitle(s.DownloadQueue, title)
	}
	return "", false
}

// finishTransfer records a stored archive at the advertised version.
func finishTransfer(s *models.SyncState, title string) {
	s.DownloadInProgress = removeTitle(s.DownloadInProgress, title)
	if v, ok := s.AvailableDownloads.Get(title); ok {
		s.LastDownload.Set(title, &v)
	}
}

func clearQueue(s *models.SyncState) {
	s.DownloadQueue = []string{}
	s.DownloadInProgress = []string{}
}

// isUpdateCheckNeeded reports whether the manifest is missing, older than a
// week or was fetched for another schema version.
func isUpdateCheckNeeded(s models.SyncState, now time.Time, schema string) bool {
	if s.LastUpdateCheck == nil {
		return true
	}
	if s.LastUpdateSchema == nil || *s.LastUpdateSchema != schema {
		return true
	}
	return now.After(s.LastUpdateCheck.Add(updateCheckMaxAge))
}

func removeTitle(list []string, title string) []string {
	out := make([]string, 0, len(list))
	for _, t := range list {
		if t != title {
			out = append(out, t)
		}
	}
	return out
}
