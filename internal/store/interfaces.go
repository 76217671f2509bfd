// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// StateStore is a small persistent key-value store. Each sync state field is
// kept under its own key as a JSON document.
type StateStore interface {
	// Get returns the stored value. ok is false when the key was never set.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Set inserts or replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// LibraryFiles manages the on-disk layout of the offline library: the
// "library" directory with extracted titles and auxiliary documents, and the
// "tmp" directory with partial archive downloads.
type LibraryFiles interface {
	// EnsureDirs creates the library and temp directories if needed.
	EnsureDirs() error
	// ResetTemp removes every partial download.
	ResetTemp() error
	// TempPath is where the archive for title is written while in flight.
	TempPath(title string) string
	// ArchivePath is where the finished archive for title is stored.
	ArchivePath(title string) string
	// CreateTemp opens a fresh temp file for title, truncating leftovers.
	CreateTemp(title string) (io.WriteCloser, error)
	// RemoveTemp deletes the temp file for title if it exists.
	RemoveTemp(title string) error
	// Promote moves the finished temp file for title into the library,
	// replacing the previous version.
	Promote(title string) error
	// RemoveAll deletes the library and temp directories.
	RemoveAll() error
	// Exists reports whether the finished archive for title is present.
	Exists(title string) (bool, error)
	// WriteDocument atomically replaces an auxiliary document in the library.
	WriteDocument(name string, data []byte) error
	// ReadDocument returns an auxiliary document previously written.
	ReadDocument(name string) ([]byte, error)
}
