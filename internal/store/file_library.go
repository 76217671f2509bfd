// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const (
	libraryDirName = "library"
	tempDirName    = "tmp"
	archiveExt     = ".zip"
)

// libraryFileStorage is the afero-backed implementation of [LibraryFiles].
//
// Layout under root:
//
//	library/<title>.zip      finished archives
//	library/<document>.json  cached auxiliary documents
//	tmp/<title>.zip          in-flight downloads
type libraryFileStorage struct {
	fs   afero.Fs
	root string
}

// NewLibraryFileStorage returns [LibraryFiles] rooted at root on fs.
func NewLibraryFileStorage(fs afero.Fs, root string) LibraryFiles {
	return &libraryFileStorage{
		fs:   fs,
		root: root,
	}
}

func (s *libraryFileStorage) libraryDir() string { return filepath.Join(s.root, libraryDirName) }
func (s *libraryFileStorage) tempDir() string    { return filepath.Join(s.root, tempDirName) }

func (s *libraryFileStorage) EnsureDirs() error {
	for _, dir := range []string{s.libraryDir(), s.tempDir()} {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating %s: %w", dir, err)
		}
	}
	return nil
}

// ResetTemp wipes and recreates the temp directory.
func (s *libraryFileStorage) ResetTemp() error {
	if err := s.fs.RemoveAll(s.tempDir()); err != nil {
		return fmt.Errorf("error removing temp dir: %w", err)
	}
	if err := s.fs.MkdirAll(s.tempDir(), 0o755); err != nil {
		return fmt.Errorf("error creating temp dir: %w", err)
	}
	return nil
}

func (s *libraryFileStorage) TempPath(title string) string {
	return filepath.Join(s.tempDir(), title+archiveExt)
}

func (s *libraryFileStorage) ArchivePath(title string) string {
	return filepath.Join(s.libraryDir(), title+archiveExt)
}

func (s *libraryFileStorage) CreateTemp(title string) (io.WriteCloser, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := s.fs.MkdirAll(s.tempDir(), 0o755); err != nil {
		return nil, fmt.Errorf("error creating temp dir: %w", err)
	}

	f, err := s.fs.OpenFile(s.TempPath(title), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("error opening temp file for %q: %w", title, err)
	}
	return f, nil
}

func (s *libraryFileStorage) RemoveTemp(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	if err := s.fs.Remove(s.TempPath(title)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error removing temp file for %q: %w", title, err)
	}
	return nil
}

// Promote replaces library/<title>.zip with tmp/<title>.zip.
func (s *libraryFileStorage) Promote(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	if err := s.fs.MkdirAll(s.libraryDir(), 0o755); err != nil {
		return fmt.Errorf("error creating library dir: %w", err)
	}

	dst := s.ArchivePath(title)
	if err := s.fs.Remove(dst); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error removing previous archive for %q: %w", title, err)
	}
	if err := s.fs.Rename(s.TempPath(title), dst); err != nil {
		return fmt.Errorf("error moving archive for %q into library: %w", title, err)
	}
	return nil
}

func (s *libraryFileStorage) RemoveAll() error {
	var errs []error
	for _, dir := range []string{s.libraryDir(), s.tempDir()} {
		if err := s.fs.RemoveAll(dir); err != nil {
			errs = append(errs, fmt.Errorf("error removing %s: %w", dir, err))
		}
	}
	return errors.Join(errs...)
}

func (s *libraryFileStorage) Exists(title string) (bool, error) {
	if err := validateTitle(title); err != nil {
		return false, err
	}
	return afero.Exists(s.fs, s.ArchivePath(title))
}

// WriteDocument writes data next to the archives through a temp file and a
// rename, so readers never observe a half-written document.
func (s *libraryFileStorage) WriteDocument(name string, data []byte) error {
	if err := validateTitle(name); err != nil {
		return err
	}
	if err := s.fs.MkdirAll(s.libraryDir(), 0o755); err != nil {
		return fmt.Errorf("error creating library dir: %w", err)
	}

	dst := filepath.Join(s.libraryDir(), name)
	tmp := dst + ".part"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", name, err)
	}
	if err := s.fs.Rename(tmp, dst); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("error replacing %s: %w", name, err)
	}
	return nil
}

func (s *libraryFileStorage) ReadDocument(name string) ([]byte, error) {
	if err := validateTitle(name); err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(s.fs, filepath.Join(s.libraryDir(), name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", name, err)
	}
	return data, nil
}

// validateTitle rejects names that would escape the library directory.
func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" ||
		strings.ContainsAny(title, `/\`) ||
		title == "." || title == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidTitle, title)
	}
	return nil
}
