// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ExportFiles is the read-only view of an export directory laid out as
// <schema>/<name>: the manifest, the auxiliary documents and one archive per
// title.
type ExportFiles interface {
	// Open returns the regular file <schema>/<name> with its metadata. The
	// caller closes the file.
	Open(schema, name string) (afero.File, os.FileInfo, error)
}

type exportFileStorage struct {
	fs afero.Fs
}

// NewExportFileStorage returns [ExportFiles] rooted at root on fs. Paths
// cannot escape root and nothing can be written through it.
func NewExportFileStorage(fs afero.Fs, root string) ExportFiles {
	return &exportFileStorage{
		fs: afero.NewReadOnlyFs(afero.NewBasePathFs(fs, root)),
	}
}

func (s *exportFileStorage) Open(schema, name string) (afero.File, os.FileInfo, error) {
	if err := validateTitle(schema); err != nil {
		return nil, nil, err
	}
	if err := validateTitle(name); err != nil {
		return nil, nil, err
	}

	path := filepath.Join(schema, name)
	f, err := s.fs.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", ErrExportFileNotFound, path)
		}
		return nil, nil, fmt.Errorf("error opening %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("error stating %s: %w", path, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, nil, fmt.Errorf("%w: %s", ErrExportFileNotFound, path)
	}

	return f, info, nil
}
