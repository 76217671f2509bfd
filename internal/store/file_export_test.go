// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExport(t *testing.T) ExportFiles {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/export/3/toc.json", []byte(`[]`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/export/3/Genesis.zip", []byte("PK genesis"), 0o644))
	require.NoError(t, fs.MkdirAll("/export/3/nested", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/secret.txt", []byte("outside"), 0o644))
	return NewExportFileStorage(fs, "/export")
}

func TestExportFiles_Open(t *testing.T) {
	s := newTestExport(t)

	f, info, err := s.Open("3", "Genesis.zip")
	require.NoError(t, err)
	defer f.Close()

	body, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "PK genesis", string(body))
	assert.Equal(t, int64(len("PK genesis")), info.Size())
}

func TestExportFiles_OpenErrors(t *testing.T) {
	s := newTestExport(t)

	tests := []struct {
		name    string
		schema  string
		file    string
		wantErr error
	}{
		{name: "missing file", schema: "3", file: "Exodus.zip", wantErr: ErrExportFileNotFound},
		{name: "missing schema", schema: "2", file: "toc.json", wantErr: ErrExportFileNotFound},
		{name: "directory", schema: "3", file: "nested", wantErr: ErrExportFileNotFound},
		{name: "parent traversal", schema: "..", file: "secret.txt", wantErr: ErrInvalidTitle},
		{name: "separator in name", schema: "3", file: "../../secret.txt", wantErr: ErrInvalidTitle},
		{name: "empty name", schema: "3", file: "", wantErr: ErrInvalidTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, info, err := s.Open(tt.schema, tt.file)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, f)
			assert.Nil(t, info)
		})
	}
}
