// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStateNotSaved is returned when an upsert completes without error but
	// affects no rows.
	ErrStateNotSaved = errors.New("sync state was not saved")

	// ErrInvalidTitle is returned when a title cannot be mapped onto a file
	// name inside the library (empty, or containing a path separator).
	ErrInvalidTitle = errors.New("invalid title")

	// ErrDocumentNotFound is returned by ReadDocument when the auxiliary
	// document has not been downloaded yet.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrExportFileNotFound is returned by the export storage when the
	// requested file is missing or is a directory.
	ErrExportFileNotFound = errors.New("export file not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
