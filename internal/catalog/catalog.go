// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package catalog reads the table of contents and the category names cached
// in the library directory.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/internal/store"
)

const (
	TableOfContentsDocument = "toc.json"
	CategoriesDocument      = "hebrew_categories.json"
)

// Entry is a node of the table of contents: either a category with nested
// contents or a leaf title.
type Entry struct {
	Category   string  `json:"category,omitempty"`
	HeCategory string  `json:"heCategory,omitempty"`
	Title      string  `json:"title,omitempty"`
	HeTitle    string  `json:"heTitle,omitempty"`
	Contents   []Entry `json:"contents,omitempty"`
}

// Index is an in-memory view of the cached documents, safe for concurrent use.
type Index struct {
	files  store.LibraryFiles
	logger *logger.Logger

	mu         sync.RWMutex
	toc        []Entry
	categories map[string]string
}

func NewIndex(files store.LibraryFiles, log *logger.Logger) *Index {
	return &Index{
		files:      files,
		logger:     log,
		categories: map[string]string{},
	}
}

// Load reads whatever documents are already cached. Missing documents are
// not an error.
func (i *Index) Load() error {
	var errs []error
	for _, reload := range []func() error{i.ReloadTableOfContents, i.ReloadCategories} {
		if err := reload(); err != nil && !errors.Is(err, store.ErrDocumentNotFound) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (i *Index) ReloadTableOfContents() error {
	data, err := i.files.ReadDocument(TableOfContentsDocument)
	if err != nil {
		return err
	}

	var toc []Entry
	if err = json.Unmarshal(data, &toc); err != nil {
		i.logger.Err(err).Str("func", "Index.ReloadTableOfContents").Msg("failed to parse table of contents")
		return fmt.Errorf("parse %s: %w", TableOfContentsDocument, err)
	}

	i.mu.Lock()
	i.toc = toc
	i.mu.Unlock()
	return nil
}

func (i *Index) ReloadCategories() error {
	data, err := i.files.ReadDocument(CategoriesDocument)
	if err != nil {
		return err
	}

	categories := map[string]string{}
	if err = json.Unmarshal(data, &categories); err != nil {
		i.logger.Err(err).Str("func", "Index.ReloadCategories").Msg("failed to parse categories")
		return fmt.Errorf("parse %s: %w", CategoriesDocument, err)
	}

	i.mu.Lock()
	i.categories = categories
	i.mu.Unlock()
	return nil
}

// Titles lists leaf titles in table of contents order.
func (i *Index) Titles() []string {
	i.mu.RLock()
	defer i.mu.RUnlock()

	var out []string
	var walk func(entries []Entry)
	walk = func(entries []Entry) {
		for _, e := range entries {
			if e.Title != "" {
				out = append(out, e.Title)
			}
			walk(e.Contents)
		}
	}
	walk(i.toc)
	return out
}

// Categories lists top level categories.
func (i *Index) Categories() []string {
	i.mu.RLock()
	defer i.mu.RUnlock()

	var out []string
	for _, e := range i.toc {
		if e.Category != "" {
			out = append(out, e.Category)
		}
	}
	return out
}

// HebrewCategory returns the Hebrew name of an English category.
func (i *Index) HebrewCategory(name string) (string, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	he, ok := i.categories[name]
	return he, ok
}
