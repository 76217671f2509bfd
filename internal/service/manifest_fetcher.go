// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-library-sync/internal/adapter"
	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/internal/metrics"
	"github.com/MKhiriev/go-library-sync/internal/store"
	"github.com/MKhiriev/go-library-sync/models"
)

const (
	TableOfContentsDocument = "toc.json"
	CategoriesDocument      = "hebrew_categories.json"
)

// manifestFetcher refreshes the manifest and the two auxiliary documents.
type manifestFetcher struct {
	host     adapter.LibraryHost
	files    store.LibraryFiles
	catalog  ContentIndex
	keeper   *stateKeeper
	notifier *notifier
	metrics  *metrics.SyncMetrics
	schema   string
	now      func() time.Time
	logger   *logger.Logger
}

// Refresh fetches the manifest, the table of contents and the categories
// concurrently. A successful manifest is applied even when an auxiliary fetch
// fails; the check timestamp only moves when all three succeed.
func (f *manifestFetcher) Refresh(ctx context.Context) (err error) {
	defer func() { f.metrics.UpdateChecked(err) }()

	var (
		g    errgroup.Group
		errs [3]error
	)
	g.Go(func() error {
		errs[0] = f.refreshManifest(ctx)
		return errs[0]
	})
	g.Go(func() error {
		errs[1] = f.refreshDocument(ctx, TableOfContentsDocument, f.catalog.ReloadTableOfContents)
		return errs[1]
	})
	g.Go(func() error {
		errs[2] = f.refreshDocument(ctx, CategoriesDocument, f.catalog.ReloadCategories)
		return errs[2]
	})

	if g.Wait() != nil {
		err = errors.Join(errs[:]...)
		f.logger.Err(err).Str("func", "manifestFetcher.Refresh").Msg("update check failed")
		return fmt.Errorf("%w: %w", ErrUpdateCheckFailed, err)
	}

	checkedAt := f.now().UTC()
	schema := f.schema
	err = f.keeper.Update(ctx, func(s *models.SyncState) {
		s.LastUpdateCheck = &checkedAt
		s.LastUpdateSchema = &schema
	}, models.KeyLastUpdateCheck, models.KeyLastUpdateSchema)
	if err != nil {
		f.logger.Err(err).Str("func", "manifestFetcher.Refresh").Msg("failed to persist update check time")
	}

	f.notifier.Changed()
	return nil
}

func (f *manifestFetcher) refreshManifest(ctx context.Context) error {
	manifest, err := f.host.GetManifest(ctx)
	if err != nil {
		return fmt.Errorf("manifest: %w", err)
	}

	keys := []string{models.KeyAvailableDownloads, models.KeyLastDownload}
	if manifest.Comment != "" {
		keys = append(keys, models.KeyUpdateComment)
	}

	err = f.keeper.Update(ctx, func(s *models.SyncState) {
		s.AvailableDownloads = manifest.Titles.Clone()
		if manifest.Comment != "" {
			s.UpdateComment = manifest.Comment
		}
		for _, title := range manifest.Titles.Keys() {
			if !s.LastDownload.Has(title) {
				s.LastDownload.Set(title, nil)
			}
		}
	}, keys...)
	if err != nil {
		f.logger.Err(err).Str("func", "manifestFetcher.refreshManifest").Msg("failed to persist manifest")
	}

	f.metrics.SetManifestTitles(manifest.Titles.Len())
	f.logger.Info().Int("titles", manifest.Titles.Len()).Msg("manifest refreshed")
	return nil
}

func (f *manifestFetcher) refreshDocument(ctx context.Context, name string, reload func() error) error {
	data, err := f.host.DownloadDocument(ctx, name)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err = f.files.WriteDocument(name, data); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err = reload(); err != nil {
		return fmt.Errorf("reload %s: %w", name, err)
	}
	return nil
}
