// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-library-sync/internal/adapter"
	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/internal/metrics"
	"github.com/MKhiriev/go-library-sync/internal/store"
	"github.com/MKhiriev/go-library-sync/internal/utils"
	"github.com/MKhiriev/go-library-sync/models"
)

// SyncDeps are the collaborators of the sync controller.
type SyncDeps struct {
	Host    adapter.LibraryHost
	State   store.StateStore
	Files   store.LibraryFiles
	Catalog ContentIndex
	Metrics *metrics.SyncMetrics
	Schema  string
	Logger  *logger.Logger

	// Now defaults to time.Now.
	Now func() time.Time
	// ProgressInterval throttles progress events. Zero publishes every chunk.
	ProgressInterval time.Duration
}

type syncController struct {
	keeper   *stateKeeper
	notifier *notifier
	fetcher  *manifestFetcher
	engine   *downloadEngine
	host     adapter.LibraryHost
	files    store.LibraryFiles
	schema   string
	now      func() time.Time
	logger   *logger.Logger

	// checkMu keeps manifest refreshes from overlapping.
	checkMu sync.Mutex
}

// NewSyncController wires the state keeper, manifest fetcher, queue and
// download engine around deps. Call Initialize before anything else.
func NewSyncController(deps SyncDeps) SyncController {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	m := deps.Metrics
	if m == nil {
		m = metrics.Nop()
	}
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	keeper := newStateKeeper(deps.State, log)
	n := newNotifier()

	return &syncController{
		keeper:   keeper,
		notifier: n,
		fetcher: &manifestFetcher{
			host:     deps.Host,
			files:    deps.Files,
			catalog:  deps.Catalog,
			keeper:   keeper,
			notifier: n,
			metrics:  m,
			schema:   deps.Schema,
			now:      now,
			logger:   log,
		},
		engine: &downloadEngine{
			keeper:           keeper,
			files:            deps.Files,
			host:             deps.Host,
			notifier:         n,
			metrics:          m,
			uuid:             utils.NewUUIDGenerator(),
			now:              now,
			logger:           log,
			progressInterval: deps.ProgressInterval,
		},
		host:   deps.Host,
		files:  deps.Files,
		schema: deps.Schema,
		now:    now,
		logger: log,
	}
}

func (c *syncController) Initialize(ctx context.Context) error {
	c.keeper.Load(ctx)

	state := c.keeper.Snapshot()
	c.logger.Info().
		Int("available", state.AvailableDownloads.Len()).
		Int("downloaded", len(titlesDownloaded(state))).
		Int("updates", len(updatesAvailable(state))).
		Msg("sync state loaded")

	checkErr := c.CheckForUpdatesIfNeeded(ctx)

	if !c.keeper.Snapshot().DownloadPaused {
		if err := c.engine.Resume(ctx); err != nil {
			c.logger.Err(err).Str("func", "syncController.Initialize").Msg("failed to resume downloads")
		}
	}

	if checkErr != nil {
		return fmt.Errorf("initialize: %w", checkErr)
	}
	return nil
}

func (c *syncController) EnableLibraryDownload(ctx context.Context) error {
	if err := c.files.EnsureDirs(); err != nil {
		return fmt.Errorf("enable library download: %w", err)
	}

	err := c.keeper.Update(ctx, func(s *models.SyncState) {
		s.ShouldDownload = true
	}, models.KeyShouldDownload)
	if err != nil {
		c.logger.Err(err).Str("func", "syncController.EnableLibraryDownload").Msg("failed to persist offline mode")
	}

	c.engine.markPending(true)
	c.notifier.Publish(models.Event{Kind: models.EventLibraryDownloading})
	c.notifier.Changed()

	if err = c.refresh(ctx); err != nil {
		c.engine.markPending(false)
		c.notifier.Changed()
		return fmt.Errorf("enable library download: %w", err)
	}

	if err = c.rebuildQueue(ctx); err != nil {
		c.logger.Err(err).Str("func", "syncController.EnableLibraryDownload").Msg("failed to persist queue")
	}
	return c.engine.Resume(ctx)
}

func (c *syncController) DisableAndDeleteLibrary(ctx context.Context) error {
	c.engine.Halt()

	rmErr := c.files.RemoveAll()
	if rmErr != nil {
		c.logger.Err(rmErr).Str("func", "syncController.DisableAndDeleteLibrary").Msg("failed to remove library files")
	}

	err := c.keeper.Update(ctx, func(s *models.SyncState) {
		s.LastDownload = models.OrderedMap[*string]{}
		s.ShouldDownload = false
		clearQueue(s)
	}, models.KeyLastDownload, models.KeyShouldDownload, models.KeyDownloadQueue, models.KeyDownloadInProgress)
	c.engine.markPending(false)

	c.notifier.Changed()

	if rmErr != nil {
		return fmt.Errorf("delete library: %w", rmErr)
	}
	return err
}

func (c *syncController) CheckForUpdates(ctx context.Context, notifyIfCurrent bool) error {
	if err := c.engine.ClearQueue(ctx); err != nil {
		c.logger.Err(err).Str("func", "syncController.CheckForUpdates").Msg("failed to clear queue")
	}

	if err := c.refresh(ctx); err != nil {
		return err
	}

	state := c.keeper.Snapshot()
	updates := updatesAvailable(state)
	if len(updates) > 0 {
		if err := c.rebuildQueue(ctx); err != nil {
			c.logger.Err(err).Str("func", "syncController.CheckForUpdates").Msg("failed to persist queue")
		}
		c.notifier.Publish(models.Event{
			Kind:        models.EventUpdatePrompt,
			UpdateCount: len(updates),
			Comment:     state.UpdateComment,
		})
		return nil
	}

	if notifyIfCurrent {
		c.notifier.Publish(models.Event{Kind: models.EventUpToDate})
	}
	return nil
}

func (c *syncController) CheckForUpdatesIfNeeded(ctx context.Context) error {
	state := c.keeper.Snapshot()
	if !state.ShouldDownload || !isUpdateCheckNeeded(state, c.now(), c.schema) {
		return nil
	}

	if err := c.host.Ping(ctx); err != nil {
		c.logger.Info().Err(err).Msg("library host offline, skipping update check")
		return nil
	}
	return c.CheckForUpdates(ctx, false)
}

func (c *syncController) PromptLibraryDownload(_ context.Context) error {
	if c.keeper.Prompted() {
		return nil
	}
	c.notifier.Publish(models.Event{Kind: models.EventInitialDownloadPrompt})
	return nil
}

func (c *syncController) AcceptInitialDownload(ctx context.Context) error {
	if err := c.keeper.SetPrompted(ctx); err != nil {
		c.logger.Err(err).Str("func", "syncController.AcceptInitialDownload").Msg("failed to persist prompt flag")
	}
	return c.EnableLibraryDownload(ctx)
}

func (c *syncController) DeclineInitialDownload(ctx context.Context) error {
	err := c.keeper.SetPrompted(ctx)
	c.notifier.Publish(models.Event{Kind: models.EventUsingOnlineLibrary})
	return err
}

func (c *syncController) AcceptUpdate(ctx context.Context) error {
	if err := c.rebuildQueue(ctx); err != nil {
		c.logger.Err(err).Str("func", "syncController.AcceptUpdate").Msg("failed to persist queue")
	}
	return c.engine.Resume(ctx)
}

func (c *syncController) DeclineUpdate(ctx context.Context) error {
	err := c.keeper.Update(ctx, func(s *models.SyncState) {
		s.DownloadPaused = true
	}, models.KeyDownloadPaused)
	c.notifier.Publish(models.Event{Kind: models.EventUpdateDeferred})
	c.notifier.Changed()
	return err
}

func (c *syncController) RetryDownload(ctx context.Context) error {
	return c.engine.Resume(ctx)
}

func (c *syncController) PauseDownload(ctx context.Context) error {
	return c.engine.Pause(ctx)
}

func (c *syncController) Prioritize(ctx context.Context, title string) error {
	moved := false
	err := c.keeper.Update(ctx, func(s *models.SyncState) {
		moved = prioritize(s, title)
	}, models.KeyDownloadQueue)
	if moved {
		c.notifier.Changed()
	}
	return err
}

func (c *syncController) Subscribe(l Listener) func() {
	return c.notifier.Subscribe(l)
}

func (c *syncController) State() models.SyncState {
	return c.keeper.Snapshot()
}

func (c *syncController) Downloading() bool {
	return c.engine.Downloading()
}

func (c *syncController) TitleState(title string) models.TitleState {
	return c.keeper.Snapshot().StateOf(title)
}

func (c *syncController) TitlesAvailable() []string {
	return titlesAvailable(c.keeper.Snapshot())
}

func (c *syncController) TitlesDownloaded() []string {
	return titlesDownloaded(c.keeper.Snapshot())
}

func (c *syncController) UpdatesAvailable() []string {
	return updatesAvailable(c.keeper.Snapshot())
}

func (c *syncController) Wait() {
	c.engine.Wait()
}

func (c *syncController) Close() {
	c.engine.Close()
}

func (c *syncController) refresh(ctx context.Context) error {
	c.checkMu.Lock()
	defer c.checkMu.Unlock()
	return c.fetcher.Refresh(ctx)
}

func (c *syncController) rebuildQueue(ctx context.Context) error {
	var queued int
	err := c.keeper.Update(ctx, func(s *models.SyncState) {
		rebuildQueue(s)
		queued = len(s.DownloadQueue)
	}, models.KeyDownloadQueue)
	c.engine.metrics.SetQueueLength(queued)
	return err
}
