// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-library-sync/internal/adapter"
	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/internal/metrics"
	"github.com/MKhiriev/go-library-sync/internal/store"
	"github.com/MKhiriev/go-library-sync/internal/utils"
	"github.com/MKhiriev/go-library-sync/models"
)

const defaultProgressInterval = 250 * time.Millisecond

// downloadEngine drains the download queue one title at a time in a single
// goroutine per pass.
type downloadEngine struct {
	keeper   *stateKeeper
	files    store.LibraryFiles
	host     adapter.LibraryHost
	notifier *notifier
	metrics  *metrics.SyncMetrics
	uuid     *utils.UUIDGenerator
	now      func() time.Time
	logger   *logger.Logger

	progressInterval time.Duration

	// mu serialises pass start and stop decisions. It is never held while
	// listeners run.
	mu          sync.Mutex
	running     bool
	downloading bool
	closed      bool
	cancel      context.CancelFunc
	wg          sync.WaitGroup
}

// Downloading reports whether a pass is active or about to start.
func (e *downloadEngine) Downloading() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.downloading
}

// markPending flags a pass that is about to start once the manifest arrives.
// It has no effect while a pass is running.
func (e *downloadEngine) markPending(pending bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.running {
		e.downloading = pending
	}
}

// Resume clears the pause flag and starts a pass. Titles left in progress by
// an interrupted pass go to the back of the queue and the temp area is wiped.
// While a pass is running only the pause flag is cleared.
func (e *downloadEngine) Resume(ctx context.Context) error {
	e.mu.Lock()

	if e.closed {
		e.mu.Unlock()
		return ErrControllerClosed
	}

	if e.running {
		err := e.keeper.Update(ctx, func(s *models.SyncState) {
			s.DownloadPaused = false
		}, models.KeyDownloadPaused)
		e.mu.Unlock()
		return err
	}

	if err := e.files.ResetTemp(); err != nil {
		e.logger.Err(err).Str("func", "downloadEngine.Resume").Msg("failed to reset temp area")
	}

	err := e.keeper.Update(ctx, func(s *models.SyncState) {
		s.DownloadPaused = false
		requeueInProgress(s)
	}, models.KeyDownloadPaused, models.KeyDownloadQueue, models.KeyDownloadInProgress)

	state := e.keeper.Snapshot()
	e.metrics.SetQueueLength(len(state.DownloadQueue))

	if !state.ShouldDownload {
		e.downloading = false
		e.mu.Unlock()
		return err
	}

	e.startLocked()
	e.mu.Unlock()

	e.notifier.Changed()
	return err
}

func (e *downloadEngine) startLocked() {
	passCtx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.running = true
	e.downloading = true

	passLogger := e.logger.WithStr("pass_id", e.uuid.Generate())
	passLogger.Info().Msg("download pass started")

	e.wg.Add(1)
	go e.drain(passCtx, passLogger)
}

// Pause stops the queue after the current transfer.
func (e *downloadEngine) Pause(ctx context.Context) error {
	err := e.keeper.Update(ctx, func(s *models.SyncState) {
		s.DownloadPaused = true
	}, models.KeyDownloadPaused)

	e.notifier.Publish(models.Event{Kind: models.EventDownloadPaused})
	e.notifier.Changed()
	return err
}

// ClearQueue empties the queue and the in-progress list.
func (e *downloadEngine) ClearQueue(ctx context.Context) error {
	err := e.keeper.Update(ctx, clearQueue, models.KeyDownloadQueue, models.KeyDownloadInProgress)
	e.metrics.SetQueueLength(0)
	return err
}

// Halt aborts the running pass and waits for it to exit. The interrupted
// title stays in progress.
func (e *downloadEngine) Halt() {
	e.mu.Lock()
	cancel := e.cancel
	e.cancel = nil
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	e.wg.Wait()
}

// Wait blocks until the running pass finishes.
func (e *downloadEngine) Wait() {
	e.wg.Wait()
}

// Close halts the engine for good.
func (e *downloadEngine) Close() {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()

	e.Halt()
}

func (e *downloadEngine) drain(ctx context.Context, log *logger.Logger) {
	defer e.wg.Done()

	for {
		title, ok := e.next(ctx)
		if !ok {
			log.Info().Msg("download pass finished")
			e.notifier.Changed()
			return
		}

		err := e.transfer(ctx, title, log)
		if err == nil {
			e.notifier.Changed()
			continue
		}

		if ctx.Err() != nil {
			e.stop()
			log.Info().Str("title", title).Msg("download pass cancelled")
			e.notifier.Changed()
			return
		}

		e.fail(err, log)
		return
	}
}

// next pops the front of the queue, or ends the pass when the queue is empty,
// paused, disabled or cancelled.
func (e *downloadEngine) next(ctx context.Context) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	state := e.keeper.Snapshot()
	if ctx.Err() != nil || len(state.DownloadQueue) == 0 || state.DownloadPaused || !state.ShouldDownload {
		e.stopLocked()
		return "", false
	}

	var (
		title   string
		found   bool
		pending int
	)
	err := e.keeper.Update(ctx, func(s *models.SyncState) {
		title, found = popNext(s)
		pending = len(s.DownloadQueue)
	}, models.KeyDownloadQueue, models.KeyDownloadInProgress)
	if err != nil {
		e.logger.Err(err).Str("func", "downloadEngine.next").Str("title", title).Msg("failed to persist queue")
	}
	e.metrics.SetQueueLength(pending)

	if !found {
		e.stopLocked()
		return "", false
	}
	return title, true
}

func (e *downloadEngine) stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
}

func (e *downloadEngine) stopLocked() {
	e.running = false
	e.downloading = false
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

func (e *downloadEngine) transfer(ctx context.Context, title string, log *logger.Logger) error {
	log = log.WithStr("title", title)
	start := e.now()

	tmp, err := e.files.CreateTemp(title)
	if err != nil {
		return &DownloadError{Title: title, Err: err}
	}

	var written int64
	progress := e.progressPublisher(title, &written)

	status, err := e.host.DownloadArchive(ctx, title, tmp, progress)
	if closeErr := tmp.Close(); err == nil && closeErr != nil {
		err = closeErr
	}

	if err != nil || status != http.StatusOK {
		if rmErr := e.files.RemoveTemp(title); rmErr != nil {
			log.Err(rmErr).Str("func", "downloadEngine.transfer").Msg("failed to remove temp archive")
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &DownloadError{StatusCode: status, Title: title, Err: err}
	}

	if err = e.files.Promote(title); err != nil {
		_ = e.files.RemoveTemp(title)
		return &DownloadError{StatusCode: status, Title: title, Err: err}
	}

	err = e.keeper.Update(ctx, func(s *models.SyncState) {
		finishTransfer(s, title)
	}, models.KeyDownloadInProgress, models.KeyLastDownload)
	if err != nil {
		log.Err(err).Str("func", "downloadEngine.transfer").Msg("failed to persist stored version")
	}

	elapsed := e.now().Sub(start)
	e.metrics.DownloadSucceeded(written, elapsed)
	log.Info().Int64("bytes", written).Dur("elapsed", elapsed).Msg("archive stored")
	return nil
}

// progressPublisher throttles progress events to one per progressInterval,
// always letting the final one through.
func (e *downloadEngine) progressPublisher(title string, written *int64) adapter.ProgressFunc {
	var last time.Time
	return func(n, total int64) {
		*written = n
		now := e.now()
		if n != total && now.Sub(last) < e.progressInterval {
			return
		}
		last = now
		e.notifier.Publish(models.Event{
			Kind:         models.EventProgress,
			Title:        title,
			BytesWritten: n,
			BytesTotal:   total,
		})
	}
}

// fail ends the pass and hands the decision to the user. The failed title
// stays in progress so that a retry puts it back in the queue.
func (e *downloadEngine) fail(err error, log *logger.Logger) {
	e.stop()
	e.metrics.DownloadFailed()

	ev := models.Event{Kind: models.EventDownloadError}
	var dErr *DownloadError
	if errors.As(err, &dErr) {
		ev.Title = dErr.Title
		ev.StatusCode = dErr.StatusCode
	}
	log.Err(err).Str("func", "downloadEngine.fail").
		Str("title", ev.Title).Int("status_code", ev.StatusCode).
		Msg("download error")

	e.notifier.Publish(ev)
	e.notifier.Changed()
}
