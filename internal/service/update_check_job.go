// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-library-sync/internal/logger"
)

const defaultUpdateCheckInterval = time.Hour

type updateChecker interface {
	CheckForUpdatesIfNeeded(ctx context.Context) error
}

type updateCheckJob struct {
	checker updateChecker
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewUpdateCheckJob creates a job that calls CheckForUpdatesIfNeeded on a
// ticker. The job is idle until Start is called.
func NewUpdateCheckJob(checker updateChecker, log *logger.Logger) UpdateCheckJob {
	return &updateCheckJob{checker: checker, logger: log}
}

// Start implements UpdateCheckJob. A non-positive interval defaults to one
// hour. The staleness rule inside CheckForUpdatesIfNeeded decides whether a
// tick actually hits the network.
func (j *updateCheckJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultUpdateCheckInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.checker.CheckForUpdatesIfNeeded(jobCtx); err != nil {
					j.logger.Err(err).Str("func", "updateCheckJob.Start").Msg("periodic update check failed")
				}
			}
		}
	}()
}

// Stop implements UpdateCheckJob. Safe to call when the job is not running.
func (j *updateCheckJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
