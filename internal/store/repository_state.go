// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-library-sync/internal/logger"
)

const (
	setStateAttempts   = 3
	setStateRetryDelay = 50 * time.Millisecond
)

// stateRepository is the SQLite-backed implementation of [StateStore]. It
// keeps one row per sync state key in the "sync_state" table.
type stateRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewStateRepository constructs a [StateStore] backed by the provided
// database connection and logger.
func NewStateRepository(db *DB, logger *logger.Logger) StateStore {
	logger.Debug().Msg("creating sync state repository")
	return &stateRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// Get returns the raw value stored under key. A missing row is reported as
// ok=false with a nil error.
func (r *stateRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetStateQuery(key)
	if err != nil {
		log.Err(err).Str("func", "*stateRepository.Get").Str("key", key).Msg("error building query")
		return nil, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		log.Err(err).Str("func", "*stateRepository.Get").Str("key", key).Msg("error reading sync state")
		return nil, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return []byte(value), true, nil
}

// Set upserts the value under key. Busy and locked errors are retried a few
// times before giving up.
func (r *stateRepository) Set(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertStateQuery(key, value, r.now())
	if err != nil {
		log.Err(err).Str("func", "*stateRepository.Set").Str("key", key).Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var res sql.Result
	for attempt := 1; ; attempt++ {
		res, err = r.db.ExecContext(ctx, query, args...)
		if err == nil || attempt == setStateAttempts || !r.retryable(err) {
			break
		}

		log.Warn().Err(err).Str("key", key).Int("attempt", attempt).Msg("sync state write is busy, retrying")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(setStateRetryDelay):
		}
	}
	if err != nil {
		log.Err(err).Str("func", "*stateRepository.Set").Str("key", key).Msg("error saving sync state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrStateNotSaved
	}

	return nil
}

func (r *stateRepository) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteStateQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*stateRepository.Delete").Str("key", key).Msg("error deleting sync state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *stateRepository) retryable(err error) bool {
	if r.db.errorClassificator == nil {
		return false
	}
	return r.db.errorClassificator.Classify(err) == Retryable
}
