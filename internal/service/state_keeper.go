// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/internal/store"
	"github.com/MKhiriev/go-library-sync/models"
)

// stateKeeper holds the in-memory sync state and writes every change through
// to the [store.StateStore], one key per field.
type stateKeeper struct {
	store  store.StateStore
	logger *logger.Logger

	mu       sync.Mutex
	state    models.SyncState
	prompted bool
}

func newStateKeeper(stateStore store.StateStore, log *logger.Logger) *stateKeeper {
	return &stateKeeper{
		store:  stateStore,
		logger: log,
	}
}

// Load replaces the in-memory state with the persisted one. Keys that were
// never written, cannot be read or do not parse keep their default value.
func (k *stateKeeper) Load(ctx context.Context) {
	var loaded models.SyncState

	for _, key := range models.SyncStateKeys {
		raw, ok, err := k.store.Get(ctx, key)
		if err != nil {
			k.logger.Err(err).Str("func", "stateKeeper.Load").Str("key", key).Msg("failed to read sync state field")
			continue
		}
		if !ok || len(raw) == 0 {
			continue
		}
		if err = json.Unmarshal(raw, loaded.FieldPointer(key)); err != nil {
			k.logger.Warn().Err(err).Str("func", "stateKeeper.Load").Str("key", key).Msg("corrupt sync state field, using default")
			loaded.ResetField(key)
		}
	}

	prompted := false
	raw, ok, err := k.store.Get(ctx, models.KeyLibraryDownloadPrompted)
	switch {
	case err != nil:
		k.logger.Err(err).Str("func", "stateKeeper.Load").Msg("failed to read prompt flag")
	case ok:
		if err = json.Unmarshal(raw, &prompted); err != nil {
			k.logger.Warn().Err(err).Str("func", "stateKeeper.Load").Msg("corrupt prompt flag, using default")
			prompted = false
		}
	}

	k.mu.Lock()
	k.state = loaded
	k.prompted = prompted
	k.mu.Unlock()
}

// Snapshot returns a deep copy of the current state.
func (k *stateKeeper) Snapshot() models.SyncState {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.state.Clone()
}

// Update applies fn to the state and persists the listed keys. The in-memory
// change is kept even when persisting fails.
func (k *stateKeeper) Update(ctx context.Context, fn func(s *models.SyncState), keys ...string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	fn(&k.state)

	var errs []error
	for _, key := range keys {
		if err := k.persist(ctx, key, k.state.FieldValue(key)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Prompted reports whether the first-run download prompt was answered.
func (k *stateKeeper) Prompted() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.prompted
}

func (k *stateKeeper) SetPrompted(ctx context.Context) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.prompted = true
	return k.persist(ctx, models.KeyLibraryDownloadPrompted, true)
}

func (k *stateKeeper) persist(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err = k.store.Set(ctx, key, raw); err != nil {
		k.logger.Err(err).Str("func", "stateKeeper.persist").Str("key", key).Msg("failed to persist sync state field")
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}
