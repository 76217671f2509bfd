// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-library-sync/internal/logger"
	"github.com/MKhiriev/go-library-sync/internal/mock"
	"github.com/MKhiriev/go-library-sync/internal/store"
	"github.com/MKhiriev/go-library-sync/models"
)

func TestStateKeeper_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mock.NewMockStateStore(ctrl)

	stored := map[string]string{
		models.KeyShouldDownload:     `true`,
		models.KeyDownloadQueue:      `["C"]`,
		models.KeyDownloadInProgress: `["A","B"]`,
		models.KeyAvailableDownloads: `{"B":"2","A":"1"}`,
		// corrupt values fall back to defaults
		models.KeyLastDownload:  `{"A":`,
		models.KeyUpdateComment: `42`,
	}
	st.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, key string) ([]byte, bool, error) {
			if key == models.KeyLastUpdateCheck {
				return nil, false, errors.New("disk I/O error")
			}
			if key == models.KeyLibraryDownloadPrompted {
				return []byte(`true`), true, nil
			}
			v, ok := stored[key]
			if !ok {
				return nil, false, nil
			}
			return []byte(v), true, nil
		},
	).Times(len(models.SyncStateKeys) + 1)

	k := newStateKeeper(st, logger.Nop())
	k.Load(context.Background())

	s := k.Snapshot()
	assert.True(t, s.ShouldDownload)
	assert.False(t, s.DownloadPaused)
	assert.Equal(t, []string{"C"}, s.DownloadQueue)
	assert.Equal(t, []string{"A", "B"}, s.DownloadInProgress)
	assert.Equal(t, []string{"B", "A"}, s.AvailableDownloads.Keys())
	assert.Equal(t, 0, s.LastDownload.Len())
	assert.Equal(t, "", s.UpdateComment)
	assert.Nil(t, s.LastUpdateCheck)
	assert.True(t, k.Prompted())
}

func TestStateKeeper_UpdatePersistsListedKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mock.NewMockStateStore(ctrl)

	gomock.InOrder(
		st.EXPECT().Set(gomock.Any(), models.KeyDownloadQueue, []byte(`["A"]`)).Return(nil),
		st.EXPECT().Set(gomock.Any(), models.KeyDownloadPaused, []byte(`true`)).Return(nil),
	)

	k := newStateKeeper(st, logger.Nop())
	err := k.Update(context.Background(), func(s *models.SyncState) {
		s.DownloadQueue = []string{"A"}
		s.DownloadPaused = true
		s.UpdateComment = "not persisted"
	}, models.KeyDownloadQueue, models.KeyDownloadPaused)

	require.NoError(t, err)
	assert.Equal(t, "not persisted", k.Snapshot().UpdateComment)
}

func TestStateKeeper_UpdateKeepsMemoryOnStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mock.NewMockStateStore(ctrl)
	st.EXPECT().Set(gomock.Any(), models.KeyShouldDownload, gomock.Any()).Return(store.ErrStateNotSaved)

	k := newStateKeeper(st, logger.Nop())
	err := k.Update(context.Background(), func(s *models.SyncState) {
		s.ShouldDownload = true
	}, models.KeyShouldDownload)

	assert.ErrorIs(t, err, store.ErrStateNotSaved)
	assert.True(t, k.Snapshot().ShouldDownload)
}

func TestStateKeeper_SnapshotIsACopy(t *testing.T) {
	k := newStateKeeper(newMemStateStore(), logger.Nop())
	require.NoError(t, k.Update(context.Background(), func(s *models.SyncState) {
		s.DownloadQueue = []string{"A"}
	}, models.KeyDownloadQueue))

	snap := k.Snapshot()
	snap.DownloadQueue[0] = "changed"

	assert.Equal(t, []string{"A"}, k.Snapshot().DownloadQueue)
}

func TestStateKeeper_RoundTrip(t *testing.T) {
	mem := newMemStateStore()
	k := newStateKeeper(mem, logger.Nop())
	ctx := context.Background()

	require.NoError(t, k.Update(ctx, func(s *models.SyncState) {
		s.AvailableDownloads.Set("Genesis", "t1")
		s.LastDownload.Set("Genesis", nil)
		s.LastUpdateCheck = &testNow
		s.LastUpdateSchema = strPtr(testSchema)
	}, models.SyncStateKeys...))
	require.NoError(t, k.SetPrompted(ctx))

	assert.Equal(t, `{"Genesis":null}`, mem.raw(models.KeyLastDownload))
	assert.Equal(t, `true`, mem.raw(models.KeyLibraryDownloadPrompted))

	reloaded := newStateKeeper(mem, logger.Nop())
	reloaded.Load(ctx)

	s := reloaded.Snapshot()
	v, ok := s.AvailableDownloads.Get("Genesis")
	assert.True(t, ok)
	assert.Equal(t, "t1", v)
	assert.True(t, s.LastDownload.Has("Genesis"))
	require.NotNil(t, s.LastUpdateCheck)
	assert.True(t, testNow.Equal(*s.LastUpdateCheck))
	assert.True(t, reloaded.Prompted())
}
