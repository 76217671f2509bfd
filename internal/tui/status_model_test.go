// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-library-sync/internal/adapter"
	"github.com/MKhiriev/go-library-sync/internal/service"
	"github.com/MKhiriev/go-library-sync/models"
)

// fakeSync записывает вызванные операции и возвращает заданную ошибку.
type fakeSync struct {
	calls       []string
	err         error
	state       models.SyncState
	downloading bool
	checkNotify bool
}

var _ service.SyncController = (*fakeSync)(nil)

func (f *fakeSync) record(name string) error {
	f.calls = append(f.calls, name)
	return f.err
}

func (f *fakeSync) Initialize(context.Context) error { return f.record("Initialize") }
func (f *fakeSync) EnableLibraryDownload(context.Context) error {
	return f.record("EnableLibraryDownload")
}
func (f *fakeSync) DisableAndDeleteLibrary(context.Context) error {
	return f.record("DisableAndDeleteLibrary")
}
func (f *fakeSync) CheckForUpdates(_ context.Context, notifyIfCurrent bool) error {
	f.checkNotify = notifyIfCurrent
	return f.record("CheckForUpdates")
}
func (f *fakeSync) CheckForUpdatesIfNeeded(context.Context) error {
	return f.record("CheckForUpdatesIfNeeded")
}
func (f *fakeSync) PromptLibraryDownload(context.Context) error {
	return f.record("PromptLibraryDownload")
}
func (f *fakeSync) AcceptInitialDownload(context.Context) error {
	return f.record("AcceptInitialDownload")
}
func (f *fakeSync) DeclineInitialDownload(context.Context) error {
	return f.record("DeclineInitialDownload")
}
func (f *fakeSync) AcceptUpdate(context.Context) error       { return f.record("AcceptUpdate") }
func (f *fakeSync) DeclineUpdate(context.Context) error      { return f.record("DeclineUpdate") }
func (f *fakeSync) RetryDownload(context.Context) error      { return f.record("RetryDownload") }
func (f *fakeSync) PauseDownload(context.Context) error      { return f.record("PauseDownload") }
func (f *fakeSync) Prioritize(context.Context, string) error { return f.record("Prioritize") }
func (f *fakeSync) Subscribe(service.Listener) func()        { return func() {} }
func (f *fakeSync) State() models.SyncState                  { return f.state }
func (f *fakeSync) Downloading() bool                        { return f.downloading }
func (f *fakeSync) TitleState(string) models.TitleState      { return models.TitleNotDownloaded }
func (f *fakeSync) TitlesAvailable() []string                { return nil }
func (f *fakeSync) TitlesDownloaded() []string               { return nil }
func (f *fakeSync) UpdatesAvailable() []string               { return nil }
func (f *fakeSync) Wait()                                    {}
func (f *fakeSync) Close()                                   {}

type fakeCatalog struct{}

func (fakeCatalog) Categories() []string { return []string{"Tanakh", "Talmud"} }
func (fakeCatalog) Titles() []string     { return []string{"Genesis", "Exodus", "Berakhot"} }

func newTestModel(f *fakeSync) statusModel {
	m := newStatusModel(context.Background(), f, fakeCatalog{}, models.NewAppBuildInfo("1.0.0", "", ""))
	m.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return m
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send прогоняет сообщение через модель и выполняет возвращённую команду,
// если она есть.
func send(t *testing.T, m statusModel, msg tea.Msg) (statusModel, tea.Msg) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(statusModel)
	require.True(t, ok)
	if cmd == nil {
		return sm, nil
	}
	return sm, cmd()
}

func TestStatusModel_StartupInitializesBeforePrompt(t *testing.T) {
	f := &fakeSync{}
	m := newTestModel(f)

	out := m.cmdStartup()()

	assert.Equal(t, opDoneMsg{}, out)
	assert.Equal(t, []string{"Initialize", "PromptLibraryDownload"}, f.calls)
}

func TestStatusModel_StartupReportsInitializeError(t *testing.T) {
	f := &fakeSync{err: adapter.ErrInvalidManifest}
	m := newTestModel(f)

	out := m.cmdStartup()()

	done, ok := out.(opDoneMsg)
	require.True(t, ok)
	assert.ErrorIs(t, done.err, adapter.ErrInvalidManifest)
	assert.Equal(t, []string{"Initialize", "PromptLibraryDownload"}, f.calls)
}

func TestStatusModel_InitialPrompt(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "accept", key: "y", want: "AcceptInitialDownload"},
		{name: "decline", key: "n", want: "DeclineInitialDownload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeSync{}
			m := newTestModel(f)

			m, _ = send(t, m, eventMsg{event: models.Event{Kind: models.EventInitialDownloadPrompt}})
			assert.Equal(t, promptInitial, m.prompt)
			assert.Contains(t, m.View(), "Добро пожаловать")

			m, out := send(t, m, runeKey(tt.key))
			assert.Equal(t, promptNone, m.prompt)
			assert.True(t, m.busy)
			assert.Equal(t, opDoneMsg{}, out)
			assert.Equal(t, []string{tt.want}, f.calls)
		})
	}
}

func TestStatusModel_PromptIgnoresOtherKeys(t *testing.T) {
	f := &fakeSync{}
	m := newTestModel(f)

	m, _ = send(t, m, eventMsg{event: models.Event{Kind: models.EventUpdatePrompt, UpdateCount: 2, Comment: "new edition"}})
	m, out := send(t, m, runeKey("d"))

	assert.Nil(t, out)
	assert.Equal(t, promptUpdate, m.prompt)
	assert.Empty(t, f.calls)
	assert.Contains(t, m.View(), "Доступно обновлений: 2")
	assert.Contains(t, m.View(), "new edition")
}

func TestStatusModel_UpdatePrompt(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{key: "y", want: "AcceptUpdate"},
		{key: "n", want: "DeclineUpdate"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			f := &fakeSync{}
			m := newTestModel(f)

			m, _ = send(t, m, eventMsg{event: models.Event{Kind: models.EventUpdatePrompt, UpdateCount: 1}})
			_, _ = send(t, m, runeKey(tt.key))

			assert.Equal(t, []string{tt.want}, f.calls)
		})
	}
}

func TestStatusModel_DownloadErrorPrompt(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{key: "y", want: "RetryDownload"},
		{key: "r", want: "RetryDownload"},
		{key: "n", want: "PauseDownload"},
		{key: "p", want: "PauseDownload"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			f := &fakeSync{}
			m := newTestModel(f)
			m.transfer.title = "Genesis"

			m, _ = send(t, m, eventMsg{event: models.Event{Kind: models.EventDownloadError, Title: "Genesis", StatusCode: 404}})
			assert.Equal(t, promptDownloadError, m.prompt)
			assert.Empty(t, m.transfer.title)
			assert.Contains(t, m.View(), "код 404")

			_, _ = send(t, m, runeKey(tt.key))
			assert.Equal(t, []string{tt.want}, f.calls)
		})
	}
}

func TestStatusModel_HotKeys(t *testing.T) {
	t.Run("d enables download in online mode", func(t *testing.T) {
		f := &fakeSync{}
		m := newTestModel(f)

		_, out := send(t, m, runeKey("d"))

		assert.Equal(t, opDoneMsg{}, out)
		assert.Equal(t, []string{"EnableLibraryDownload"}, f.calls)
	})

	t.Run("d is a no-op in offline mode", func(t *testing.T) {
		f := &fakeSync{}
		m := newTestModel(f)
		m.state.ShouldDownload = true

		m, out := send(t, m, runeKey("d"))

		assert.Nil(t, out)
		assert.Empty(t, f.calls)
		assert.NotEmpty(t, m.status)
	})

	t.Run("u checks for updates and reports up to date", func(t *testing.T) {
		f := &fakeSync{}
		m := newTestModel(f)

		_, _ = send(t, m, runeKey("u"))

		assert.Equal(t, []string{"CheckForUpdates"}, f.calls)
		assert.True(t, f.checkNotify)
	})

	t.Run("r retries and p pauses", func(t *testing.T) {
		f := &fakeSync{}
		m := newTestModel(f)

		m, _ = send(t, m, runeKey("r"))
		_, _ = send(t, m, runeKey("p"))

		assert.Equal(t, []string{"RetryDownload", "PauseDownload"}, f.calls)
	})

	t.Run("q quits", func(t *testing.T) {
		m := newTestModel(&fakeSync{})

		_, out := send(t, m, runeKey("q"))

		assert.Equal(t, tea.QuitMsg{}, out)
	})
}

func TestStatusModel_DeleteConfirmation(t *testing.T) {
	f := &fakeSync{}
	m := newTestModel(f)
	m.state.ShouldDownload = true

	m, out := send(t, m, runeKey("x"))
	assert.Nil(t, out)
	assert.Equal(t, promptDelete, m.prompt)

	m, out = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, out)
	assert.Equal(t, promptNone, m.prompt)
	assert.Empty(t, f.calls)

	m, _ = send(t, m, runeKey("x"))
	_, out = send(t, m, runeKey("y"))
	assert.Equal(t, opDoneMsg{status: "Офлайн-библиотека удалена"}, out)
	assert.Equal(t, []string{"DisableAndDeleteLibrary"}, f.calls)
}

func TestStatusModel_OperationError(t *testing.T) {
	f := &fakeSync{err: adapter.ErrHostUnreachable}
	m := newTestModel(f)

	m, out := send(t, m, runeKey("d"))
	require.IsType(t, opDoneMsg{}, out)

	m, _ = send(t, m, out)
	assert.False(t, m.busy)
	assert.Equal(t, "Отсутствует сеть или сервер библиотеки недоступен", m.errMsg)
	assert.Contains(t, m.View(), "Ошибка")

	// пока открыт оверлей ошибки, горячие клавиши не работают
	m, _ = send(t, m, runeKey("u"))
	assert.Equal(t, []string{"EnableLibraryDownload"}, f.calls)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.errMsg)
}

func TestStatusModel_StateRefresh(t *testing.T) {
	f := &fakeSync{
		downloading: true,
		state: models.SyncState{
			ShouldDownload:     true,
			AvailableDownloads: models.NewOrderedMap([]string{"Genesis", "Exodus"}, map[string]string{"Genesis": "2", "Exodus": "1"}),
			LastDownload:       models.NewOrderedMap([]string{"Genesis", "Exodus"}, map[string]*string{"Genesis": strPtr("1"), "Exodus": nil}),
			DownloadQueue:      []string{"Exodus"},
		},
	}
	m := newTestModel(f)

	m, out := send(t, m, eventMsg{event: models.Event{Kind: models.EventChanged}})
	require.IsType(t, stateLoadedMsg{}, out)

	m, _ = send(t, m, out)
	assert.True(t, m.downloading)
	assert.Equal(t, 2, m.pendingUpdates())
	assert.Equal(t, 1, countStored(m.state))

	m, _ = send(t, m, eventMsg{event: models.Event{Kind: models.EventProgress, Title: "Genesis", BytesWritten: 512, BytesTotal: 1024}})
	assert.InDelta(t, 0.5, m.transfer.percent(), 1e-9)

	view := m.View()
	assert.Contains(t, view, "офлайн")
	assert.Contains(t, view, "Genesis")
	assert.Contains(t, view, "2 разделов, 3 книг")
}

func TestStatusModel_Notices(t *testing.T) {
	kinds := []models.EventKind{
		models.EventUpToDate,
		models.EventUsingOnlineLibrary,
		models.EventLibraryDownloading,
		models.EventUpdateDeferred,
		models.EventDownloadPaused,
	}

	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			m := newTestModel(&fakeSync{})

			m, out := send(t, m, eventMsg{event: models.Event{Kind: kind}})

			assert.Nil(t, out)
			assert.NotEmpty(t, m.status)
			assert.Equal(t, promptNone, m.prompt)
		})
	}
}

func TestHumanizeHostError(t *testing.T) {
	assert.Empty(t, humanizeHostError(nil))
	assert.Equal(t, "Файл не найден на сервере библиотеки", humanizeHostError(adapter.ErrNotFound))
	assert.Equal(t, "Отсутствует сеть или сервер библиотеки недоступен",
		humanizeHostError(errors.New("dial tcp: connection refused")))
	assert.Equal(t, "boom", humanizeHostError(errors.New("boom")))
}

func strPtr(s string) *string { return &s }
