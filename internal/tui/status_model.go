// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-library-sync/internal/service"
	"github.com/MKhiriev/go-library-sync/models"
)

type promptKind int

const (
	promptNone promptKind = iota
	promptInitial
	promptUpdate
	promptDownloadError
	promptDelete
)

// catalogView is the part of the content index shown on screen.
type catalogView interface {
	Categories() []string
	Titles() []string
}

// statusModel is the single screen of the client: library status, the
// current transfer, and the prompts raised by the sync controller.
type statusModel struct {
	ctx       context.Context
	sync      service.SyncController
	catalog   catalogView
	buildInfo models.AppBuildInfo
	now       func() time.Time

	state       models.SyncState
	downloading bool
	busy        bool
	transfer    downloadModel

	prompt      promptKind
	promptEvent models.Event

	status        string
	errMsg        string
	showBuildInfo bool
}

func newStatusModel(ctx context.Context, sync service.SyncController, catalog catalogView, buildInfo models.AppBuildInfo) statusModel {
	return statusModel{
		ctx:       ctx,
		sync:      sync,
		catalog:   catalog,
		buildInfo: buildInfo,
		now:       time.Now,
		transfer:  newDownloadModel(),
	}
}

func (m statusModel) Init() tea.Cmd {
	return tea.Batch(
		m.transfer.spinner.Tick,
		m.cmdLoadState(),
		m.cmdStartup(),
	)
}

// cmdStartup restores the persisted state before asking the one-time
// download question, since the prompt flag is part of that state.
func (m statusModel) cmdStartup() tea.Cmd {
	svc := m.sync
	return m.cmdRun("", func(ctx context.Context) error {
		initErr := svc.Initialize(ctx)
		return errors.Join(initErr, svc.PromptLibraryDownload(ctx))
	})
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.transfer.setWidth(msg.Width)
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.transfer.spinner, cmd = m.transfer.spinner.Update(msg)
		return m, cmd
	case stateLoadedMsg:
		m.state = msg.state
		m.downloading = msg.downloading
		if !m.downloading {
			m.transfer.reset()
		}
		return m, nil
	case eventMsg:
		return m.handleEvent(msg.event)
	case opDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = humanizeHostError(msg.err)
		} else if msg.status != "" {
			m.status = msg.status
		}
		return m, m.cmdLoadState()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m statusModel) handleEvent(ev models.Event) (tea.Model, tea.Cmd) {
	switch ev.Kind {
	case models.EventChanged:
		return m, m.cmdLoadState()
	case models.EventProgress:
		m.transfer.title = ev.Title
		m.transfer.written = ev.BytesWritten
		m.transfer.total = ev.BytesTotal
	case models.EventInitialDownloadPrompt:
		m.prompt = promptInitial
	case models.EventUpdatePrompt:
		m.prompt = promptUpdate
		m.promptEvent = ev
	case models.EventDownloadError:
		m.prompt = promptDownloadError
		m.promptEvent = ev
		m.transfer.reset()
	case models.EventUpToDate:
		m.status = "Библиотека актуальна"
	case models.EventUsingOnlineLibrary:
		m.status = "Используется онлайн-библиотека. Скачать её можно клавишей d"
	case models.EventLibraryDownloading:
		m.status = "Библиотека скачивается. Читать можно уже сейчас"
	case models.EventUpdateDeferred:
		m.status = "Обновление отложено. Проверить снова: u, продолжить: r"
	case models.EventDownloadPaused:
		m.status = "Загрузка приостановлена. Продолжить: r"
	}
	return m, nil
}

func (m statusModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.errMsg != "" {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.errMsg = ""
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.prompt != promptNone {
		return m.answerPrompt(msg)
	}

	switch {
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(msg, keys.download):
		if m.state.ShouldDownload {
			m.status = "Офлайн-библиотека уже включена"
			return m, nil
		}
		return m.start("", m.sync.EnableLibraryDownload)
	case key.Matches(msg, keys.delete):
		if !m.state.ShouldDownload && m.state.LastDownload.Len() == 0 {
			m.status = "Офлайн-библиотека не скачана"
			return m, nil
		}
		m.prompt = promptDelete
	case key.Matches(msg, keys.update):
		return m.start("", func(ctx context.Context) error {
			return m.sync.CheckForUpdates(ctx, true)
		})
	case key.Matches(msg, keys.retry):
		return m.start("Загрузка возобновлена", m.sync.RetryDownload)
	case key.Matches(msg, keys.pause):
		return m.start("", m.sync.PauseDownload)
	}
	return m, nil
}

func (m statusModel) answerPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	yes := key.Matches(msg, keys.yes)
	no := key.Matches(msg, keys.no)

	switch m.prompt {
	case promptDownloadError:
		yes = yes || key.Matches(msg, keys.retry)
		no = no || key.Matches(msg, keys.pause)
	case promptDelete:
		no = no || key.Matches(msg, keys.esc)
	}
	if !yes && !no {
		return m, nil
	}

	kind := m.prompt
	m.prompt = promptNone

	switch kind {
	case promptInitial:
		if yes {
			return m.start("", m.sync.AcceptInitialDownload)
		}
		return m.start("", m.sync.DeclineInitialDownload)
	case promptUpdate:
		if yes {
			return m.start("", m.sync.AcceptUpdate)
		}
		return m.start("", m.sync.DeclineUpdate)
	case promptDownloadError:
		if yes {
			return m.start("Загрузка возобновлена", m.sync.RetryDownload)
		}
		return m.start("", m.sync.PauseDownload)
	case promptDelete:
		if yes {
			return m.start("Офлайн-библиотека удалена", m.sync.DisableAndDeleteLibrary)
		}
	}
	return m, nil
}

func (m statusModel) start(status string, fn func(context.Context) error) (tea.Model, tea.Cmd) {
	m.busy = true
	m.errMsg = ""
	return m, m.cmdRun(status, fn)
}

func (m statusModel) cmdRun(status string, fn func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return opDoneMsg{status: status, err: fn(ctx)}
	}
}

func (m statusModel) cmdLoadState() tea.Cmd {
	svc := m.sync
	return func() tea.Msg {
		return stateLoadedMsg{state: svc.State(), downloading: svc.Downloading()}
	}
}

func (m statusModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	page := renderPage("БИБЛИОТЕКА", m.renderStatus(), m.hotKeys())

	var overlay string
	switch {
	case m.errMsg != "":
		overlay = errorOverlayModel{message: m.errMsg}.View()
	case m.prompt != promptNone:
		overlay = m.promptView()
	}
	if overlay != "" {
		page = lipgloss.JoinVertical(lipgloss.Left, page, "", overlay)
	}
	return appStyle.Render(page)
}

func (m statusModel) renderStatus() string {
	s := m.state
	var b strings.Builder

	mode := "онлайн"
	if s.ShouldDownload {
		mode = "офлайн"
	}
	if s.DownloadPaused {
		mode += ", загрузка на паузе"
	}

	b.WriteString(field("Режим:", mode) + "\n")
	b.WriteString(field("Доступно книг:", fmt.Sprint(s.AvailableDownloads.Len())) + "\n")
	b.WriteString(field("Скачано:", fmt.Sprint(countStored(s))) + "\n")
	b.WriteString(field("Обновлений:", fmt.Sprint(m.pendingUpdates())) + "\n")
	b.WriteString(field("В очереди:", fmt.Sprint(len(s.DownloadQueue))) + "\n")
	b.WriteString(field("Последняя проверка:", formatCheckTime(s.LastUpdateCheck, m.now())) + "\n")
	if m.catalog != nil {
		b.WriteString(field("Каталог:", fmt.Sprintf("%d разделов, %d книг", len(m.catalog.Categories()), len(m.catalog.Titles()))) + "\n")
	}
	if s.UpdateComment != "" {
		b.WriteString(field("Что нового:", fitText(s.UpdateComment, 60)) + "\n")
	}

	if m.downloading {
		b.WriteString("\n" + m.transfer.View() + "\n")
	} else if m.busy {
		b.WriteString("\n" + m.transfer.spinner.View() + " Подождите...\n")
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status))
	}
	return b.String()
}

func (m statusModel) pendingUpdates() int {
	n := 0
	for _, title := range m.state.AvailableDownloads.Keys() {
		if !m.state.IsUpToDate(title) {
			n++
		}
	}
	return n
}

func countStored(s models.SyncState) int {
	n := 0
	for _, title := range s.LastDownload.Keys() {
		if v, _ := s.LastDownload.Get(title); v != nil {
			n++
		}
	}
	return n
}

func (m statusModel) hotKeys() string {
	if m.prompt != promptNone {
		return ""
	}
	parts := []string{}
	if !m.state.ShouldDownload {
		parts = append(parts, "d: скачать")
	} else {
		parts = append(parts, "x: удалить", "u: обновления")
		if m.downloading {
			parts = append(parts, "p: пауза")
		} else {
			parts = append(parts, "r: продолжить")
		}
	}
	parts = append(parts, "v: о программе", "q: выход")
	return strings.Join(parts, "  ")
}

func (m statusModel) promptView() string {
	switch m.prompt {
	case promptInitial:
		return confirmModel{
			title:   "Добро пожаловать",
			message: "Рекомендуем скачать библиотеку, чтобы читать без сети.",
			yes:     "скачать",
			no:      "не сейчас",
		}.View()
	case promptUpdate:
		message := fmt.Sprintf("Доступно обновлений: %d", m.promptEvent.UpdateCount)
		if m.promptEvent.Comment != "" {
			message += ". " + m.promptEvent.Comment
		}
		return confirmModel{title: "Обновление библиотеки", message: message, yes: "скачать", no: "не сейчас"}.View()
	case promptDownloadError:
		message := fmt.Sprintf("Не удалось скачать %q (код %d).", m.promptEvent.Title, m.promptEvent.StatusCode)
		return confirmModel{title: "Ошибка загрузки", message: message, yes: "повторить", no: "пауза"}.View()
	case promptDelete:
		return confirmModel{
			title:   "Удаление библиотеки",
			message: "Удалить все скачанные книги?",
			yes:     "да",
			no:      "нет",
		}.View()
	}
	return ""
}
