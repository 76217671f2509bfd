// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
)

const maxProgressWidth = 48

// downloadModel renders the archive currently in transfer.
type downloadModel struct {
	spinner  spinner.Model
	progress progress.Model

	title   string
	written int64
	total   int64
}

func newDownloadModel() downloadModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	p := progress.New(progress.WithDefaultGradient(), progress.WithWidth(maxProgressWidth))

	return downloadModel{spinner: s, progress: p, total: -1}
}

func (m *downloadModel) reset() {
	m.title = ""
	m.written = 0
	m.total = -1
}

func (m *downloadModel) setWidth(width int) {
	w := width - 30
	if w > maxProgressWidth {
		w = maxProgressWidth
	}
	if w < 10 {
		w = 10
	}
	m.progress.Width = w
}

func (m downloadModel) percent() float64 {
	if m.total <= 0 {
		return 0
	}
	p := float64(m.written) / float64(m.total)
	if p > 1 {
		p = 1
	}
	return p
}

func (m downloadModel) View() string {
	if m.title == "" {
		return m.spinner.View() + " Загрузка..."
	}

	line := m.spinner.View() + " " + fitText(m.title, 32)
	if m.total > 0 {
		line += "  " + m.progress.ViewAs(m.percent())
	}
	return line + "  " + formatBytes(m.written) + " / " + formatBytes(m.total)
}
