// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// confirmModel is a yes/no question box.
type confirmModel struct {
	title   string
	message string
	yes     string
	no      string
}

func (m confirmModel) View() string {
	content := titleStyle.Render(m.title) + "\n\n" + m.message + "\n\n"
	content += "y " + m.yes + "    n " + m.no
	return overlayBoxStyle.Render(content)
}
