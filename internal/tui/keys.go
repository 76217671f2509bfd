// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit      key.Binding
	esc       key.Binding
	enter     key.Binding
	download  key.Binding
	delete    key.Binding
	update    key.Binding
	retry     key.Binding
	pause     key.Binding
	buildInfo key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	download:  key.NewBinding(key.WithKeys("d")),
	delete:    key.NewBinding(key.WithKeys("x")),
	update:    key.NewBinding(key.WithKeys("u")),
	retry:     key.NewBinding(key.WithKeys("r")),
	pause:     key.NewBinding(key.WithKeys("p")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
