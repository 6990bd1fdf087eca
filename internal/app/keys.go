// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines keyboard bindings for every mode.
type KeyMap struct {
	// Normal mode
	Quit            key.Binding
	ForceQuit       key.Binding
	Help            key.Binding
	Tab             key.Binding
	Up              key.Binding
	Down            key.Binding
	Install         key.Binding
	Search          key.Binding
	Filter          key.Binding
	ClearFilter     key.Binding
	Uninstall       key.Binding
	Upgrade         key.Binding
	Outdated        key.Binding
	RefreshOutdated key.Binding
	Enter           key.Binding

	// Modals
	Close     key.Binding
	Cancel    key.Binding
	Backspace key.Binding
	Toggle    key.Binding
	Yes       key.Binding
	No        key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Home      key.Binding
	End       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit from anywhere"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch column"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Install: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "install by name"),
		),
		Search: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "search"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter available"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "clear filter"),
		),
		Uninstall: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "uninstall selected"),
		),
		Upgrade: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "upgrade selected"),
		),
		Outdated: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "outdated packages"),
		),
		RefreshOutdated: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "check for updates"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "install/uninstall selected"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "?"),
			key.WithHelp("esc/?", "close"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y/enter", "confirm"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n/esc", "cancel"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll back 10"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll forward 10"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "oldest"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "newest"),
		),
	}
}

// HelpSection groups bindings for the help overlay.
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

// HelpSections returns the bindings shown in the help overlay.
func (k KeyMap) HelpSections() []HelpSection {
	return []HelpSection{
		{
			Title:    "Navigation",
			Bindings: []key.Binding{k.Up, k.Down, k.Tab, k.Help, k.Quit},
		},
		{
			Title:    "Packages",
			Bindings: []key.Binding{k.Enter, k.Install, k.Uninstall, k.Upgrade, k.Outdated, k.RefreshOutdated},
		},
		{
			Title:    "Search",
			Bindings: []key.Binding{k.Search, k.Filter, k.ClearFilter},
		},
		{
			Title:    "Outdated list",
			Bindings: []key.Binding{k.Toggle, k.Enter, k.Close},
		},
		{
			Title:    "Operation log",
			Bindings: []key.Binding{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End, k.Close},
		},
	}
}
