// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

// Package styles defines consistent visual styling for TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the styles used in the TUI.
type Styles struct {
	// Color palette
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Info      lipgloss.Color
	Muted     lipgloss.Color

	// Component styles
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Pane       lipgloss.Style
	FocusPane  lipgloss.Style
	Modal      lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Label      lipgloss.Style

	// Text styles (cached for performance)
	MutedText   lipgloss.Style
	PrimaryText lipgloss.Style
	SuccessText lipgloss.Style
	ErrorText   lipgloss.Style
	WarningText lipgloss.Style
}

// New creates a new Styles instance with default Tokyo Night theme.
func New() *Styles {
	// Tokyo Night color palette
	primary := lipgloss.Color("#7aa2f7")    // Blue
	secondary := lipgloss.Color("#bb9af7")  // Purple
	success := lipgloss.Color("#9ece6a")    // Green
	warning := lipgloss.Color("#e0af68")    // Yellow
	errorColor := lipgloss.Color("#f7768e") // Red
	info := lipgloss.Color("#7dcfff")       // Cyan
	muted := lipgloss.Color("#565f89")      // Gray

	background := lipgloss.Color("#1a1b26") // Dark background
	foreground := lipgloss.Color("#c0caf5") // Light foreground

	return &Styles{
		Primary:   primary,
		Secondary: secondary,
		Success:   success,
		Warning:   warning,
		Error:     errorColor,
		Info:      info,
		Muted:     muted,

		Title: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(secondary).
			Italic(true),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),

		FocusPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondary).
			Padding(1, 2),

		Selected: lipgloss.NewStyle().
			Background(primary).
			Foreground(background).
			Bold(true),

		Unselected: lipgloss.NewStyle().
			Foreground(foreground),

		Label: lipgloss.NewStyle().
			Foreground(info).
			Bold(true),

		// Cached text styles
		MutedText: lipgloss.NewStyle().
			Foreground(muted),

		PrimaryText: lipgloss.NewStyle().
			Foreground(primary),

		SuccessText: lipgloss.NewStyle().
			Foreground(success),

		ErrorText: lipgloss.NewStyle().
			Foreground(errorColor),

		WarningText: lipgloss.NewStyle().
			Foreground(warning),
	}
}

// StatusIcon returns styled status icons.
func (s *Styles) StatusIcon(status string) string {
	style := s.Unselected

	var icon string

	switch status {
	case "installed", "completed":
		style = lipgloss.NewStyle().Foreground(s.Success)
		icon = "✓"
	case "failed":
		style = lipgloss.NewStyle().Foreground(s.Error)
		icon = "✗"
	case "outdated":
		style = lipgloss.NewStyle().Foreground(s.Warning)
		icon = "↑"
	default:
		icon = "•"
	}

	return style.Render(icon)
}

// Keybinding returns styled keybinding text.
func (s *Styles) Keybinding(key, desc string) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(s.Primary).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(s.Muted)

	return keyStyle.Render("["+key+"]") + " " + descStyle.Render(desc)
}

// PaneFor returns the border style for a pane, highlighted when focused.
func (s *Styles) PaneFor(focused bool) lipgloss.Style {
	if focused {
		return s.FocusPane
	}

	return s.Pane
}
