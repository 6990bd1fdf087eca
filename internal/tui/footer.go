// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/janderssonse/brewtui/internal/tui/styles"
)

// FooterAction represents a key-action pair for footer display.
type FooterAction struct {
	Key    string
	Action string
}

// footerActions turns key bindings into footer entries using their help text.
func footerActions(bindings ...key.Binding) []FooterAction {
	actions := make([]FooterAction, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		actions = append(actions, FooterAction{Key: help.Key, Action: help.Desc})
	}

	return actions
}

// RenderFooter creates a footer with the status line above the key hints.
func RenderFooter(styleConfig *styles.Styles, width int, statusLine string, actions []FooterAction) string {
	actionStrings := make([]string, 0, len(actions))
	for _, action := range actions {
		actionStrings = append(actionStrings, styleConfig.Keybinding(action.Key, action.Action))
	}

	footerText := lipgloss.JoinVertical(lipgloss.Left,
		styleConfig.MutedText.Render(statusLine),
		strings.Join(actionStrings, "   "),
	)

	return lipgloss.NewStyle().
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(lipgloss.Color("240")).
		Width(max(width, 1)).
		Render(footerText)
}
