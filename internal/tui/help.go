// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/janderssonse/brewtui/internal/app"
)

const helpWrapWidth = 72

// helpRenderedMsg carries the pre-rendered help overlay.
type helpRenderedMsg struct {
	content string
}

// HelpMarkdown lists every key binding grouped by section.
func HelpMarkdown(keys app.KeyMap) string {
	var builder strings.Builder

	builder.WriteString("# Keyboard shortcuts\n")

	for _, section := range keys.HelpSections() {
		fmt.Fprintf(&builder, "\n## %s\n\n| Key | Action |\n|---|---|\n", section.Title)

		for _, binding := range section.Bindings {
			help := binding.Help()
			fmt.Fprintf(&builder, "| `%s` | %s |\n", help.Key, help.Desc)
		}
	}

	builder.WriteString("\nPress any key to close.\n")

	return builder.String()
}

// RenderHelp renders the help markdown for the terminal. When glamour cannot
// build a renderer the raw markdown is returned.
func RenderHelp(keys app.KeyMap) string {
	markdown := HelpMarkdown(keys)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(helpWrapWidth),
	)
	if err != nil {
		return markdown
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}

	return rendered
}
