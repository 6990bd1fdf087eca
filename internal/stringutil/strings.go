// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

// Package stringutil provides string utility functions for brewtui.
package stringutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// Contains checks if text contains substr (case-sensitive).
// An empty substr matches everything.
func Contains(text, substr string) bool {
	return strings.Contains(text, substr)
}

// NonEmptyLines splits output into trimmed lines, dropping blank ones.
func NonEmptyLines(output string) []string {
	raw := strings.Split(output, "\n")
	lines := make([]string, 0, len(raw))

	for _, line := range raw {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	return lines
}

// FirstField returns the first whitespace delimited token of line.
func FirstField(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}

// Truncate shortens text to at most width terminal cells, marking the cut with an ellipsis.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if runewidth.StringWidth(text) <= width {
		return text
	}

	return runewidth.Truncate(text, width, ellipsis)
}

// PadRight pads text with spaces to exactly width terminal cells, truncating if needed.
func PadRight(text string, width int) string {
	truncated := Truncate(text, width)

	return runewidth.FillRight(truncated, width)
}

// PlainLine removes ANSI escape sequences and carriage-return redraws,
// keeping only what the terminal would finally show for line.
func PlainLine(line string) string {
	stripped := ansi.Strip(line)
	if i := strings.LastIndex(strings.TrimRight(stripped, "\r"), "\r"); i >= 0 {
		stripped = stripped[i+1:]
	}

	return strings.TrimRight(stripped, "\r")
}
