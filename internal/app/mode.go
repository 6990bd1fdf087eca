// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

package app

import (
	"fmt"

	"github.com/janderssonse/brewtui/internal/domain"
)

// Mode is the single active modal state. Each variant carries only its own data.
type Mode interface {
	// Summary is the short mode description shown in the status line.
	Summary() string
	isMode()
}

// InputKind selects what an Input mode does on Enter.
type InputKind int

// Input kinds.
const (
	InputInstall InputKind = iota
	InputSearch
)

func (k InputKind) String() string {
	if k == InputSearch {
		return "Search"
	}

	return "Install"
}

// NormalMode is the default browsing mode.
type NormalMode struct{}

// HelpMode shows the key reference.
type HelpMode struct{}

// InputMode edits a single line of text.
type InputMode struct {
	Kind   InputKind
	Buffer string
}

// ConfirmMode asks y/N before running Action.
type ConfirmMode struct {
	Action domain.ConfirmAction
	Name   string
	Index  *int
}

// SearchResultsMode lists results of a brew search.
type SearchResultsMode struct {
	Results  []string
	Selected int
}

// OutdatedMode is a checklist of outdated packages for bulk upgrade.
type OutdatedMode struct {
	Packages []string
	Cursor   int
	Checked  []bool
	Scroll   int
}

// OperationMode shows streamed output of a running or finished operation.
// Scroll counts lines back from the newest one.
type OperationMode struct {
	Title  string
	Logs   *LogBuffer
	Scroll int
}

func (NormalMode) isMode()        {}
func (HelpMode) isMode()          {}
func (InputMode) isMode()         {}
func (ConfirmMode) isMode()       {}
func (SearchResultsMode) isMode() {}
func (OutdatedMode) isMode()      {}
func (OperationMode) isMode()     {}

// Summary implements Mode.
func (NormalMode) Summary() string { return "Normal" }

// Summary implements Mode.
func (HelpMode) Summary() string { return "Help" }

// Summary implements Mode.
func (m InputMode) Summary() string { return "Input(" + m.Kind.String() + ")" }

// Summary implements Mode.
func (m ConfirmMode) Summary() string {
	if m.Action.Kind == domain.ActionInstallTool {
		return "Confirm " + m.Action.Label()
	}

	return "Confirm " + m.Action.Label() + " " + m.Name
}

// Summary implements Mode.
func (m SearchResultsMode) Summary() string {
	return fmt.Sprintf("SearchResults %d results (sel %d)", len(m.Results), m.Selected)
}

// Summary implements Mode.
func (m OutdatedMode) Summary() string {
	return fmt.Sprintf("Outdated %d packages (cursor %d)", len(m.Packages), m.Cursor)
}

// Summary implements Mode.
func (m OperationMode) Summary() string {
	return fmt.Sprintf("Operation: %s (%d lines)", m.Title, m.Logs.Len())
}

// CheckedNames returns the checked packages in list order.
func (m OutdatedMode) CheckedNames() []string {
	var names []string

	for i, name := range m.Packages {
		if i < len(m.Checked) && m.Checked[i] {
			names = append(names, name)
		}
	}

	return names
}

// Window returns the [start, end) range of packages visible in height rows,
// starting at Scroll but always containing the cursor.
func (m OutdatedMode) Window(height int) (int, int) {
	if height <= 0 || len(m.Packages) == 0 {
		return 0, 0
	}

	start := min(m.Scroll, len(m.Packages)-1)
	if m.Cursor < start {
		start = m.Cursor
	}

	if m.Cursor >= start+height {
		start = m.Cursor - height + 1
	}

	return start, min(start+height, len(m.Packages))
}

// Window returns the [start, end) range of log lines visible in height rows.
// With Scroll zero the newest lines are shown.
func (m OperationMode) Window(height int) (int, int) {
	total := m.Logs.Len()
	if height <= 0 || total == 0 {
		return 0, 0
	}

	start := 0
	if total > height+m.Scroll {
		start = total - height - m.Scroll
	}

	return start, start + min(height, total-start)
}
