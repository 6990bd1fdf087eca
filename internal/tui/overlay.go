// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

package tui

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/janderssonse/brewtui/internal/app"
	"github.com/janderssonse/brewtui/internal/config"
	"github.com/janderssonse/brewtui/internal/domain"
	"github.com/janderssonse/brewtui/internal/stringutil"
)

const (
	maxModalWidth  = 96
	modalChrome    = 6 // border plus padding
	outdatedFooter = "Space: toggle  Enter: confirm  Esc: close"
)

// renderOverlay returns the modal for the current mode, or "" in Normal mode.
func (a *App) renderOverlay(height int) string {
	width := min(a.width-4, maxModalWidth)
	inner := max(width-modalChrome, 10)
	rows := max(height-modalChrome, 3)

	var content string

	switch mode := a.state.Mode.(type) {
	case app.HelpMode:
		content = a.help
	case app.InputMode:
		content = a.inputOverlay(mode)
	case app.ConfirmMode:
		content = confirmOverlay(mode, inner)
	case app.SearchResultsMode:
		content = a.searchOverlay(mode, inner, rows)
	case app.OutdatedMode:
		content = a.outdatedOverlay(mode, inner, rows)
	case app.OperationMode:
		content = a.operationOverlay(mode, inner, rows)
	default:
		return ""
	}

	return a.styles.Modal.Width(width).MaxHeight(height).Render(content)
}

func (a *App) inputOverlay(mode app.InputMode) string {
	title := "Install package"
	if mode.Kind == app.InputSearch {
		title = "Search packages"
	}

	return strings.Join([]string{
		a.styles.Title.Render(title),
		"",
		a.input.View(),
	}, "\n")
}

// ConfirmPrompt returns the question asked before running an action.
func ConfirmPrompt(mode app.ConfirmMode) string {
	if mode.Action.Kind == domain.ActionInstallTool {
		return "Install " + domain.ToolName + "? (y/N)"
	}

	verb := cases.Title(language.English).String(mode.Action.Verb())

	return fmt.Sprintf("%s '%s' ? (y/N)", verb, mode.Name)
}

func confirmOverlay(mode app.ConfirmMode, width int) string {
	lines := []string{ConfirmPrompt(mode)}

	switch mode.Action.Kind {
	case domain.ActionInstallTool:
		lines = append([]string{
			domain.ToolName + " was not found on this system.",
			"The official installer will run:",
			"",
			stringutil.Truncate(config.BootstrapScript, width),
			"",
		}, lines...)
	case domain.ActionBulkUpgrade:
		if len(mode.Action.Names) > 1 {
			lines = append(lines, "", stringutil.Truncate(strings.Join(mode.Action.Names, ", "), width))
		}
	default:
	}

	return strings.Join(lines, "\n")
}

func (a *App) searchOverlay(mode app.SearchResultsMode, width, height int) string {
	lines := []string{a.styles.Title.Render(fmt.Sprintf("Search results (%d)", len(mode.Results)))}

	if len(mode.Results) == 0 {
		return strings.Join(append(lines, a.styles.MutedText.Render("no results")), "\n")
	}

	start, end := listWindow(mode.Selected, len(mode.Results), height-1)
	for i := start; i < end; i++ {
		name := mode.Results[i]
		if a.state.IsInstalled(name) {
			name += " (Installed)"
		}

		lines = append(lines, a.row(name, width, i == mode.Selected, true))
	}

	return strings.Join(lines, "\n")
}

func (a *App) outdatedOverlay(mode app.OutdatedMode, width, height int) string {
	lines := []string{a.styles.Title.Render(fmt.Sprintf("Outdated packages (%d)", len(mode.Packages)))}

	if len(mode.Packages) == 0 {
		lines = append(lines, a.styles.MutedText.Render("everything is up to date"))
	}

	start, end := mode.Window(height - 2)
	for i := start; i < end; i++ {
		box := "[ ] "
		if i < len(mode.Checked) && mode.Checked[i] {
			box = "[x] "
		}

		lines = append(lines, a.row(box+mode.Packages[i], width, i == mode.Cursor, true))
	}

	lines = append(lines, a.styles.MutedText.Render(outdatedFooter))

	return strings.Join(lines, "\n")
}

func (a *App) operationOverlay(mode app.OperationMode, width, height int) string {
	lines := []string{a.styles.Title.Render(stringutil.Truncate(mode.Title, width))}

	logHeight := height - 2
	if a.state.OperationPercent != nil {
		lines = append(lines, a.gauge.ViewAs(float64(*a.state.OperationPercent)/100))
		logHeight--
	}

	start, end := mode.Window(logHeight)
	for _, line := range mode.Logs.Lines()[start:end] {
		lines = append(lines, stringutil.Truncate(line, width))
	}

	lines = append(lines, a.styles.MutedText.Render(OperationFooter(end, mode.Logs.Len())))

	return strings.Join(lines, "\n")
}

// OperationFooter describes the visible window of the operation log.
func OperationFooter(end, total int) string {
	return fmt.Sprintf("lines %d/%d (↑/↓ scroll, PgUp/PgDn, Home/End)", end, total)
}
