// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

package tui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/janderssonse/brewtui/internal/app"
	"github.com/janderssonse/brewtui/internal/stringutil"
)

// Layout constants.
const (
	bottomRowHeight = 10 // log and status panes, borders included
	paneChrome      = 4  // border plus horizontal padding
	minBodyHeight   = 8
	updatesPreview  = 5
)

// View implements the tea.Model interface.
func (a *App) View() string {
	if a.state.Quitting {
		return ""
	}

	footer := RenderFooter(a.styles, a.width, a.state.StatusLine, a.footerHints())
	bodyHeight := max(a.height-lipgloss.Height(footer), minBodyHeight)

	var body string
	if overlay := a.renderOverlay(bodyHeight); overlay != "" {
		body = lipgloss.Place(a.width, bodyHeight, lipgloss.Center, lipgloss.Center, overlay)
	} else {
		body = a.renderMain(bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func (a *App) renderMain(height int) string {
	topHeight := max(height-bottomRowHeight, minBodyHeight/2)
	column := a.width / 3
	detailWidth := a.width - 2*column
	focus := a.state.Focus

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		a.pane(a.installedTitle(), a.installedLines(column, topHeight), column, topHeight, focus == app.FocusInstalled),
		a.pane(a.availableTitle(), a.availableLines(column, topHeight), column, topHeight, focus == app.FocusAvailable),
		a.pane("Details", a.detailLines(detailWidth), detailWidth, topHeight, false),
	)

	logWidth := a.width - column
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		a.pane("Log", a.logLines(logWidth, bottomRowHeight), logWidth, bottomRowHeight, false),
		a.pane("Status", a.statusLines(column), column, bottomRowHeight, false),
	)

	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

// pane draws a bordered box of the given outer size with a title row.
func (a *App) pane(title string, lines []string, width, height int, focused bool) string {
	innerWidth := max(width-paneChrome, 1)
	innerHeight := max(height-2, 1)

	rows := make([]string, 0, innerHeight)
	rows = append(rows, a.styles.Title.Render(stringutil.Truncate(title, innerWidth)))

	for _, line := range lines {
		if len(rows) == innerHeight {
			break
		}

		rows = append(rows, line)
	}

	return a.styles.PaneFor(focused).
		Width(max(width-2, 1)).
		Height(innerHeight).
		MaxHeight(height).
		Render(strings.Join(rows, "\n"))
}

// listWindow returns the [start, end) rows of a list shown in height rows
// such that the cursor is visible.
func listWindow(cursor, total, height int) (int, int) {
	if height <= 0 || total == 0 {
		return 0, 0
	}

	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}

	return start, min(start+height, total)
}

// row renders a list row, highlighted when selected.
func (a *App) row(text string, width int, selected, focused bool) string {
	if !selected {
		return a.styles.Unselected.Render(stringutil.Truncate(text, width))
	}

	if focused {
		return a.styles.Selected.Render(stringutil.PadRight(text, width))
	}

	return a.styles.PrimaryText.Render(stringutil.Truncate(text, width))
}

func (a *App) installedTitle() string {
	return fmt.Sprintf("Installed (%d)", len(a.state.Installed))
}

func (a *App) installedLines(width, height int) []string {
	state := a.state
	innerWidth := width - paneChrome

	if len(state.Installed) == 0 {
		if state.LoadingInstalled {
			return []string{a.spinner.View() + " loading installed packages"}
		}

		return []string{a.styles.MutedText.Render("no formulae installed")}
	}

	start, end := listWindow(state.SelectedInstalled, len(state.Installed), height-3)
	lines := make([]string, 0, end-start)

	for i := start; i < end; i++ {
		name := state.Installed[i].Name

		marker := "  "
		if slices.Contains(state.Outdated, name) {
			marker = "↑ "
		}

		lines = append(lines, a.row(marker+name, innerWidth, i == state.SelectedInstalled, state.Focus == app.FocusInstalled))
	}

	return lines
}

func (a *App) availableTitle() string {
	state := a.state
	if state.Filter == "" {
		return fmt.Sprintf("Available (%d)", len(state.Available))
	}

	return fmt.Sprintf("Available [%s] (%d/%d)", state.Filter, len(state.AvailableFiltered), len(state.Available))
}

func (a *App) availableLines(width, height int) []string {
	state := a.state
	innerWidth := width - paneChrome

	if len(state.Available) == 0 && state.LoadingAvailable {
		return []string{a.spinner.View() + " loading available packages"}
	}

	if len(state.AvailableFiltered) == 0 {
		return []string{a.styles.MutedText.Render("no matches")}
	}

	cursor := max(slices.Index(state.AvailableFiltered, state.SelectedAvailable), 0)
	start, end := listWindow(cursor, len(state.AvailableFiltered), height-3)
	lines := make([]string, 0, end-start)

	for _, idx := range state.AvailableFiltered[start:end] {
		name := state.Available[idx]
		if state.IsInstalled(name) {
			name += " (Installed)"
		}

		lines = append(lines, a.row(name, innerWidth, idx == state.SelectedAvailable, state.Focus == app.FocusAvailable))
	}

	return lines
}

func (a *App) detailLines(width int) []string {
	innerWidth := width - paneChrome

	pkg, ok := a.state.DetailPackage()
	if !ok {
		return []string{a.styles.MutedText.Render("nothing selected")}
	}

	lines := []string{a.styles.Label.Render(stringutil.Truncate(pkg.Name, innerWidth))}
	if !pkg.HasDetails() {
		if a.state.DetailFailed(pkg.Name) {
			return append(lines, a.styles.MutedText.Render("no details available"))
		}

		return append(lines, a.spinner.View()+" fetching details")
	}

	field := func(label, value string) {
		if value != "" {
			lines = append(lines, a.styles.MutedText.Render(label+":")+" "+stringutil.Truncate(value, innerWidth-len(label)-2))
		}
	}

	field("full", pkg.FullName)

	if pkg.Desc != "" {
		lines = append(lines, stringutil.Truncate(pkg.Desc, innerWidth))
	}

	field("homepage", pkg.Homepage)
	field("license", pkg.License)
	field("stable", pkg.StableVersion())
	field("dependencies", pkg.DependencyList())
	field("installed", strings.Join(pkg.InstalledVersions(), ", "))

	if caveats := stringutil.NonEmptyLines(pkg.Caveats); len(caveats) > 0 {
		lines = append(lines, a.styles.WarningText.Render("caveats:"))
		for _, line := range caveats {
			lines = append(lines, stringutil.Truncate(line, innerWidth))
		}
	}

	return lines
}

// logLines returns the newest log lines first.
func (a *App) logLines(width, height int) []string {
	innerWidth := width - paneChrome
	newest := a.state.Logs.Newest(height - 3)

	lines := make([]string, 0, len(newest))
	for _, line := range newest {
		lines = append(lines, stringutil.Truncate(line, innerWidth))
	}

	return lines
}

func (a *App) statusLines(width int) []string {
	state := a.state
	innerWidth := width - paneChrome

	var lines []string

	switch {
	case state.Operating && state.OperationPercent != nil:
		lines = append(lines, a.gauge.ViewAs(float64(*state.OperationPercent)/100))
	case state.Operating:
		lines = append(lines, a.spinner.View()+" "+stringutil.Truncate(state.Status, innerWidth-2))
	case state.Status != "":
		lines = append(lines, stringutil.Truncate(state.Status, innerWidth))
	}

	icon := a.styles.StatusIcon("installed")
	if len(state.Outdated) > 0 {
		icon = a.styles.StatusIcon("outdated")
	}

	updates := fmt.Sprintf("Updates: %d", len(state.Outdated))
	if len(state.Outdated) > 0 {
		preview := state.Outdated[:min(len(state.Outdated), updatesPreview)]
		updates += " (" + strings.Join(preview, ", ")
		if len(state.Outdated) > updatesPreview {
			updates += ", …"
		}

		updates += ")"
	}

	lines = append(lines,
		icon+" "+stringutil.Truncate(updates, innerWidth-2),
		stringutil.Truncate(fmt.Sprintf("Mode: %s  Logs: %d", state.Mode.Summary(), state.Logs.Len()), innerWidth),
		a.styles.MutedText.Render(refreshedAgo(state.LastRefreshed, state.Now())),
	)

	return lines
}

func refreshedAgo(last, now time.Time) string {
	if last.IsZero() {
		return "not refreshed yet"
	}

	return fmt.Sprintf("refreshed %ds ago", int(now.Sub(last).Seconds()))
}

func (a *App) footerHints() []FooterAction {
	keys := a.state.Keys

	switch a.state.Mode.(type) {
	case app.HelpMode:
		return []FooterAction{{Key: "any key", Action: "close"}}
	case app.InputMode:
		return append([]FooterAction{{Key: "enter", Action: "submit"}}, footerActions(keys.Backspace, keys.Cancel)...)
	case app.ConfirmMode:
		return footerActions(keys.Yes, keys.No)
	case app.SearchResultsMode:
		return append(footerActions(keys.Up, keys.Down), FooterAction{Key: "enter", Action: "install"}, FooterAction{Key: "esc", Action: "close"})
	case app.OutdatedMode:
		return footerActions(keys.Toggle, keys.Enter, keys.Close)
	case app.OperationMode:
		return footerActions(keys.Up, keys.Down, keys.PageUp, keys.PageDown, keys.Close)
	default:
		return footerActions(keys.Enter, keys.Install, keys.Search, keys.Filter, keys.Uninstall,
			keys.Upgrade, keys.Outdated, keys.Tab, keys.Help, keys.Quit)
	}
}
