// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/janderssonse/brewtui/internal/app"
	"github.com/janderssonse/brewtui/internal/domain"
	"github.com/janderssonse/brewtui/internal/tui/styles"
)

func TestListWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name               string
		cursor, total, h   int
		wantStart, wantEnd int
	}{
		{"empty", 0, 0, 5, 0, 0},
		{"fits", 2, 3, 5, 0, 3},
		{"cursor in first page", 4, 20, 5, 0, 5},
		{"cursor past first page", 9, 20, 5, 5, 10},
		{"cursor at end", 19, 20, 5, 15, 20},
		{"no height", 3, 20, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			start, end := listWindow(tt.cursor, tt.total, tt.h)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestRefreshedAgo(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "not refreshed yet", refreshedAgo(time.Time{}, now))
	assert.Equal(t, "refreshed 0s ago", refreshedAgo(now, now))
	assert.Equal(t, "refreshed 95s ago", refreshedAgo(now.Add(-95*time.Second), now))
}

func TestConfirmPrompt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode app.ConfirmMode
		want string
	}{
		{app.ConfirmMode{Action: domain.InstallAction("wget"), Name: "wget"}, "Install 'wget' ? (y/N)"},
		{app.ConfirmMode{Action: domain.UninstallAction("git"), Name: "git"}, "Uninstall 'git' ? (y/N)"},
		{app.ConfirmMode{Action: domain.UpgradeAction("vim"), Name: "vim"}, "Upgrade 'vim' ? (y/N)"},
		{app.ConfirmMode{Action: domain.BulkUpgradeAction([]string{"a", "b"}), Name: "2 packages"}, "Upgrade '2 packages' ? (y/N)"},
		{app.ConfirmMode{Action: domain.InstallToolAction(), Name: domain.ToolName}, "Install Homebrew? (y/N)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ConfirmPrompt(tt.mode))
		})
	}
}

func TestConfirmOverlayListsBulkNames(t *testing.T) {
	t.Parallel()

	overlay := confirmOverlay(app.ConfirmMode{
		Action: domain.BulkUpgradeAction([]string{"git", "wget"}),
		Name:   "2 packages",
	}, 80)

	assert.Contains(t, overlay, "git, wget")
}

func TestHelpMarkdown(t *testing.T) {
	t.Parallel()

	markdown := HelpMarkdown(app.DefaultKeyMap())

	for _, want := range []string{"## Navigation", "## Outdated list", "| `q` | quit |", "| `pgup` | scroll back 10 |"} {
		assert.Contains(t, markdown, want)
	}

	assert.Contains(t, RenderHelp(app.DefaultKeyMap()), "Navigation")
}

func TestRenderFooter(t *testing.T) {
	t.Parallel()

	keys := app.DefaultKeyMap()
	footer := RenderFooter(styles.New(), 100, "Installed: 0", footerActions(keys.Quit, keys.Help))

	assert.Contains(t, footer, "Installed: 0")
	assert.Contains(t, footer, "[q] quit")
	assert.Contains(t, footer, "[?] help")
}

func TestOperationFooter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "lines 40/120 (↑/↓ scroll, PgUp/PgDn, Home/End)", OperationFooter(40, 120))
}

func TestStatusIcon(t *testing.T) {
	t.Parallel()

	s := styles.New()

	assert.Contains(t, s.StatusIcon("outdated"), "↑")
	assert.Contains(t, s.StatusIcon("installed"), "✓")
	assert.Contains(t, s.StatusIcon("failed"), "✗")
	assert.Contains(t, s.Keybinding("q", "quit"), "[q]")
}
