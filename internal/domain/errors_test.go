// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

package domain_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/janderssonse/brewtui/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExitErrorFormatting tests that ExitError properly formats messages.
func TestExitErrorFormatting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		exitError       *domain.ExitError
		expectedCode    int
		expectedMessage string
	}{
		{
			name:            "exit error with underlying error",
			exitError:       domain.NewExitError(1, "Application error", errors.New("boom")),
			expectedCode:    1,
			expectedMessage: "Application error: boom",
		},
		{
			name:            "exit error without underlying error",
			exitError:       domain.NewExitError(2, "Invalid usage", nil),
			expectedCode:    2,
			expectedMessage: "Invalid usage",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expectedMessage, tc.exitError.Error())
			assert.Equal(t, tc.expectedCode, tc.exitError.Code)
		})
	}
}

func TestToolInvocationError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        *domain.ToolInvocationError
		wantMsg    string
		wantSpawn  bool
		wantStatus string
	}{
		{
			name:       "spawn failure",
			err:        &domain.ToolInvocationError{Command: "brew", Stage: domain.StageSpawn, Err: errors.New("not found")},
			wantMsg:    "failed to spawn brew: not found",
			wantSpawn:  true,
			wantStatus: "spawn failure",
		},
		{
			name:       "wait failure",
			err:        &domain.ToolInvocationError{Command: "brew", Stage: domain.StageWait, Err: errors.New("broken pipe")},
			wantMsg:    "failed waiting for brew: broken pipe",
			wantStatus: "wait failure",
		},
		{
			name: "nonzero exit with stderr",
			err: &domain.ToolInvocationError{
				Command: "brew", Args: []string{"info", "nope"},
				Stage: domain.StageExit, ExitCode: 1, Stderr: "Error: No available formula",
			},
			wantMsg:    "brew info nope: exit status 1 (stderr: Error: No available formula)",
			wantStatus: "exit status 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			wrapped := fmt.Errorf("list installed: %w", tt.err)

			assert.Equal(t, tt.wantMsg, tt.err.Error())
			assert.Equal(t, tt.wantStatus, tt.err.Status())
			assert.ErrorIs(t, wrapped, domain.ErrToolInvocation)
			assert.Equal(t, tt.wantSpawn, domain.IsSpawnFailure(wrapped))

			var target *domain.ToolInvocationError
			require.ErrorAs(t, wrapped, &target)
			assert.Equal(t, tt.err.Stage, target.Stage)
		})
	}
}

func TestTypedErrorsMatchSentinels(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, &domain.DecodeError{Command: "brew info", Err: errors.New("eof")}, domain.ErrDecode)
	assert.ErrorIs(t, &domain.NotFoundError{Name: "wget"}, domain.ErrNotFound)
	assert.ErrorIs(t, &domain.ChannelSendError{Event: "LogLine"}, domain.ErrChannelClosed)
	assert.NotErrorIs(t, &domain.NotFoundError{Name: "wget"}, domain.ErrDecode)
	assert.False(t, domain.IsSpawnFailure(errors.New("plain")))
	assert.Equal(t, "no info for wget", (&domain.NotFoundError{Name: "wget"}).Error())
}

func TestDescribeError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantMessage string
	}{
		{"nil error", nil, ""},
		{"missing tool", &domain.ToolInvocationError{Command: "brew", Stage: domain.StageSpawn, Err: errors.New("executable file not found in $PATH")}, "Homebrew is not installed"},
		{"decode", &domain.DecodeError{Command: "brew info", Err: errors.New("x")}, "Unexpected output from brew"},
		{"not found", &domain.NotFoundError{Name: "zzz"}, "Formula not found"},
		{"no terminal", fmt.Errorf("launch: %w", domain.ErrNoTerminal), "No terminal available"},
		{"network", errors.New("Could not resolve host: github.com"), "Network connection failed"},
		{"generic", errors.New("something odd"), "Operation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			info := domain.DescribeError(tt.err)
			assert.Equal(t, tt.wantMessage, info.Message)

			if tt.err != nil {
				assert.NotEmpty(t, info.Suggestions)
			}
		})
	}
}

func TestConfirmAction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		action    domain.ConfirmAction
		wantVerb  string
		wantLabel string
	}{
		{domain.InstallAction("wget"), "install", "Install"},
		{domain.UninstallAction("wget"), "uninstall", "Uninstall"},
		{domain.UpgradeAction("wget"), "upgrade", "Upgrade"},
		{domain.BulkUpgradeAction([]string{"a", "b"}), "upgrade", "Bulk Upgrade"},
		{domain.InstallToolAction(), "install-homebrew", "Install Homebrew"},
	}

	for _, tt := range tests {
		t.Run(tt.wantLabel, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.wantVerb, tt.action.Verb())
			assert.Equal(t, tt.wantLabel, tt.action.Label())
		})
	}
}

func TestPackageSummaryHelpers(t *testing.T) {
	t.Parallel()

	pkg := domain.PackageSummary{
		Name:         "wget",
		Dependencies: []string{"libidn2", "openssl@3"},
		Installed:    []domain.InstalledVersion{{Version: "1.24.5"}, {Version: "1.25.0"}},
		Versions:     json.RawMessage(`{"stable":"1.25.0","head":"HEAD"}`),
	}

	assert.Equal(t, []string{"1.24.5", "1.25.0"}, pkg.InstalledVersions())
	assert.Equal(t, "libidn2, openssl@3", pkg.DependencyList())
	assert.True(t, pkg.HasDetails())
	assert.False(t, domain.NewPackageSummary("git").HasDetails())
	assert.Equal(t, "1.25.0", pkg.StableVersion())
	assert.Empty(t, domain.PackageSummary{Versions: json.RawMessage(`[`)}.StableVersion())
	assert.Empty(t, domain.NewPackageSummary("git").StableVersion())
}
