// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

package cli_test

import (
	"bytes"
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/janderssonse/brewtui/internal/cli"
	"github.com/janderssonse/brewtui/internal/config"
	"github.com/janderssonse/brewtui/internal/console"
	"github.com/janderssonse/brewtui/internal/domain"
	"github.com/janderssonse/brewtui/internal/testutil"
)

type harness struct {
	cli      *cli.CLI
	gateway  *testutil.MockGateway
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	launched int
}

func newHarness(t *testing.T, cfg config.Config, launchErr error) *harness {
	t.Helper()

	h := &harness{
		gateway: &testutil.MockGateway{},
		stdout:  &bytes.Buffer{},
		stderr:  &bytes.Buffer{},
	}

	launch := func(context.Context, config.Config) error {
		h.launched++

		return launchErr
	}

	h.cli = cli.NewCLI(cfg,
		cli.WithOutput(console.NewWithWriters(h.stdout, h.stderr)),
		cli.WithLauncher(launch),
		cli.WithGateway(h.gateway),
	)

	return h
}

func debugConfig() config.Config {
	cfg := config.Default()
	cfg.Debug = true

	return cfg
}

func TestNewCLI(t *testing.T) {
	t.Parallel()

	h := newHarness(t, config.Default(), nil)
	cmd := h.cli.Command()

	require.NotNil(t, cmd)
	assert.Equal(t, "brewtui", cmd.Name)
	assert.NotEmpty(t, cmd.Usage)
	assert.Contains(t, cmd.Description, "HOMEBREW_TUI_DEBUG")
	assert.Empty(t, cmd.Commands)
}

func TestRunLaunchesInterface(t *testing.T) {
	t.Parallel()

	h := newHarness(t, config.Default(), nil)

	require.NoError(t, h.cli.Run(context.Background(), []string{"brewtui"}))
	assert.Equal(t, 1, h.launched)
	h.gateway.AssertNotCalled(t, "ListInstalled", mock.Anything)
}

func TestRunMapsLaunchFailure(t *testing.T) {
	t.Parallel()

	h := newHarness(t, config.Default(), domain.ErrNoTerminal)

	err := h.cli.Run(context.Background(), []string{"brewtui"})
	require.Error(t, err)

	var exitErr *domain.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, domain.ExitGeneralError, exitErr.Code)
	assert.Equal(t, "Application error", exitErr.Message)
	require.ErrorIs(t, err, domain.ErrNoTerminal)
	assert.Contains(t, h.stderr.String(), "No terminal available")
}

func TestDiagnosticListsInstalled(t *testing.T) {
	t.Parallel()

	h := newHarness(t, debugConfig(), nil)
	h.gateway.On("ListInstalled", mock.Anything).Return([]domain.PackageSummary{
		domain.NewPackageSummary("git"),
		domain.NewPackageSummary("wget"),
	}, nil)

	require.NoError(t, h.cli.Run(context.Background(), []string{"brewtui"}))

	assert.Equal(t, "git\nwget\n", h.stdout.String())
	assert.Zero(t, h.launched)
	h.gateway.AssertExpectations(t)
}

func TestDiagnosticFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "brew missing",
			err:      &domain.ToolInvocationError{Command: "brew", Stage: domain.StageSpawn, Err: errors.New("executable file not found in $PATH")},
			wantCode: domain.ExitNotFoundError,
		},
		{
			name:     "brew failed",
			err:      &domain.ToolInvocationError{Command: "brew", Args: []string{"list"}, Stage: domain.StageExit, ExitCode: 1},
			wantCode: domain.ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newHarness(t, debugConfig(), nil)
			h.gateway.On("ListInstalled", mock.Anything).Return(nil, tt.err)

			err := h.cli.Run(context.Background(), []string{"brewtui"})

			var exitErr *domain.ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, tt.wantCode, exitErr.Code)
			assert.Empty(t, exitErr.Message)
			assert.Contains(t, h.stderr.String(), "Error listing installed formulae: "+tt.err.Error())
			assert.Empty(t, h.stdout.String())
		})
	}
}

func TestUsageError(t *testing.T) {
	t.Parallel()

	h := newHarness(t, config.Default(), nil)

	err := h.cli.Run(context.Background(), []string{"brewtui", "--no-such-flag"})

	var exitErr *domain.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, domain.ExitUsageError, exitErr.Code)
	assert.Zero(t, h.launched)
}

func TestVersionFlag(t *testing.T) {
	t.Parallel()

	h := newHarness(t, config.Default(), nil)

	require.NoError(t, h.cli.Run(context.Background(), []string{"brewtui", "--version"}))
	assert.Contains(t, h.stdout.String(), "dev")
	assert.Zero(t, h.launched)
}

func TestDiagnosticAgainstFakeBrew(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("fake brew is a shell script")
	}

	binary, err := testutil.WriteFakeBrew(t.TempDir(), testutil.BrewBehavior{
		Outputs: map[string]string{"list --formula": "git\nwget\n"},
	})
	require.NoError(t, err)

	cfg := debugConfig()
	cfg.BrewBinary = binary

	var stdout, stderr bytes.Buffer

	app := cli.NewCLI(cfg, cli.WithOutput(console.NewWithWriters(&stdout, &stderr)))

	require.NoError(t, app.Run(context.Background(), []string{"brewtui"}))
	assert.Equal(t, "git\nwget\n", stdout.String())
}
