// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides the brewtui command-line entry: it starts the TUI or,
// with HOMEBREW_TUI_DEBUG set, prints the installed formulae and exits.
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/janderssonse/brewtui/internal/adapters/homebrew"
	"github.com/janderssonse/brewtui/internal/config"
	"github.com/janderssonse/brewtui/internal/console"
	"github.com/janderssonse/brewtui/internal/domain"
	"github.com/janderssonse/brewtui/internal/logging"
	"github.com/janderssonse/brewtui/internal/tui"
)

// version is overridden at build time with -ldflags "-X ...cli.version=v1.2.3".
var version = "dev" //nolint:gochecknoglobals

// Launcher starts the interactive interface.
type Launcher func(ctx context.Context, cfg config.Config) error

// CLI wires configuration, output and the interactive launcher into a root command.
type CLI struct {
	app     *cli.Command
	cfg     config.Config
	out     *console.Output
	launch  Launcher
	gateway domain.PackageGateway
}

// Option configures a CLI.
type Option func(*CLI)

// WithOutput replaces the process streams.
func WithOutput(out *console.Output) Option {
	return func(c *CLI) { c.out = out }
}

// WithLauncher replaces the interactive interface.
func WithLauncher(launch Launcher) Option {
	return func(c *CLI) { c.launch = launch }
}

// WithGateway replaces the package manager used by the diagnostic listing.
func WithGateway(gateway domain.PackageGateway) Option {
	return func(c *CLI) { c.gateway = gateway }
}

// NewCLI creates the root command for cfg.
func NewCLI(cfg config.Config, opts ...Option) *CLI {
	app := &CLI{
		cfg:    cfg,
		out:    console.New(),
		launch: tui.LaunchInteractive,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.gateway == nil {
		app.gateway = homebrew.NewSystemGateway(cfg.BrewBinary)
	}

	app.app = &cli.Command{
		Name:    "brewtui",
		Usage:   "Browse, install, upgrade and remove Homebrew formulae",
		Version: version,
		Description: `An interactive terminal front-end for Homebrew.

KEYS:
  tab        switch between installed and available columns
  enter      uninstall the installed / install the available selection
  i / s / f  install by name / search / filter available
  u / r      upgrade / uninstall the selected installed formula
  o          outdated formulae, with bulk upgrade
  ?          all key bindings

ENVIRONMENT:
  HOMEBREW_TUI_DEBUG      print installed formulae one per line and exit
  HOMEBREW_TUI_BREW       path to the brew binary (default: brew)
  HOMEBREW_TUI_LOG_LEVEL  debug, info, warn or error (default: info)`,
		Writer:    app.out.Stdout,
		ErrWriter: app.out.Stderr,
		Action:    app.defaultAction,
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return domain.NewExitError(domain.ExitUsageError, "Incorrect usage", err)
		},
	}

	return app
}

// Run executes the CLI application.
func (app *CLI) Run(ctx context.Context, args []string) error {
	return app.app.Run(ctx, args)
}

// Command returns the root command.
func (app *CLI) Command() *cli.Command {
	return app.app
}

func (app *CLI) defaultAction(ctx context.Context, _ *cli.Command) error {
	if app.cfg.Debug {
		return app.runDiagnostic(ctx)
	}

	if err := app.launch(ctx, app.cfg); err != nil {
		app.out.Explain(err)

		return domain.NewExitError(domain.ExitGeneralError, "Application error", err)
	}

	return nil
}

// runDiagnostic lists installed formulae without starting the TUI.
func (app *CLI) runDiagnostic(ctx context.Context) error {
	logging.InitForCLI(logging.ParseLevel(app.cfg.LogLevel), app.out.Stderr)

	installed, err := app.gateway.ListInstalled(ctx)
	if err != nil {
		app.out.Errorf("Error listing installed formulae: %v", err)

		code := domain.ExitGeneralError
		if domain.IsSpawnFailure(err) {
			code = domain.ExitNotFoundError
		}

		// Already reported above.
		return domain.NewExitError(code, "", fmt.Errorf("diagnostic listing: %w", err))
	}

	names := make([]string, 0, len(installed))
	for _, pkg := range installed {
		names = append(names, pkg.Name)
	}

	app.out.List(names)

	return nil
}
