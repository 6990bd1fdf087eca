// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

// Package homebrew implements the package gateway on top of the brew CLI.
package homebrew

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/janderssonse/brewtui/internal/adapters/platform"
	"github.com/janderssonse/brewtui/internal/config"
	"github.com/janderssonse/brewtui/internal/domain"
	"github.com/janderssonse/brewtui/internal/stringutil"
)

// catchAllPattern makes brew search return every formula.
const catchAllPattern = "/.*/"

// Environment keeps brew output plain: no colour codes and no env hints
// between the lines shown in the log panes.
var Environment = []string{"HOMEBREW_NO_COLOR=1", "HOMEBREW_NO_ENV_HINTS=1"} //nolint:gochecknoglobals

// Gateway issues brew subprocess calls and decodes their output.
// It holds no mutable state and is safe for concurrent use.
type Gateway struct {
	runner domain.CommandRunner
	binary string
}

// NewGateway creates a gateway invoking binary through runner.
func NewGateway(runner domain.CommandRunner, binary string) *Gateway {
	if binary == "" {
		binary = config.DefaultBrewBinary
	}

	return &Gateway{runner: runner, binary: binary}
}

// NewSystemGateway creates a gateway running binary as a real subprocess
// with Environment added to the inherited environment.
func NewSystemGateway(binary string) *Gateway {
	return NewGateway(platform.NewCommandRunnerWithEnv(Environment...), binary)
}

// ListInstalled lists installed formulae by name, falling back to the JSON listing.
func (g *Gateway) ListInstalled(ctx context.Context) ([]domain.PackageSummary, error) {
	output, plainErr := g.runner.ExecuteWithOutput(ctx, g.binary, "list", "--formula")
	if plainErr == nil {
		if names := stringutil.NonEmptyLines(output); len(names) > 0 {
			summaries := make([]domain.PackageSummary, 0, len(names))
			for _, name := range names {
				summaries = append(summaries, domain.NewPackageSummary(name))
			}

			return summaries, nil
		}
	}

	args := []string{"list", "--formula", "--json=v2"}

	jsonOutput, err := g.runner.ExecuteWithOutput(ctx, g.binary, args...)
	if err != nil {
		if plainErr != nil {
			return nil, fmt.Errorf("list installed formulae: %w", errors.Join(plainErr, err))
		}

		return nil, fmt.Errorf("list installed formulae: %w", err)
	}

	formulae, err := decodeFormulae(g.commandLine(args), jsonOutput)
	if err != nil {
		return nil, fmt.Errorf("list installed formulae: %w", err)
	}

	return formulae, nil
}

// Info returns full details for one formula.
func (g *Gateway) Info(ctx context.Context, name string) (domain.PackageSummary, error) {
	args := []string{"info", "--json=v2", name}

	output, err := g.runner.ExecuteWithOutput(ctx, g.binary, args...)
	if err != nil {
		return domain.PackageSummary{}, fmt.Errorf("info %s: %w", name, err)
	}

	formulae, err := decodeFormulae(g.commandLine(args), output)
	if err != nil {
		return domain.PackageSummary{}, fmt.Errorf("info %s: %w", name, err)
	}

	if len(formulae) == 0 {
		return domain.PackageSummary{}, &domain.NotFoundError{Name: name}
	}

	return formulae[0], nil
}

// Search returns matching names in the order brew prints them.
func (g *Gateway) Search(ctx context.Context, query string) ([]string, error) {
	output, err := g.runner.ExecuteWithOutput(ctx, g.binary, "search", query)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	return parseSearchOutput(output), nil
}

// AllAvailable returns every formula name, sorted and deduplicated.
func (g *Gateway) AllAvailable(ctx context.Context) ([]string, error) {
	output, err := g.runner.ExecuteWithOutput(ctx, g.binary, "search", catchAllPattern, "--formula")
	if err != nil {
		return nil, fmt.Errorf("list available formulae: %w", err)
	}

	names := parseSearchOutput(output)
	slices.Sort(names)

	return slices.Compact(names), nil
}

// Outdated returns names of installed formulae with newer versions.
func (g *Gateway) Outdated(ctx context.Context) ([]string, error) {
	output, err := g.runner.ExecuteWithOutput(ctx, g.binary, "outdated", "--formula")
	if err != nil {
		return nil, fmt.Errorf("check outdated formulae: %w", err)
	}

	return parseOutdated(output), nil
}

// Install installs a formula, waiting for completion.
func (g *Gateway) Install(ctx context.Context, name string) error {
	return g.runVerb(ctx, "install", name)
}

// Upgrade upgrades a formula, waiting for completion.
func (g *Gateway) Upgrade(ctx context.Context, name string) error {
	return g.runVerb(ctx, "upgrade", name)
}

// Uninstall removes a formula, waiting for completion.
func (g *Gateway) Uninstall(ctx context.Context, name string) error {
	return g.runVerb(ctx, "uninstall", name)
}

// Probe runs brew --version to check that brew can be spawned.
func (g *Gateway) Probe(ctx context.Context) error {
	if _, err := g.runner.ExecuteWithOutput(ctx, g.binary, "--version"); err != nil {
		return fmt.Errorf("probe %s: %w", g.binary, err)
	}

	return nil
}

// OperationFor builds the streamed command for a confirmed action.
// Single package operations reload the installed list on success, bulk
// upgrades do not.
func (g *Gateway) OperationFor(action domain.ConfirmAction) domain.Operation {
	if action.Kind == domain.ActionInstallTool {
		return domain.Operation{
			Title:   action.Verb(),
			Command: "/bin/bash",
			Args:    []string{"-lc", config.BootstrapScript},
			Reload:  true,
		}
	}

	args := append([]string{action.Verb()}, action.Names...)

	return domain.Operation{
		Title:   g.binary + " " + strings.Join(args, " "),
		Command: g.binary,
		Args:    args,
		Reload:  action.Kind != domain.ActionBulkUpgrade,
	}
}

// RunOperation streams op's output to onLine until the process exits.
// Colour codes and carriage-return redraws are removed from each line.
func (g *Gateway) RunOperation(ctx context.Context, op domain.Operation, onLine domain.LineHandler) error {
	return g.runner.Stream(ctx, func(line string) {
		onLine(stringutil.PlainLine(line))
	}, op.Command, op.Args...)
}

func (g *Gateway) runVerb(ctx context.Context, verb, name string) error {
	if _, err := g.runner.ExecuteWithOutput(ctx, g.binary, verb, name); err != nil {
		return fmt.Errorf("%s %s: %w", verb, name, err)
	}

	return nil
}

func (g *Gateway) commandLine(args []string) string {
	return g.binary + " " + strings.Join(args, " ")
}

// parseSearchOutput keeps one name per line and skips "==> Formulae" style headings.
func parseSearchOutput(output string) []string {
	lines := stringutil.NonEmptyLines(output)
	names := make([]string, 0, len(lines))

	for _, line := range lines {
		if strings.HasPrefix(line, "==>") {
			continue
		}

		names = append(names, line)
	}

	return names
}

// parseOutdated takes the first token of each line; brew appends version info after it.
func parseOutdated(output string) []string {
	lines := stringutil.NonEmptyLines(output)
	names := make([]string, 0, len(lines))

	for _, line := range lines {
		names = append(names, stringutil.FirstField(line))
	}

	return names
}

// infoEnvelope is the v2 JSON shape: {"formulae": [...], "casks": [...]}.
type infoEnvelope struct {
	Formulae []domain.PackageSummary `json:"formulae"`
}

// decodeFormulae accepts the envelope, a bare array or a single object.
func decodeFormulae(command, output string) ([]domain.PackageSummary, error) {
	data := bytes.TrimSpace([]byte(output))
	if len(data) == 0 {
		return nil, &domain.DecodeError{Command: command, Err: errors.New("empty output")}
	}

	switch data[0] {
	case '[':
		var formulae []domain.PackageSummary
		if err := json.Unmarshal(data, &formulae); err != nil {
			return nil, &domain.DecodeError{Command: command, Err: err}
		}

		return formulae, nil
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(data, &fields); err != nil {
			return nil, &domain.DecodeError{Command: command, Err: err}
		}

		if _, ok := fields["formulae"]; ok {
			var envelope infoEnvelope
			if err := json.Unmarshal(data, &envelope); err != nil {
				return nil, &domain.DecodeError{Command: command, Err: err}
			}

			return envelope.Formulae, nil
		}

		var single domain.PackageSummary
		if err := json.Unmarshal(data, &single); err != nil {
			return nil, &domain.DecodeError{Command: command, Err: err}
		}

		if single.Name == "" {
			return nil, nil
		}

		return []domain.PackageSummary{single}, nil
	default:
		return nil, &domain.DecodeError{Command: command, Err: fmt.Errorf("unexpected leading byte %q", data[0])}
	}
}
