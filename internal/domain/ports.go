// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import "context"

// LineHandler receives one line of streamed subprocess output.
// It may be called concurrently for stdout and stderr.
type LineHandler func(line string)

// CommandRunner is the port for executing system commands.
type CommandRunner interface {
	// ExecuteWithOutput runs a command to completion and returns its stdout.
	ExecuteWithOutput(ctx context.Context, name string, args ...string) (string, error)
	// Stream runs a command, delivering stdout and stderr line by line as they arrive.
	Stream(ctx context.Context, onLine LineHandler, name string, args ...string) error
}

// PackageGateway is the port to the external package manager.
type PackageGateway interface {
	ListInstalled(ctx context.Context) ([]PackageSummary, error)
	Info(ctx context.Context, name string) (PackageSummary, error)
	Search(ctx context.Context, query string) ([]string, error)
	AllAvailable(ctx context.Context) ([]string, error)
	Outdated(ctx context.Context) ([]string, error)
	Install(ctx context.Context, name string) error
	Upgrade(ctx context.Context, name string) error
	Uninstall(ctx context.Context, name string) error

	// Probe checks that the package manager can be started.
	Probe(ctx context.Context) error
	// OperationFor builds the streamed operation for a confirmed action.
	OperationFor(action ConfirmAction) Operation
	// RunOperation executes op, streaming its output to onLine.
	RunOperation(ctx context.Context, op Operation, onLine LineHandler) error
}
