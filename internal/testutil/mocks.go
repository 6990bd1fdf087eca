// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

// Package testutil provides testify mocks for the domain ports.
package testutil

import (
	"context"

	"github.com/janderssonse/brewtui/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockCommandRunner mocks the CommandRunner port for testing.
type MockCommandRunner struct {
	mock.Mock
}

// ExecuteWithOutput mocks command execution with output capture.
// Expectations are keyed on the command name followed by its arguments.
func (m *MockCommandRunner) ExecuteWithOutput(ctx context.Context, name string, args ...string) (string, error) {
	callArgs := m.Called(ctx, append([]string{name}, args...))

	return callArgs.String(0), callArgs.Error(1)
}

// Stream mocks streamed execution. Lines configured with StreamLines are
// replayed to onLine before the configured error is returned.
func (m *MockCommandRunner) Stream(ctx context.Context, onLine domain.LineHandler, name string, args ...string) error {
	callArgs := m.Called(ctx, append([]string{name}, args...))

	if lines, ok := callArgs.Get(0).([]string); ok {
		for _, line := range lines {
			onLine(line)
		}
	}

	return callArgs.Error(1)
}

// MockGateway mocks the PackageGateway port for testing.
type MockGateway struct {
	mock.Mock
}

// ListInstalled mocks listing installed packages.
func (m *MockGateway) ListInstalled(ctx context.Context) ([]domain.PackageSummary, error) {
	args := m.Called(ctx)
	if result, ok := args.Get(0).([]domain.PackageSummary); ok {
		return result, args.Error(1)
	}

	return nil, args.Error(1)
}

// Info mocks a detail lookup.
func (m *MockGateway) Info(ctx context.Context, name string) (domain.PackageSummary, error) {
	args := m.Called(ctx, name)
	if result, ok := args.Get(0).(domain.PackageSummary); ok {
		return result, args.Error(1)
	}

	return domain.PackageSummary{}, args.Error(1)
}

// Search mocks a search.
func (m *MockGateway) Search(ctx context.Context, query string) ([]string, error) {
	args := m.Called(ctx, query)

	return stringsOrNil(args.Get(0)), args.Error(1)
}

// AllAvailable mocks the available listing.
func (m *MockGateway) AllAvailable(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)

	return stringsOrNil(args.Get(0)), args.Error(1)
}

// Outdated mocks the outdated check.
func (m *MockGateway) Outdated(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)

	return stringsOrNil(args.Get(0)), args.Error(1)
}

// Install mocks installation.
func (m *MockGateway) Install(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

// Upgrade mocks upgrading.
func (m *MockGateway) Upgrade(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

// Uninstall mocks removal.
func (m *MockGateway) Uninstall(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

// Probe mocks the presence check.
func (m *MockGateway) Probe(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// OperationFor mocks building an operation.
func (m *MockGateway) OperationFor(action domain.ConfirmAction) domain.Operation {
	args := m.Called(action)
	if op, ok := args.Get(0).(domain.Operation); ok {
		return op
	}

	return domain.Operation{}
}

// RunOperation mocks a streamed operation. A []string first return value is
// replayed to onLine.
func (m *MockGateway) RunOperation(ctx context.Context, op domain.Operation, onLine domain.LineHandler) error {
	args := m.Called(ctx, op)

	if lines, ok := args.Get(0).([]string); ok {
		for _, line := range lines {
			onLine(line)
		}
	}

	return args.Error(1)
}

func stringsOrNil(value any) []string {
	if result, ok := value.([]string); ok {
		return result
	}

	return nil
}
