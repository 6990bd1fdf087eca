// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

// Package platform provides shared command execution functionality.
package platform

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/janderssonse/brewtui/internal/domain"
	"github.com/janderssonse/brewtui/internal/logging"
)

// maxLineSize bounds a single streamed line; brew progress bars can be long.
const maxLineSize = 1024 * 1024

// CommandRunner implements the CommandRunner port for real system commands.
// Output is always captured, never written to the terminal, so it is safe
// to use while the TUI owns the screen.
type CommandRunner struct {
	env []string
}

// NewCommandRunner creates a new command runner inheriting the process environment.
func NewCommandRunner() *CommandRunner {
	return &CommandRunner{env: os.Environ()}
}

// NewCommandRunnerWithEnv creates a runner with extra environment entries appended.
func NewCommandRunnerWithEnv(extra ...string) *CommandRunner {
	return &CommandRunner{env: append(os.Environ(), extra...)}
}

// ExecuteWithOutput runs a command and returns its stdout.
func (r *CommandRunner) ExecuteWithOutput(ctx context.Context, name string, args ...string) (string, error) {
	logging.Debug("runner", "executing %s %s", name, strings.Join(args, " "))

	// #nosec G204 - commands are fixed package manager invocations
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = r.env

	var stderr bytes.Buffer

	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		return "", invocationError(name, args, err, strings.TrimSpace(stderr.String()))
	}

	return string(output), nil
}

// Stream runs a command and hands every stdout and stderr line to onLine as it arrives.
func (r *CommandRunner) Stream(ctx context.Context, onLine domain.LineHandler, name string, args ...string) error {
	logging.Debug("runner", "streaming %s %s", name, strings.Join(args, " "))

	// #nosec G204 - commands are fixed package manager invocations or the bootstrap installer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = r.env

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return &domain.ToolInvocationError{Command: name, Args: args, Stage: domain.StageSpawn, Err: err}
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return &domain.ToolInvocationError{Command: name, Args: args, Stage: domain.StageSpawn, Err: err}
	}

	if err := cmd.Start(); err != nil {
		return &domain.ToolInvocationError{Command: name, Args: args, Stage: domain.StageSpawn, Err: err}
	}

	// Both pipes must be drained before Wait closes them.
	var readers sync.WaitGroup

	readers.Add(2)

	go scanLines(&readers, stdout, onLine)
	go scanLines(&readers, stderr, onLine)

	readers.Wait()

	if err := cmd.Wait(); err != nil {
		return invocationError(name, args, err, "")
	}

	return nil
}

func scanLines(wg *sync.WaitGroup, reader io.Reader, onLine domain.LineHandler) {
	defer wg.Done()

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		onLine(scanner.Text())
	}

	// The child blocks on a full pipe, so keep reading after a scan failure.
	if err := scanner.Err(); err != nil {
		onLine("output skipped: " + err.Error())

		_, _ = io.Copy(io.Discard, reader)
	}
}

// invocationError classifies an exec error into the domain taxonomy.
func invocationError(name string, args []string, err error, stderr string) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &domain.ToolInvocationError{
			Command:  name,
			Args:     args,
			Stage:    domain.StageExit,
			ExitCode: exitErr.ExitCode(),
			Stderr:   stderr,
			Err:      err,
		}
	}

	stage := domain.StageWait

	var execErr *exec.Error
	if errors.As(err, &execErr) || errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
		stage = domain.StageSpawn
	}

	return &domain.ToolInvocationError{Command: name, Args: args, Stage: stage, Err: err, Stderr: stderr}
}
