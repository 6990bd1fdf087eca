// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors. Typed errors below match these with errors.Is.
var (
	ErrToolInvocation = errors.New("tool invocation failed")
	ErrDecode         = errors.New("malformed tool output")
	ErrNotFound       = errors.New("package not found")
	ErrChannelClosed  = errors.New("event channel closed")
	ErrNoTerminal     = errors.New("interactive mode requires a terminal")
)

// InvocationStage tells where a subprocess invocation failed.
type InvocationStage string

// Invocation stages.
const (
	StageSpawn InvocationStage = "spawn"
	StageExit  InvocationStage = "exit"
	StageWait  InvocationStage = "wait"
)

// ToolInvocationError reports a spawn failure, wait failure or nonzero exit.
type ToolInvocationError struct {
	Command  string
	Args     []string
	Stage    InvocationStage
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ToolInvocationError) Error() string {
	switch e.Stage {
	case StageSpawn:
		return fmt.Sprintf("failed to spawn %s: %v", e.Command, e.Err)
	case StageWait:
		return fmt.Sprintf("failed waiting for %s: %v", e.Command, e.Err)
	default:
		msg := fmt.Sprintf("%s: %s", e.commandLine(), e.Status())
		if e.Stderr != "" {
			msg += " (stderr: " + e.Stderr + ")"
		}

		return msg
	}
}

// Status renders the exit status the way a shell reports it.
func (e *ToolInvocationError) Status() string {
	if e.Stage != StageExit {
		return string(e.Stage) + " failure"
	}

	return fmt.Sprintf("exit status %d", e.ExitCode)
}

func (e *ToolInvocationError) commandLine() string {
	if len(e.Args) == 0 {
		return e.Command
	}

	return e.Command + " " + strings.Join(e.Args, " ")
}

func (e *ToolInvocationError) Unwrap() error { return e.Err }

// Is matches ErrToolInvocation.
func (e *ToolInvocationError) Is(target error) bool { return target == ErrToolInvocation }

// DecodeError reports structured output that could not be decoded.
type DecodeError struct {
	Command string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s output: %v", e.Command, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is matches ErrDecode.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// NotFoundError reports an info response without entries.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return "no info for " + e.Name
}

// Is matches ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ChannelSendError reports a send after the event consumer has gone away.
// Producers treat it as a shutdown race and drop the event.
type ChannelSendError struct {
	Event string
}

func (e *ChannelSendError) Error() string {
	return fmt.Sprintf("send %s: %v", e.Event, ErrChannelClosed)
}

// Is matches ErrChannelClosed.
func (e *ChannelSendError) Is(target error) bool { return target == ErrChannelClosed }

// IsSpawnFailure reports whether err means the command could not be started at all.
func IsSpawnFailure(err error) bool {
	var invErr *ToolInvocationError
	if errors.As(err, &invErr) {
		return invErr.Stage == StageSpawn
	}

	return false
}

// ErrorInfo provides user-friendly error information.
type ErrorInfo struct {
	Message     string   // User-friendly message
	Suggestions []string // Actionable suggestions
}

func getErrorMatchers() []struct {
	target   error
	patterns []string
	info     ErrorInfo
} {
	return []struct {
		target   error
		patterns []string
		info     ErrorInfo
	}{
		{
			target:   ErrNoTerminal,
			patterns: []string{"terminal", "tty"},
			info: ErrorInfo{
				Message:     "No terminal available",
				Suggestions: []string{"Run brewtui from an interactive terminal", "Set HOMEBREW_TUI_DEBUG=1 for a plain listing"},
			},
		},
		{
			patterns: []string{"executable file not found", "no such file", "failed to spawn"},
			info: ErrorInfo{
				Message:     ToolName + " is not installed",
				Suggestions: []string{"Install it from https://brew.sh", "Set HOMEBREW_TUI_BREW to the brew binary path"},
			},
		},
		{
			target:   ErrDecode,
			patterns: []string{"invalid character", "unexpected end of json"},
			info: ErrorInfo{
				Message:     "Unexpected output from brew",
				Suggestions: []string{"Run 'brew update' and try again"},
			},
		},
		{
			target:   ErrNotFound,
			patterns: []string{"no available formula", "no info for"},
			info: ErrorInfo{
				Message:     "Formula not found",
				Suggestions: []string{"Check the formula name spelling", "Search with 'brew search NAME'"},
			},
		},
		{
			patterns: []string{"network", "connection", "timeout", "could not resolve host"},
			info: ErrorInfo{
				Message:     "Network connection failed",
				Suggestions: []string{"Check your internet connection", "Try again in a few moments"},
			},
		},
		{
			patterns: []string{"permission", "denied", "not writable"},
			info: ErrorInfo{
				Message:     "Permission denied",
				Suggestions: []string{"Check ownership of the Homebrew prefix"},
			},
		},
	}
}

// DescribeError analyzes an error and returns user-friendly information.
func DescribeError(err error) ErrorInfo {
	if err == nil {
		return ErrorInfo{}
	}

	errStr := strings.ToLower(err.Error())

	for _, matcher := range getErrorMatchers() {
		if matcher.target != nil && errors.Is(err, matcher.target) {
			return matcher.info
		}

		for _, pattern := range matcher.patterns {
			if strings.Contains(errStr, pattern) {
				return matcher.info
			}
		}
	}

	return ErrorInfo{
		Message:     "Operation failed",
		Suggestions: []string{"Run 'brew doctor' for more details"},
	}
}
