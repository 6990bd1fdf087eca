// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

// Package console writes non-interactive output: the diagnostic listing and
// errors printed outside the TUI.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/janderssonse/brewtui/internal/domain"
)

// Output writes results to Stdout and diagnostics to Stderr.
type Output struct {
	Stdout io.Writer
	Stderr io.Writer
	// Color enables ANSI emphasis on stderr.
	Color bool
}

// New creates an Output for the process streams. Color is enabled only when
// stderr is a terminal and neither NO_COLOR nor TERM=dumb is set.
func New() *Output {
	return &Output{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Color:  IsTTY(os.Stderr.Fd()) && colorAllowed(os.Getenv),
	}
}

// NewWithWriters creates a colorless Output over arbitrary writers.
func NewWithWriters(stdout, stderr io.Writer) *Output {
	return &Output{Stdout: stdout, Stderr: stderr}
}

// IsTTY checks if fd is a terminal (not piped/redirected).
func IsTTY(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// colorAllowed follows no-color.org.
func colorAllowed(getenv func(string) string) bool {
	return getenv("NO_COLOR") == "" && getenv("TERM") != "dumb"
}

// Bold formats text with bold when color is enabled.
func (o *Output) Bold(text string) string {
	if !o.Color {
		return text
	}

	return termenv.String(text).Bold().String()
}

// List writes items to stdout, one per line.
func (o *Output) List(items []string) {
	for _, item := range items {
		_, _ = fmt.Fprintln(o.Stdout, item)
	}
}

// Errorf writes an error line to stderr.
func (o *Output) Errorf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.Stderr, format+"\n", args...)
}

// Warningf writes a warning line to stderr.
func (o *Output) Warningf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.Stderr, "warning: "+format+"\n", args...)
}

// Explain writes the user facing description of err with its suggestions.
func (o *Output) Explain(err error) {
	info := domain.DescribeError(err)
	if info.Message == "" {
		return
	}

	var builder strings.Builder

	builder.WriteString(o.Bold(info.Message) + "\n")

	for _, suggestion := range info.Suggestions {
		builder.WriteString("  • " + suggestion + "\n")
	}

	_, _ = io.WriteString(o.Stderr, builder.String())
}
