// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// BrewBehavior defines how a fake brew binary answers. Keys are the full
// argument list joined by single spaces, e.g. "list --formula".
type BrewBehavior struct {
	Outputs   map[string]string // args -> stdout
	Stderr    map[string]string // args -> stderr
	ExitCodes map[string]int    // args -> exit code
}

// WriteFakeBrew writes an executable brew script into dir and returns its path.
// Unknown argument lists print an error and exit 1 like brew does.
func WriteFakeBrew(dir string, behavior BrewBehavior) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:gosec
		return "", fmt.Errorf("create fake brew dir: %w", err)
	}

	keys := make([]string, 0, len(behavior.Outputs)+len(behavior.ExitCodes))
	for key := range behavior.Outputs {
		keys = append(keys, key)
	}

	for key := range behavior.ExitCodes {
		keys = append(keys, key)
	}

	for key := range behavior.Stderr {
		keys = append(keys, key)
	}

	slices.Sort(keys)
	keys = slices.Compact(keys)

	var script strings.Builder

	script.WriteString("#!/bin/sh\n# Fake brew binary for testing\n")
	script.WriteString("case \"$*\" in\n")

	for i, key := range keys {
		fmt.Fprintf(&script, "  %s)\n", shellQuote(key))

		if out, ok := behavior.Outputs[key]; ok {
			path := filepath.Join(dir, fmt.Sprintf("brew.%d.out", i))
			if err := os.WriteFile(path, []byte(out), 0o600); err != nil {
				return "", fmt.Errorf("write fake brew output: %w", err)
			}

			fmt.Fprintf(&script, "    cat %s\n", shellQuote(path))
		}

		if errOut, ok := behavior.Stderr[key]; ok {
			path := filepath.Join(dir, fmt.Sprintf("brew.%d.err", i))
			if err := os.WriteFile(path, []byte(errOut), 0o600); err != nil {
				return "", fmt.Errorf("write fake brew stderr: %w", err)
			}

			fmt.Fprintf(&script, "    cat %s >&2\n", shellQuote(path))
		}

		fmt.Fprintf(&script, "    exit %d\n    ;;\n", behavior.ExitCodes[key])
	}

	script.WriteString("  *)\n    echo \"Error: Unknown command: $1\" >&2\n    exit 1\n    ;;\nesac\n")

	binaryPath := filepath.Join(dir, "brew")
	if err := os.WriteFile(binaryPath, []byte(script.String()), 0o755); err != nil { //nolint:gosec
		return "", fmt.Errorf("write fake brew: %w", err)
	}

	return binaryPath, nil
}

// shellQuote wraps s in single quotes for /bin/sh.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
