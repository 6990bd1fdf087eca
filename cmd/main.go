// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

// Package main provides the CLI entry point for brewtui.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofrs/flock"

	"github.com/janderssonse/brewtui/internal/cli"
	"github.com/janderssonse/brewtui/internal/config"
	"github.com/janderssonse/brewtui/internal/console"
	"github.com/janderssonse/brewtui/internal/domain"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()

	// Acquire process lock to prevent multiple brewtui instances
	lock := flock.New(cfg.LockPath)

	locked, err := lock.TryLock()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to acquire process lock: %v\n", err)

		return domain.ExitSystemError
	}

	if !locked {
		fmt.Fprintf(os.Stderr, "Another brewtui instance is already running\n")

		return domain.ExitGeneralError
	}

	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			console.New().Warningf("failed to release process lock: %v", unlockErr)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if err := cli.NewCLI(cfg).Run(ctx, os.Args); err != nil {
		exitErr := &domain.ExitError{}
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintf(os.Stderr, "%s\n", exitErr.Error())
			}

			return exitErr.Code
		}

		fmt.Fprintf(os.Stderr, "Unexpected error: %v\n", err)

		return domain.ExitGeneralError
	}

	return domain.ExitSuccess
}
