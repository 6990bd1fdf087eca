// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

// Package config holds the built-in runtime settings of brewtui.
// There is no configuration file; a few environment variables override defaults.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Environment variables read at startup.
const (
	EnvDebug    = "HOMEBREW_TUI_DEBUG"
	EnvBrew     = "HOMEBREW_TUI_BREW"
	EnvLogLevel = "HOMEBREW_TUI_LOG_LEVEL"
)

// Defaults.
const (
	DefaultBrewBinary      = "brew"
	DefaultTickInterval    = 200 * time.Millisecond
	DefaultRefreshInterval = 5 * time.Minute
	DefaultProbeDelay      = 250 * time.Millisecond
	DefaultLogCapacity     = 300
	DefaultLogEvict        = 100
	DefaultOpLogCapacity   = 2000
	DefaultOpLogEvict      = 500
	DefaultLogLevel        = "info"

	// BootstrapScript installs Homebrew itself when brew is missing.
	BootstrapScript = `/bin/bash -c "$(curl -fsSL https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh)"`
)

// Config contains runtime settings.
type Config struct {
	BrewBinary      string
	TickInterval    time.Duration
	RefreshInterval time.Duration
	ProbeDelay      time.Duration
	LogCapacity     int
	LogEvict        int
	OpLogCapacity   int
	OpLogEvict      int
	LogLevel        string
	Debug           bool
	LockPath        string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BrewBinary:      DefaultBrewBinary,
		TickInterval:    DefaultTickInterval,
		RefreshInterval: DefaultRefreshInterval,
		ProbeDelay:      DefaultProbeDelay,
		LogCapacity:     DefaultLogCapacity,
		LogEvict:        DefaultLogEvict,
		OpLogCapacity:   DefaultOpLogCapacity,
		OpLogEvict:      DefaultOpLogEvict,
		LogLevel:        DefaultLogLevel,
		LockPath:        filepath.Join(os.TempDir(), "brewtui.lock"),
	}
}

// Load returns the defaults with process environment overrides applied.
func Load() Config {
	return LoadWithEnv(os.LookupEnv)
}

// LoadWithEnv applies overrides from lookup, which has the signature of os.LookupEnv.
func LoadWithEnv(lookup func(string) (string, bool)) Config {
	cfg := Default()

	if _, ok := lookup(EnvDebug); ok {
		cfg.Debug = true
	}

	if brew, ok := lookup(EnvBrew); ok && strings.TrimSpace(brew) != "" {
		cfg.BrewBinary = strings.TrimSpace(brew)
	}

	if level, ok := lookup(EnvLogLevel); ok && level != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(level))
	}

	return cfg
}
