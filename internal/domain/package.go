// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

// Package domain contains the core types and ports of brewtui.
package domain

import (
	"encoding/json"
	"strings"
)

// InstalledVersion is one installed keg of a formula.
type InstalledVersion struct {
	Version string `json:"version"`
}

// PackageSummary describes a formula as reported by the package manager.
// Only Name is guaranteed; the rest is filled in by detail lookups.
type PackageSummary struct {
	Name         string             `json:"name"`
	FullName     string             `json:"full_name,omitempty"`
	Desc         string             `json:"desc,omitempty"`
	Homepage     string             `json:"homepage,omitempty"`
	License      string             `json:"license,omitempty"`
	Dependencies []string           `json:"dependencies,omitempty"`
	Installed    []InstalledVersion `json:"installed,omitempty"`
	Versions     json.RawMessage    `json:"versions,omitempty"`
	Caveats      string             `json:"caveats,omitempty"`
}

// NewPackageSummary creates a summary carrying only a name.
func NewPackageSummary(name string) PackageSummary {
	return PackageSummary{Name: name}
}

// InstalledVersions returns the installed version strings in order.
func (p PackageSummary) InstalledVersions() []string {
	versions := make([]string, 0, len(p.Installed))
	for _, v := range p.Installed {
		versions = append(versions, v.Version)
	}

	return versions
}

// HasDetails reports whether the summary was populated by an info lookup.
func (p PackageSummary) HasDetails() bool {
	return p.FullName != "" || p.Desc != "" || p.Homepage != "" || len(p.Installed) > 0
}

// DependencyList returns dependencies as a comma separated string.
func (p PackageSummary) DependencyList() string {
	return strings.Join(p.Dependencies, ", ")
}

// StableVersion returns versions.stable, or "" when absent or malformed.
func (p PackageSummary) StableVersion() string {
	if len(p.Versions) == 0 {
		return ""
	}

	var versions struct {
		Stable string `json:"stable"`
	}

	if err := json.Unmarshal(p.Versions, &versions); err != nil {
		return ""
	}

	return versions.Stable
}
