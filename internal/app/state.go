// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

// Package app holds the application state machine: package lists, cursors,
// filters, logs and the current mode. It is owned by a single goroutine;
// background results arrive as events and background work leaves through a
// Spawner.
package app

import (
	"fmt"
	"slices"
	"time"

	"github.com/janderssonse/brewtui/internal/config"
	"github.com/janderssonse/brewtui/internal/domain"
	"github.com/janderssonse/brewtui/internal/stringutil"
)

// Focus is the column receiving navigation keys.
type Focus int

// Columns.
const (
	FocusInstalled Focus = iota
	FocusAvailable
)

func (f Focus) String() string {
	if f == FocusAvailable {
		return "Available"
	}

	return "Installed"
}

// Spawner starts background work on behalf of the state machine.
type Spawner interface {
	CheckOutdated()
	FetchInstalledDetail(name string, index int)
	FetchAvailableDetail(name string, index int)
	Search(query string)
	RunAction(action domain.ConfirmAction)
}

type detailKey struct {
	focus Focus
	index int
}

// State is the aggregate root of the UI.
type State struct {
	Installed         []domain.PackageSummary
	Available         []string
	AvailableFiltered []int
	AvailableDetails  *domain.PackageSummary
	Outdated          []string

	Focus             Focus
	SelectedInstalled int
	// SelectedAvailable indexes Available, not AvailableFiltered.
	SelectedAvailable int
	Filter            string

	Logs             *LogBuffer
	Mode             Mode
	Operating        bool
	OperationPercent *int

	Status           string
	StatusLine       string
	LoadingInstalled bool
	LoadingAvailable bool
	LastRefreshed    time.Time
	Quitting         bool

	Keys KeyMap

	lastDetail    *detailKey
	failedDetails map[string]bool
	spawner       Spawner
	cfg           config.Config
	now           func() time.Time
}

// Option configures a State.
type Option func(*State)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *State) { s.now = now }
}

// WithKeyMap overrides the key bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(s *State) { s.Keys = keys }
}

// NewState creates the initial state: empty lists, Normal mode, installed list loading.
func NewState(spawner Spawner, cfg config.Config, opts ...Option) *State {
	s := &State{
		Mode:             NormalMode{},
		Focus:            FocusInstalled,
		Logs:             NewLogBuffer(cfg.LogCapacity, cfg.LogEvict),
		LoadingInstalled: true,
		LoadingAvailable: true,
		Keys:             DefaultKeyMap(),
		failedDetails:    make(map[string]bool),
		spawner:          spawner,
		cfg:              cfg,
		now:              time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.Refresh()

	return s
}

// Log appends a line to the log pane.
func (s *State) Log(line string) {
	s.Logs.Push(line)
}

// Now returns the state's current time.
func (s *State) Now() time.Time {
	return s.now()
}

// SelectedInstalledPackage returns the installed row under the cursor.
func (s *State) SelectedInstalledPackage() (domain.PackageSummary, bool) {
	if s.SelectedInstalled < 0 || s.SelectedInstalled >= len(s.Installed) {
		return domain.PackageSummary{}, false
	}

	return s.Installed[s.SelectedInstalled], true
}

// SelectedAvailableName returns the available name under the cursor.
// A cursor on a row hidden by the filter selects nothing.
func (s *State) SelectedAvailableName() (string, bool) {
	if s.SelectedAvailable < 0 || s.SelectedAvailable >= len(s.Available) {
		return "", false
	}

	if !slices.Contains(s.AvailableFiltered, s.SelectedAvailable) {
		return "", false
	}

	return s.Available[s.SelectedAvailable], true
}

// SelectedName returns the name under the cursor of the focused column.
func (s *State) SelectedName() (string, bool) {
	if s.Focus == FocusAvailable {
		return s.SelectedAvailableName()
	}

	pkg, ok := s.SelectedInstalledPackage()

	return pkg.Name, ok
}

// IsInstalled reports whether name is in the installed list.
func (s *State) IsInstalled(name string) bool {
	return slices.ContainsFunc(s.Installed, func(p domain.PackageSummary) bool { return p.Name == name })
}

// FilteredNames resolves AvailableFiltered to names.
func (s *State) FilteredNames() []string {
	names := make([]string, 0, len(s.AvailableFiltered))
	for _, idx := range s.AvailableFiltered {
		names = append(names, s.Available[idx])
	}

	return names
}

// SetFilter applies a substring filter to the available list.
func (s *State) SetFilter(filter string) {
	s.Filter = filter
	s.AvailableFiltered = filterIndices(s.Available, filter)
}

// ClearFilter removes the filter, restoring every available index.
func (s *State) ClearFilter() {
	s.SetFilter("")
}

// selectFirstMatch moves the available cursor to the first filtered entry, if any.
func (s *State) selectFirstMatch() {
	if len(s.AvailableFiltered) > 0 {
		s.SelectedAvailable = s.AvailableFiltered[0]
	}
}

// filterIndices returns indices of names containing filter, in order.
func filterIndices(names []string, filter string) []int {
	indices := make([]int, 0, len(names))

	for i, name := range names {
		if stringutil.Contains(name, filter) {
			indices = append(indices, i)
		}
	}

	return indices
}

func clampIndex(index, length int) int {
	if length == 0 {
		return 0
	}

	return max(0, min(index, length-1))
}

// Refresh recomputes the derived status line.
func (s *State) Refresh() {
	selected := "none"
	if name, ok := s.SelectedName(); ok {
		tag := "(not installed)"
		if s.IsInstalled(name) {
			tag = "(installed)"
		}

		selected = name + " " + tag
	}

	s.StatusLine = fmt.Sprintf("Installed: %d  Available: %d  Focus: %s  Selected: %s  Mode: %s  Logs: %d",
		len(s.Installed), len(s.Available), s.Focus, selected, s.Mode.Summary(), s.Logs.Len())
}

// LoadDetails issues a detail fetch when the focused cursor rests on a row
// whose details were not requested yet.
func (s *State) LoadDetails() {
	switch s.Focus {
	case FocusInstalled:
		pkg, ok := s.SelectedInstalledPackage()
		if !ok || s.detailLoaded(FocusInstalled, s.SelectedInstalled) {
			return
		}

		s.lastDetail = &detailKey{focus: FocusInstalled, index: s.SelectedInstalled}
		delete(s.failedDetails, pkg.Name)
		s.spawner.FetchInstalledDetail(pkg.Name, s.SelectedInstalled)
	case FocusAvailable:
		name, ok := s.SelectedAvailableName()
		if !ok || s.detailLoaded(FocusAvailable, s.SelectedAvailable) {
			return
		}

		s.lastDetail = &detailKey{focus: FocusAvailable, index: s.SelectedAvailable}
		delete(s.failedDetails, name)
		s.spawner.FetchAvailableDetail(name, s.SelectedAvailable)
	}
}

func (s *State) detailLoaded(focus Focus, index int) bool {
	return s.lastDetail != nil && *s.lastDetail == detailKey{focus: focus, index: index}
}

// DetailFailed reports whether the last detail lookup for name failed.
func (s *State) DetailFailed(name string) bool {
	return s.failedDetails[name]
}

// DetailPackage returns the package to show in the details pane.
func (s *State) DetailPackage() (domain.PackageSummary, bool) {
	if s.Focus == FocusInstalled {
		return s.SelectedInstalledPackage()
	}

	name, ok := s.SelectedAvailableName()
	if !ok {
		return domain.PackageSummary{}, false
	}

	if s.AvailableDetails != nil && s.AvailableDetails.Name == name {
		return *s.AvailableDetails, true
	}

	return domain.NewPackageSummary(name), true
}
