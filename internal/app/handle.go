// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

package app

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/janderssonse/brewtui/internal/domain"
)

const pageSize = 10

// HandleKey dispatches a key press to the handler of the current mode.
// Each handler receives its mode's payload and returns the next mode.
func (s *State) HandleKey(msg tea.KeyMsg) {
	if key.Matches(msg, s.Keys.ForceQuit) {
		s.Quitting = true

		return
	}

	switch mode := s.Mode.(type) {
	case NormalMode:
		s.Mode = s.handleNormal(msg)
	case HelpMode:
		s.Mode = NormalMode{}
	case InputMode:
		s.Mode = s.handleInput(mode, msg)
	case ConfirmMode:
		s.Mode = s.handleConfirm(mode, msg)
	case SearchResultsMode:
		s.Mode = s.handleSearchResults(mode, msg)
	case OutdatedMode:
		s.Mode = s.handleOutdated(mode, msg)
	case OperationMode:
		s.Mode = s.handleOperation(mode, msg)
	}
}

//nolint:cyclop // one case per binding
func (s *State) handleNormal(msg tea.KeyMsg) Mode {
	keys := s.Keys

	switch {
	case key.Matches(msg, keys.Quit):
		s.Quitting = true
	case key.Matches(msg, keys.Help):
		return HelpMode{}
	case key.Matches(msg, keys.Tab):
		if s.Focus == FocusInstalled {
			s.Focus = FocusAvailable
		} else {
			s.Focus = FocusInstalled
		}
	case key.Matches(msg, keys.Down):
		s.moveCursor(1)
	case key.Matches(msg, keys.Up):
		s.moveCursor(-1)
	case key.Matches(msg, keys.Install):
		return InputMode{Kind: InputInstall}
	case key.Matches(msg, keys.Search):
		return InputMode{Kind: InputSearch}
	case key.Matches(msg, keys.Filter):
		s.Focus = FocusAvailable

		return InputMode{Kind: InputSearch, Buffer: s.Filter}
	case key.Matches(msg, keys.ClearFilter):
		s.ClearFilter()
	case key.Matches(msg, keys.Uninstall):
		if pkg, ok := s.SelectedInstalledPackage(); ok {
			return ConfirmMode{Action: domain.UninstallAction(pkg.Name), Name: pkg.Name, Index: intPtr(s.SelectedInstalled)}
		}
	case key.Matches(msg, keys.Upgrade):
		if pkg, ok := s.SelectedInstalledPackage(); ok {
			return ConfirmMode{Action: domain.UpgradeAction(pkg.Name), Name: pkg.Name, Index: intPtr(s.SelectedInstalled)}
		}
	case key.Matches(msg, keys.Outdated):
		return OutdatedMode{
			Packages: slices.Clone(s.Outdated),
			Checked:  make([]bool, len(s.Outdated)),
		}
	case key.Matches(msg, keys.RefreshOutdated):
		s.spawner.CheckOutdated()
	case key.Matches(msg, keys.Enter):
		return s.confirmSelected()
	}

	return NormalMode{}
}

// confirmSelected asks to uninstall an installed row or install an available one,
// fetching its details first if that has not happened yet.
func (s *State) confirmSelected() Mode {
	if s.Focus == FocusInstalled {
		pkg, ok := s.SelectedInstalledPackage()
		if !ok {
			return NormalMode{}
		}

		s.LoadDetails()

		return ConfirmMode{Action: domain.UninstallAction(pkg.Name), Name: pkg.Name, Index: intPtr(s.SelectedInstalled)}
	}

	name, ok := s.SelectedAvailableName()
	if !ok {
		return NormalMode{}
	}

	s.LoadDetails()

	return ConfirmMode{Action: domain.InstallAction(name), Name: name, Index: intPtr(s.SelectedAvailable)}
}

// moveCursor moves the focused cursor by delta rows. The available cursor
// walks the filtered list; from outside it, down enters at the first match
// and up at the last.
func (s *State) moveCursor(delta int) {
	if s.Focus == FocusInstalled {
		s.SelectedInstalled = clampIndex(s.SelectedInstalled+delta, len(s.Installed))

		return
	}

	if len(s.AvailableFiltered) == 0 {
		return
	}

	pos := slices.Index(s.AvailableFiltered, s.SelectedAvailable)

	switch {
	case pos < 0 && delta > 0:
		s.SelectedAvailable = s.AvailableFiltered[0]
	case pos < 0:
		s.SelectedAvailable = s.AvailableFiltered[len(s.AvailableFiltered)-1]
	default:
		s.SelectedAvailable = s.AvailableFiltered[clampIndex(pos+delta, len(s.AvailableFiltered))]
	}
}

func (s *State) handleInput(mode InputMode, msg tea.KeyMsg) Mode {
	switch {
	case key.Matches(msg, s.Keys.Cancel):
		s.Status = "Cancelled input"

		return NormalMode{}
	case key.Matches(msg, s.Keys.Backspace):
		if runes := []rune(mode.Buffer); len(runes) > 0 {
			mode.Buffer = string(runes[:len(runes)-1])
		}

		if mode.Kind == InputSearch {
			s.SetFilter(mode.Buffer)
		}

		return mode
	case key.Matches(msg, s.Keys.Enter):
		return s.submitInput(mode)
	case msg.Type == tea.KeyRunes, msg.Type == tea.KeySpace:
		mode.Buffer += string(msg.Runes)
		if msg.Type == tea.KeySpace && len(msg.Runes) == 0 {
			mode.Buffer += " "
		}

		if mode.Kind == InputSearch {
			s.SetFilter(mode.Buffer)
			s.selectFirstMatch()
		}

		return mode
	default:
		return mode
	}
}

func (s *State) submitInput(mode InputMode) Mode {
	value := strings.TrimSpace(mode.Buffer)
	if value == "" {
		return NormalMode{}
	}

	if mode.Kind == InputInstall {
		return ConfirmMode{Action: domain.InstallAction(value), Name: value}
	}

	if s.Focus == FocusAvailable {
		s.SetFilter(value)
		s.selectFirstMatch()

		return NormalMode{}
	}

	s.spawner.Search(value)

	return NormalMode{}
}

func (s *State) handleConfirm(mode ConfirmMode, msg tea.KeyMsg) Mode {
	switch {
	case key.Matches(msg, s.Keys.Yes):
		s.spawner.RunAction(mode.Action)

		return NormalMode{}
	case key.Matches(msg, s.Keys.No):
		s.Status = "Cancelled"

		return NormalMode{}
	default:
		return mode
	}
}

func (s *State) handleSearchResults(mode SearchResultsMode, msg tea.KeyMsg) Mode {
	switch {
	case key.Matches(msg, s.Keys.Up):
		mode.Selected = clampIndex(mode.Selected-1, len(mode.Results))
	case key.Matches(msg, s.Keys.Down):
		mode.Selected = clampIndex(mode.Selected+1, len(mode.Results))
	case key.Matches(msg, s.Keys.Enter):
		if mode.Selected < len(mode.Results) {
			name := mode.Results[mode.Selected]

			return ConfirmMode{Action: domain.InstallAction(name), Name: name}
		}

		return NormalMode{}
	case key.Matches(msg, s.Keys.Close):
		return NormalMode{}
	}

	return mode
}

func (s *State) handleOutdated(mode OutdatedMode, msg tea.KeyMsg) Mode {
	switch {
	case key.Matches(msg, s.Keys.Close):
		return NormalMode{}
	case key.Matches(msg, s.Keys.Up):
		mode.Cursor = clampIndex(mode.Cursor-1, len(mode.Packages))
		mode.Scroll = min(mode.Scroll, mode.Cursor)
	case key.Matches(msg, s.Keys.Down):
		mode.Cursor = clampIndex(mode.Cursor+1, len(mode.Packages))
	case key.Matches(msg, s.Keys.Toggle):
		if mode.Cursor < len(mode.Checked) {
			mode.Checked = slices.Clone(mode.Checked)
			mode.Checked[mode.Cursor] = !mode.Checked[mode.Cursor]
		}
	case key.Matches(msg, s.Keys.Enter):
		names := mode.CheckedNames()
		if len(names) == 0 {
			return mode
		}

		name := names[0]
		if len(names) > 1 {
			name = fmt.Sprintf("%d packages", len(names))
		}

		return ConfirmMode{Action: domain.BulkUpgradeAction(names), Name: name}
	}

	return mode
}

func (s *State) handleOperation(mode OperationMode, msg tea.KeyMsg) Mode {
	total := mode.Logs.Len()

	switch {
	case key.Matches(msg, s.Keys.Close):
		return NormalMode{}
	case key.Matches(msg, s.Keys.Up):
		mode.Scroll = min(mode.Scroll+1, total)
	case key.Matches(msg, s.Keys.Down):
		mode.Scroll = max(mode.Scroll-1, 0)
	case key.Matches(msg, s.Keys.PageUp):
		mode.Scroll = min(mode.Scroll+pageSize, total)
	case key.Matches(msg, s.Keys.PageDown):
		mode.Scroll = max(mode.Scroll-pageSize, 0)
	case key.Matches(msg, s.Keys.Home):
		mode.Scroll = total
	case key.Matches(msg, s.Keys.End):
		mode.Scroll = 0
	}

	return mode
}

func intPtr(v int) *int {
	return &v
}
