// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

package app

import (
	"fmt"

	"github.com/janderssonse/brewtui/internal/events"
)

// ApplyAll applies events in order.
func (s *State) ApplyAll(evs []events.Event) {
	for _, ev := range evs {
		s.Apply(ev)
	}
}

// Apply mutates state for one event.
func (s *State) Apply(ev events.Event) {
	switch ev := ev.(type) {
	case events.Status:
		s.Status = ev.Text
	case events.PackageListLoaded:
		s.Installed = ev.Packages
		s.Status = fmt.Sprintf("Loaded %d packages", len(s.Installed))
		s.LastRefreshed = s.now()
		s.LoadingInstalled = false
		s.lastDetail = nil
		s.SelectedInstalled = clampIndex(s.SelectedInstalled, len(s.Installed))
		s.spawner.CheckOutdated()
	case events.PackageDetailLoaded:
		// A reload may have moved another package onto Index.
		if ev.Index >= 0 && ev.Index < len(s.Installed) && s.Installed[ev.Index].Name == ev.Package.Name {
			s.Installed[ev.Index] = ev.Package
		}

		delete(s.failedDetails, ev.Package.Name)

		s.lastDetail = &detailKey{focus: FocusInstalled, index: ev.Index}
	case events.AvailableDetailLoaded:
		pkg := ev.Package
		s.AvailableDetails = &pkg
		delete(s.failedDetails, pkg.Name)
		s.lastDetail = &detailKey{focus: FocusAvailable, index: ev.Index}
	case events.DetailFailed:
		s.failedDetails[ev.Name] = true
	case events.LogLine:
		s.Log(ev.Text)
	case events.OperationStarted:
		s.Mode = OperationMode{Title: ev.Title, Logs: NewLogBuffer(s.cfg.OpLogCapacity, s.cfg.OpLogEvict)}
		s.Log("Started: " + ev.Title)
		s.Operating = true
		s.OperationPercent = nil
	case events.OperationLogLine:
		s.applyOperationLine(ev.Text)
	case events.OperationEnded:
		s.Log("Finished: " + ev.Title)
		s.OperationPercent = nil
		s.Operating = false
	case events.ConfirmRequested:
		s.Mode = ConfirmMode{Action: ev.Action, Name: ev.Name, Index: ev.Index}
	case events.SearchCompleted:
		s.Mode = SearchResultsMode{Results: ev.Results}
	case events.OutdatedListLoaded:
		s.Outdated = ev.Packages
	case events.AvailableListLoaded:
		s.Available = ev.Names
		s.Status = fmt.Sprintf("Loaded %d available packages", len(s.Available))
		s.LastRefreshed = s.now()
		s.LoadingAvailable = false
		s.ClearFilter()
		s.SelectedAvailable = clampIndex(s.SelectedAvailable, len(s.Available))
	}
}

func (s *State) applyOperationLine(line string) {
	if mode, ok := s.Mode.(OperationMode); ok {
		mode.Logs.Push(line)
		mode.Scroll = min(mode.Scroll, mode.Logs.Len())
		s.Mode = mode
	}

	s.Log(line)

	if pct, ok := ParsePercent(line); ok {
		s.OperationPercent = &pct
	}
}
