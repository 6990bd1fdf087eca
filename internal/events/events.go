// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

// Package events defines the messages background workers post to the main loop.
package events

import "github.com/janderssonse/brewtui/internal/domain"

// Event is a value posted by a worker. The set is closed.
type Event interface {
	isEvent()
}

// Sender is the producer side of the queue, safe for concurrent use.
type Sender interface {
	Send(ev Event) error
}

// Status replaces the status text.
type Status struct{ Text string }

// PackageListLoaded carries a full installed-list reload.
type PackageListLoaded struct{ Packages []domain.PackageSummary }

// PackageDetailLoaded carries details for the installed row at Index.
type PackageDetailLoaded struct {
	Package domain.PackageSummary
	Index   int
}

// AvailableDetailLoaded carries details for the available row at Index.
type AvailableDetailLoaded struct {
	Package domain.PackageSummary
	Index   int
}

// LogLine appends to the log pane.
type LogLine struct{ Text string }

// OperationStarted opens the operation view.
type OperationStarted struct{ Title string }

// OperationLogLine is one streamed line of operation output.
type OperationLogLine struct{ Text string }

// OperationEnded closes an operation; exactly one follows every OperationStarted.
type OperationEnded struct{ Title string }

// ConfirmRequested asks the user to confirm an action.
type ConfirmRequested struct {
	Action domain.ConfirmAction
	Name   string
	Index  *int
}

// DetailFailed reports that the detail lookup for Name failed.
type DetailFailed struct{ Name string }

// SearchCompleted carries search results.
type SearchCompleted struct{ Results []string }

// OutdatedListLoaded carries the outdated set.
type OutdatedListLoaded struct{ Packages []string }

// AvailableListLoaded carries every installable name.
type AvailableListLoaded struct{ Names []string }

func (Status) isEvent()                {}
func (PackageListLoaded) isEvent()     {}
func (PackageDetailLoaded) isEvent()   {}
func (AvailableDetailLoaded) isEvent() {}
func (LogLine) isEvent()               {}
func (OperationStarted) isEvent()      {}
func (OperationLogLine) isEvent()      {}
func (OperationEnded) isEvent()        {}
func (ConfirmRequested) isEvent()      {}
func (DetailFailed) isEvent()          {}
func (SearchCompleted) isEvent()       {}
func (OutdatedListLoaded) isEvent()    {}
func (AvailableListLoaded) isEvent()   {}
