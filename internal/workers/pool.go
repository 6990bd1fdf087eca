// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

// Package workers runs gateway calls off the main loop and reports back through events.
package workers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/janderssonse/brewtui/internal/config"
	"github.com/janderssonse/brewtui/internal/domain"
	"github.com/janderssonse/brewtui/internal/events"
	"github.com/janderssonse/brewtui/internal/logging"
)

// Pool launches fire-and-forget tasks. Loaders and pollers stop when the
// pool's context is cancelled; operation runners always run to completion.
//
//nolint:containedctx // the pool owns the lifetime of the tasks it spawns
type Pool struct {
	gateway domain.PackageGateway
	sender  events.Sender
	cfg     config.Config

	ctx    context.Context
	cancel context.CancelFunc

	tasks      errgroup.Group
	operations errgroup.Group
}

// NewPool creates a pool whose tasks derive from ctx.
func NewPool(ctx context.Context, gateway domain.PackageGateway, sender events.Sender, cfg config.Config) *Pool {
	poolCtx, cancel := context.WithCancel(ctx)

	return &Pool{
		gateway: gateway,
		sender:  sender,
		cfg:     cfg,
		ctx:     poolCtx,
		cancel:  cancel,
	}
}

// Start launches the startup loaders, the tool probe and the periodic refresher.
func (p *Pool) Start() {
	p.ReloadInstalled()
	p.LoadAvailable()
	p.CheckOutdated()
	p.goTask(p.probeTool)
	p.goTask(p.refreshPeriodically)
}

// ReloadInstalled loads the installed list.
func (p *Pool) ReloadInstalled() {
	p.goTask(func() {
		p.send(events.Status{Text: "loading installed"})
		p.loadInstalled(p.ctx)
	})
}

// LoadAvailable loads every installable name.
func (p *Pool) LoadAvailable() {
	p.goTask(func() {
		p.send(events.Status{Text: "loading available"})

		names, err := p.gateway.AllAvailable(p.ctx)
		if err != nil {
			p.send(events.LogLine{Text: fmt.Sprintf("available list failed: %v", err)})

			return
		}

		p.send(events.AvailableListLoaded{Names: names})
	})
}

// CheckOutdated refreshes the outdated set.
func (p *Pool) CheckOutdated() {
	p.goTask(func() {
		p.send(events.Status{Text: "checking for updates"})
		p.loadOutdated(p.ctx)
	})
}

// FetchInstalledDetail loads details for the installed row at index.
func (p *Pool) FetchInstalledDetail(name string, index int) {
	p.goTask(func() {
		summary, err := p.gateway.Info(p.ctx, name)
		if err != nil {
			p.detailFailed(name, err)

			return
		}

		p.send(events.PackageDetailLoaded{Package: summary, Index: index})
	})
}

// FetchAvailableDetail loads details for the available row at index.
func (p *Pool) FetchAvailableDetail(name string, index int) {
	p.goTask(func() {
		summary, err := p.gateway.Info(p.ctx, name)
		if err != nil {
			p.detailFailed(name, err)

			return
		}

		p.send(events.AvailableDetailLoaded{Package: summary, Index: index})
	})
}

// Search runs a package search.
func (p *Pool) Search(query string) {
	p.goTask(func() {
		results, err := p.gateway.Search(p.ctx, query)
		if err != nil {
			p.send(events.LogLine{Text: fmt.Sprintf("Search failed: %v", err)})

			return
		}

		p.send(events.SearchCompleted{Results: results})
	})
}

// RunAction starts the operation runner for a confirmed action.
func (p *Pool) RunAction(action domain.ConfirmAction) {
	op := p.gateway.OperationFor(action)

	p.operations.Go(func() error {
		p.runOperation(op)

		return nil
	})
}

// Shutdown cancels loaders and pollers, then waits for every task.
// Running operations are not cancelled so an install is never cut short.
func (p *Pool) Shutdown() {
	p.cancel()

	_ = p.operations.Wait()
	_ = p.tasks.Wait()
}

// runOperation posts OperationStarted, streams output, and always posts one OperationEnded.
func (p *Pool) runOperation(op domain.Operation) {
	ctx := context.WithoutCancel(p.ctx)

	p.send(events.OperationStarted{Title: op.Title})
	defer p.send(events.OperationEnded{Title: op.Title})

	logging.Info("workers", "running %s", op.Title)

	err := p.gateway.RunOperation(ctx, op, func(line string) {
		p.send(events.OperationLogLine{Text: line})
	})

	var invErr *domain.ToolInvocationError

	switch {
	case err == nil:
		p.send(events.Status{Text: op.Title + " completed"})

		if op.Reload {
			p.loadInstalled(ctx)
		}
	case errors.As(err, &invErr) && invErr.Stage != domain.StageExit:
		p.send(events.OperationLogLine{Text: invErr.Error()})
	case errors.As(err, &invErr):
		p.send(events.LogLine{Text: fmt.Sprintf("%s failed: %s", op.Title, invErr.Status())})
	default:
		p.send(events.LogLine{Text: fmt.Sprintf("%s failed: %v", op.Title, err)})
	}
}

func (p *Pool) detailFailed(name string, err error) {
	p.send(events.LogLine{Text: fmt.Sprintf("Info failed: %v", err)})
	p.send(events.DetailFailed{Name: name})
}

func (p *Pool) loadInstalled(ctx context.Context) {
	summaries, err := p.gateway.ListInstalled(ctx)
	if err != nil {
		p.send(events.LogLine{Text: fmt.Sprintf("Error listing installed formulae: %v", err)})

		return
	}

	p.send(events.PackageListLoaded{Packages: summaries})
}

func (p *Pool) loadOutdated(ctx context.Context) {
	outdated, err := p.gateway.Outdated(ctx)
	if err != nil {
		p.send(events.LogLine{Text: fmt.Sprintf("outdated check failed: %v", err)})

		return
	}

	p.send(events.OutdatedListLoaded{Packages: outdated})
}

// probeTool asks to bootstrap brew when it cannot be spawned at all.
// The short delay lets the first frame render before the prompt appears.
func (p *Pool) probeTool() {
	err := p.gateway.Probe(p.ctx)
	if err == nil || !domain.IsSpawnFailure(err) {
		return
	}

	logging.Warn("workers", "%s not found: %v", domain.ToolName, err)

	timer := time.NewTimer(p.cfg.ProbeDelay)
	defer timer.Stop()

	select {
	case <-p.ctx.Done():
		return
	case <-timer.C:
	}

	p.send(events.ConfirmRequested{Action: domain.InstallToolAction(), Name: domain.ToolName})
}

func (p *Pool) refreshPeriodically() {
	if p.cfg.RefreshInterval <= 0 {
		return
	}

	ticker := time.NewTicker(p.cfg.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.loadOutdated(p.ctx)
		}
	}
}

func (p *Pool) goTask(task func()) {
	p.tasks.Go(func() error {
		task()

		return nil
	})
}

// send drops events once the consumer is gone.
func (p *Pool) send(ev events.Event) {
	if err := p.sender.Send(ev); err != nil {
		if errors.Is(err, domain.ErrChannelClosed) {
			return
		}

		logging.Error("workers", err, "dropping event")
	}
}
