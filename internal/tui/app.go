// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

// Package tui runs the Bubble Tea program: it drains the event queue into the
// application state every tick, forwards key presses to the state machine and
// renders the state.
package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/janderssonse/brewtui/internal/adapters/homebrew"
	"github.com/janderssonse/brewtui/internal/app"
	"github.com/janderssonse/brewtui/internal/config"
	"github.com/janderssonse/brewtui/internal/domain"
	"github.com/janderssonse/brewtui/internal/events"
	"github.com/janderssonse/brewtui/internal/logging"
	"github.com/janderssonse/brewtui/internal/tui/styles"
	"github.com/janderssonse/brewtui/internal/workers"
)

// Fallback size until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 120
	defaultHeight = 36
)

// tickMsg drives the drain/apply/refresh cycle.
type tickMsg time.Time

// Drainer is the consumer side of the event queue.
type Drainer interface {
	Drain() []events.Event
}

// App is the root Bubble Tea model.
type App struct {
	state  *app.State
	queue  Drainer
	styles *styles.Styles
	tick   time.Duration

	spinner spinner.Model
	gauge   progress.Model
	input   textinput.Model
	help    string

	width  int
	height int
}

// NewApp creates the root model over state, draining queue every tick.
func NewApp(state *app.State, queue Drainer, cfg config.Config) *App {
	sSpinner := spinner.New()
	sSpinner.Spinner = spinner.Dot

	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 256
	input.Focus()

	return &App{
		state:   state,
		queue:   queue,
		styles:  styles.New(),
		tick:    cfg.TickInterval,
		spinner: sSpinner,
		gauge:   progress.New(progress.WithDefaultGradient()),
		input:   input,
		help:    HelpMarkdown(state.Keys),
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

// State returns the application state the model renders.
func (a *App) State() *app.State {
	return a.state
}

// Run starts the TUI application with the provided context.
func (a *App) Run(ctx context.Context) error {
	program := tea.NewProgram(
		a,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI application failed: %w", err)
	}

	return nil
}

// Init implements the tea.Model interface.
func (a *App) Init() tea.Cmd {
	keys := a.state.Keys
	preloadHelp := func() tea.Msg {
		return helpRenderedMsg{content: RenderHelp(keys)}
	}

	return tea.Batch(a.scheduleTick(), a.spinner.Tick, preloadHelp)
}

// Update implements the tea.Model interface.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		a.drain()

		return a, a.scheduleTick()
	case tea.KeyMsg:
		a.state.HandleKey(msg)
		a.state.Refresh()
		a.syncInput()

		if a.state.Quitting {
			return a, tea.Quit
		}

		return a, nil
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.gauge.Width = max(msg.Width/3-6, 10)

		return a, nil
	case helpRenderedMsg:
		a.help = msg.content

		return a, nil
	case spinner.TickMsg:
		var cmd tea.Cmd

		a.spinner, cmd = a.spinner.Update(msg)

		return a, cmd
	}

	return a, nil
}

// drain applies every queued event, then issues any pending detail fetch
// and recomputes the status line.
func (a *App) drain() {
	a.state.ApplyAll(a.queue.Drain())
	a.state.LoadDetails()
	a.state.Refresh()
	a.syncInput()
}

func (a *App) scheduleTick() tea.Cmd {
	return tea.Tick(a.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// syncInput mirrors the input buffer of the state into the text input widget.
func (a *App) syncInput() {
	mode, ok := a.state.Mode.(app.InputMode)
	if !ok {
		return
	}

	if a.input.Value() != mode.Buffer {
		a.input.SetValue(mode.Buffer)
		a.input.CursorEnd()
	}
}

// LaunchInteractive wires the gateway, workers and event queue and runs the
// program until the user quits. Running operations are awaited before it returns.
func LaunchInteractive(ctx context.Context, cfg config.Config) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return domain.ErrNoTerminal
	}

	queue := events.NewQueue()
	logging.InitForTUI(logging.ParseLevel(cfg.LogLevel), func(line string) {
		_ = queue.Send(events.LogLine{Text: line})
	})

	gateway := homebrew.NewSystemGateway(cfg.BrewBinary)
	pool := workers.NewPool(ctx, gateway, queue, cfg)
	state := app.NewState(pool, cfg)

	pool.Start()

	err := NewApp(state, queue, cfg).Run(ctx)

	queue.Close()
	pool.Shutdown()

	return err
}
