// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

package workers_test

import (
	"context"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janderssonse/brewtui/internal/adapters/homebrew"
	"github.com/janderssonse/brewtui/internal/domain"
	"github.com/janderssonse/brewtui/internal/events"
	"github.com/janderssonse/brewtui/internal/testutil"
	"github.com/janderssonse/brewtui/internal/workers"
)

const gitInfoJSON = `{"formulae":[{"name":"git","full_name":"git","desc":"Distributed revision control system",` +
	`"homepage":"https://git-scm.com","license":"GPL-2.0-only","dependencies":["gettext","pcre2"],` +
	`"installed":[{"version":"2.44.0"}],"versions":{"stable":"2.45.0"},"caveats":null}],"casks":[]}`

func fakeBrew(t *testing.T) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake brew is a shell script")
	}

	path, err := testutil.WriteFakeBrew(t.TempDir(), testutil.BrewBehavior{
		Outputs: map[string]string{
			"--version":             "Homebrew 4.3.0\n",
			"list --formula":        "git\nwget\n",
			"search /.*/ --formula": "==> Formulae\nwget\ngit\naalib\ngit\n",
			"outdated --formula":    "git (2.44.0) < 2.45.0\n",
			"info --json=v2 git":    gitInfoJSON,
			"install htop":          "==> Downloading htop\n######## 50.0%\n################ 100.0%\n==> Pouring htop\n",
		},
		Stderr: map[string]string{
			"install nope": "Error: No available formula with the name \"nope\".\n",
		},
		ExitCodes: map[string]int{
			"install nope": 1,
		},
	})
	require.NoError(t, err)

	return path
}

// collector accumulates drained events across polls.
type collector struct {
	mu    sync.Mutex
	queue *events.Queue
	seen  []events.Event
}

func (c *collector) poll() []events.Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seen = append(c.seen, c.queue.Drain()...)

	return c.seen
}

func realPool(t *testing.T, binary string) (*workers.Pool, *collector) {
	t.Helper()

	queue := events.NewQueue()
	gateway := homebrew.NewSystemGateway(binary)
	pool := workers.NewPool(context.Background(), gateway, queue, testConfig())

	return pool, &collector{queue: queue}
}

func TestIntegration_StartupLoadsAgainstFakeBrew(t *testing.T) {
	t.Parallel()

	pool, sink := realPool(t, fakeBrew(t))
	pool.Start()

	require.Eventually(t, func() bool {
		evs := sink.poll()

		return countOf[events.PackageListLoaded](evs) == 1 &&
			countOf[events.AvailableListLoaded](evs) == 1 &&
			countOf[events.OutdatedListLoaded](evs) == 1
	}, 10*time.Second, 10*time.Millisecond)

	pool.FetchInstalledDetail("git", 0)

	require.Eventually(t, func() bool {
		return countOf[events.PackageDetailLoaded](sink.poll()) == 1
	}, 10*time.Second, 10*time.Millisecond)

	pool.Shutdown()

	evs := sink.poll()

	for _, ev := range evs {
		switch ev := ev.(type) {
		case events.PackageListLoaded:
			require.Len(t, ev.Packages, 2)
			assert.Equal(t, "git", ev.Packages[0].Name)
			assert.Equal(t, "wget", ev.Packages[1].Name)
		case events.AvailableListLoaded:
			assert.Equal(t, []string{"aalib", "git", "wget"}, ev.Names)
		case events.OutdatedListLoaded:
			assert.Equal(t, []string{"git"}, ev.Packages)
		case events.PackageDetailLoaded:
			assert.Equal(t, 0, ev.Index)
			assert.Equal(t, "Distributed revision control system", ev.Package.Desc)
			assert.Equal(t, "2.45.0", ev.Package.StableVersion())
		}
	}

	assert.Zero(t, countOf[events.ConfirmRequested](evs), "a working brew must not trigger the bootstrap prompt")
}

func TestIntegration_InstallStreamsOutputAndReloads(t *testing.T) {
	t.Parallel()

	pool, sink := realPool(t, fakeBrew(t))

	pool.RunAction(domain.InstallAction("htop"))
	pool.Shutdown()

	evs := sink.poll()
	require.NotEmpty(t, evs)

	var lines []string

	for _, ev := range evs {
		if line, ok := ev.(events.OperationLogLine); ok {
			lines = append(lines, line.Text)
		}
	}

	assert.Equal(t, []string{"==> Downloading htop", "######## 50.0%", "################ 100.0%", "==> Pouring htop"}, lines)
	assert.IsType(t, events.OperationStarted{}, evs[0])
	assert.IsType(t, events.OperationEnded{}, evs[len(evs)-1])
	assert.Equal(t, 1, countOf[events.PackageListLoaded](evs))
}

func TestIntegration_FailedInstallReportsExitStatus(t *testing.T) {
	t.Parallel()

	pool, sink := realPool(t, fakeBrew(t))

	pool.RunAction(domain.InstallAction("nope"))
	pool.Shutdown()

	evs := sink.poll()

	var (
		opLines []string
		logs    []string
	)

	for _, ev := range evs {
		switch ev := ev.(type) {
		case events.OperationLogLine:
			opLines = append(opLines, ev.Text)
		case events.LogLine:
			logs = append(logs, ev.Text)
		}
	}

	assert.Contains(t, opLines, `Error: No available formula with the name "nope".`)
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0], "install nope failed")
	assert.Zero(t, countOf[events.PackageListLoaded](evs))
	assert.Equal(t, 1, countOf[events.OperationEnded](evs))
}

func TestIntegration_MissingBrewAsksToBootstrap(t *testing.T) {
	t.Parallel()

	pool, sink := realPool(t, filepath.Join(t.TempDir(), "no-such-brew"))
	pool.Start()

	require.Eventually(t, func() bool {
		return countOf[events.ConfirmRequested](sink.poll()) == 1
	}, 10*time.Second, 10*time.Millisecond)

	pool.Shutdown()

	for _, ev := range sink.poll() {
		if confirm, ok := ev.(events.ConfirmRequested); ok {
			assert.Equal(t, domain.ActionInstallTool, confirm.Action.Kind)
		}
	}
}
