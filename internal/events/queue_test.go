// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

package events_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/janderssonse/brewtui/internal/domain"
	"github.com/janderssonse/brewtui/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_DrainReturnsEverythingInOrder(t *testing.T) {
	t.Parallel()

	q := events.NewQueue()

	require.NoError(t, q.Send(events.Status{Text: "loading installed"}))
	require.NoError(t, q.Send(events.LogLine{Text: "one"}))
	require.NoError(t, q.Send(events.OperationEnded{Title: "brew install wget"}))

	assert.Equal(t, 3, q.Len())

	got := q.Drain()
	assert.Equal(t, []events.Event{
		events.Status{Text: "loading installed"},
		events.LogLine{Text: "one"},
		events.OperationEnded{Title: "brew install wget"},
	}, got)

	assert.Empty(t, q.Drain(), "drain on empty queue does not block")
	assert.Equal(t, 0, q.Len())
}

func TestQueue_ConcurrentProducersKeepPerProducerOrder(t *testing.T) {
	t.Parallel()

	const (
		producers = 8
		perSender = 200
	)

	q := events.NewQueue()

	var wg sync.WaitGroup

	for p := range producers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range perSender {
				_ = q.Send(events.LogLine{Text: fmt.Sprintf("%d:%d", p, i)})
			}
		}()
	}

	wg.Wait()

	drained := q.Drain()
	require.Len(t, drained, producers*perSender)

	next := make(map[int]int)

	for _, ev := range drained {
		line, ok := ev.(events.LogLine)
		require.True(t, ok)

		var p, i int

		_, err := fmt.Sscanf(line.Text, "%d:%d", &p, &i)
		require.NoError(t, err)
		assert.Equal(t, next[p], i, "producer %d out of order", p)
		next[p] = i + 1
	}
}

func TestQueue_SendAfterClose(t *testing.T) {
	t.Parallel()

	q := events.NewQueue()
	require.NoError(t, q.Send(events.Status{Text: "before"}))

	q.Close()

	err := q.Send(events.Status{Text: "after"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrChannelClosed)

	var sendErr *domain.ChannelSendError
	require.ErrorAs(t, err, &sendErr)
	assert.Equal(t, "events.Status", sendErr.Event)

	assert.Len(t, q.Drain(), 1, "events queued before close remain")
}
