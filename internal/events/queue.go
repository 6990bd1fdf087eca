// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

package events

import (
	"fmt"
	"sync"

	"github.com/janderssonse/brewtui/internal/domain"
)

// Queue is an unbounded many-producer single-consumer event queue.
// Send never blocks; the consumer takes everything pending with Drain.
type Queue struct {
	mu      sync.Mutex
	pending []Event
	closed  bool
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Send enqueues ev. After Close it returns a *domain.ChannelSendError.
func (q *Queue) Send(ev Event) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return &domain.ChannelSendError{Event: fmt.Sprintf("%T", ev)}
	}

	q.pending = append(q.pending, ev)

	return nil
}

// Drain returns all queued events in arrival order without blocking.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return nil
	}

	drained := q.pending
	q.pending = nil

	return drained
}

// Len reports how many events are waiting.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.pending)
}

// Close rejects further sends. Pending events stay drainable.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
}
