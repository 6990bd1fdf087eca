// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

package app

// LogBuffer is a bounded, oldest-first line log. Once it grows past its
// capacity a whole batch of the oldest lines is dropped at once.
type LogBuffer struct {
	lines    []string
	capacity int
	evict    int
}

// NewLogBuffer creates a buffer holding at most capacity lines.
func NewLogBuffer(capacity, evict int) *LogBuffer {
	evict = max(1, min(evict, capacity))

	return &LogBuffer{capacity: capacity, evict: evict}
}

// Push appends a line, evicting the oldest batch when over capacity.
func (b *LogBuffer) Push(line string) {
	b.lines = append(b.lines, line)

	if len(b.lines) > b.capacity {
		kept := make([]string, len(b.lines)-b.evict, b.capacity)
		copy(kept, b.lines[b.evict:])
		b.lines = kept
	}
}

// Len returns the number of stored lines.
func (b *LogBuffer) Len() int {
	if b == nil {
		return 0
	}

	return len(b.lines)
}

// Lines returns the stored lines, oldest first. Callers must not modify them.
func (b *LogBuffer) Lines() []string {
	if b == nil {
		return nil
	}

	return b.lines
}

// Newest returns up to n lines, newest first.
func (b *LogBuffer) Newest(n int) []string {
	total := b.Len()
	n = min(n, total)

	out := make([]string, 0, n)
	for i := total - 1; i >= total-n; i-- {
		out = append(out, b.lines[i])
	}

	return out
}
