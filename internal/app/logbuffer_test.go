// SPDX-FileCopyrightText: 2025 The Brewtui Authors
// SPDX-License-Identifier: EUPL-1.2

package app_test

import (
	"strconv"
	"testing"

	"github.com/janderssonse/brewtui/internal/app"
	"github.com/stretchr/testify/assert"
)

func TestLogBufferEvictsOldestBatch(t *testing.T) {
	t.Parallel()

	buf := app.NewLogBuffer(300, 100)
	for i := range 301 {
		buf.Push(strconv.Itoa(i))
	}

	assert.Equal(t, 201, buf.Len())
	assert.Equal(t, "100", buf.Lines()[0])
	assert.Equal(t, "300", buf.Lines()[buf.Len()-1])
}

func TestLogBufferNeverExceedsCapacity(t *testing.T) {
	t.Parallel()

	buf := app.NewLogBuffer(10, 4)
	for i := range 57 {
		buf.Push(strconv.Itoa(i))
		assert.LessOrEqual(t, buf.Len(), 10)
	}

	assert.Equal(t, "56", buf.Lines()[buf.Len()-1])
}

func TestLogBufferNewest(t *testing.T) {
	t.Parallel()

	buf := app.NewLogBuffer(10, 5)
	buf.Push("a")
	buf.Push("b")
	buf.Push("c")

	assert.Equal(t, []string{"c", "b"}, buf.Newest(2))
	assert.Equal(t, []string{"c", "b", "a"}, buf.Newest(10))
	assert.Empty(t, buf.Newest(0))
}

func TestLogBufferNil(t *testing.T) {
	t.Parallel()

	var buf *app.LogBuffer

	assert.Zero(t, buf.Len())
	assert.Nil(t, buf.Lines())
	assert.Empty(t, buf.Newest(3))
}
