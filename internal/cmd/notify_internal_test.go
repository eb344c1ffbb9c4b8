// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aibor/tinyinit/internal/status"
	"github.com/aibor/tinyinit/internal/supervise"
)

func TestStatusSinkNotify(t *testing.T) {
	dir := t.TempDir()

	writer, err := status.NewWriter(dir)
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	sink := newStatusSink(writer, log)

	started := time.Date(2025, 8, 27, 12, 0, 0, 0, time.UTC)
	sink.now = func() time.Time { return started }

	sink.Notify(supervise.Event{State: supervise.StateStarting})

	current, err := status.Read(dir)
	require.NoError(t, err)
	assert.Equal(t, "starting", current.State)
	assert.Zero(t, current.PID)

	sink.Notify(supervise.Event{
		State: supervise.StateRunning,
		PID:   42,
	})

	current, err = status.Read(dir)
	require.NoError(t, err)
	assert.Equal(t, "running", current.State)
	assert.Equal(t, 42, current.PID)
	assert.True(t, current.StartedAt.Equal(started))

	sink.Notify(supervise.Event{
		State:    supervise.StateExited,
		PID:      42,
		ExitCode: 7,
		Restarts: 1,
	})

	current, err = status.Read(dir)
	require.NoError(t, err)
	assert.Equal(t, "exited", current.State)
	assert.Zero(t, current.PID)
	assert.Equal(t, 7, current.LastExitCode)
	assert.Equal(t, 1, current.Restarts)
	assert.Empty(t, current.LastSignal)
}

func TestStatusSinkNotifySignaled(t *testing.T) {
	dir := t.TempDir()

	writer, err := status.NewWriter(dir)
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	sink := newStatusSink(writer, log)

	sink.Notify(supervise.Event{
		State:    supervise.StateExited,
		PID:      42,
		Signal:   "hangup",
		Restarts: 1,
	})

	current, err := status.Read(dir)
	require.NoError(t, err)
	assert.Equal(t, "exited", current.State)
	assert.Equal(t, "hangup", current.LastSignal)
}
