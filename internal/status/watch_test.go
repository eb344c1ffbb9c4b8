// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package status_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aibor/tinyinit/internal/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func waitEvent(t *testing.T, events <-chan status.Event) status.Event {
	t.Helper()

	select {
	case event, ok := <-events:
		require.True(t, ok, "event channel closed early")

		return event
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for status event")

		return status.Event{}
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()

	writer, err := status.NewWriter(dir)
	require.NoError(t, err)

	require.NoError(t, writer.Write(status.Status{State: "starting"}))

	events, stop, err := status.Watch(context.Background(), dir)
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, stop())
	})

	// Existing status is emitted without any update happening.
	event := waitEvent(t, events)
	require.NoError(t, event.Err)
	assert.Equal(t, "starting", event.Status.State)

	require.NoError(t, writer.Write(status.Status{
		State: "running",
		PID:   42,
	}))

	event = waitEvent(t, events)
	require.NoError(t, event.Err)
	assert.Equal(t, "running", event.Status.State)
	assert.Equal(t, 42, event.Status.PID)
}

func TestWatchStop(t *testing.T) {
	events, stop, err := status.Watch(context.Background(), t.TempDir())
	require.NoError(t, err)

	require.NoError(t, stop())

	_, ok := <-events
	assert.False(t, ok, "event channel closed after stop")
}

func TestWatchCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	events, stop, err := status.Watch(ctx, t.TempDir())
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok, "event channel closed after cancel")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watcher shutdown")
	}

	_ = stop()
}

func TestWatchMissingDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	_, _, err := status.Watch(context.Background(), missing)

	require.Error(t, err)
}
