// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package status

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"vawter.tech/stopper"
)

const (
	// watchBufferSize bounds unconsumed events before the watcher stalls.
	watchBufferSize = 10

	// debounceDelay coalesces the burst of file system events an atomic
	// replace produces into a single read.
	debounceDelay = 10 * time.Millisecond

	// stopGrace is how long a stopping watcher may take to wind down.
	stopGrace = 100 * time.Millisecond
)

// Event is a single observed status change or watch failure.
type Event struct {
	Status Status
	Err    error
}

// Watch observes the status directory and emits an [Event] for every status
// update until ctx is canceled or the returned stop function is called.
//
// If a status file already exists, its current content is emitted first.
// The event channel is closed once the watcher stopped. The stop function
// halts the watcher and waits for it to finish.
func Watch(ctx context.Context, dir string) (<-chan Event, func() error, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()

		return nil, nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	events := make(chan Event, watchBufferSize)

	sctx := stopper.WithContext(ctx)
	sctx.Defer(func() {
		_ = fsw.Close()
		close(events)
	})

	w := &watcher{
		dir:    dir,
		fsw:    fsw,
		events: events,
	}

	// Report the current status right away so consumers do not have to
	// wait for the first transition.
	if raw, err := os.ReadFile(filepath.Join(dir, File)); err == nil {
		if status, err := decode(raw); err == nil {
			w.lastRaw = raw
			events <- Event{Status: status}
		}
	}

	stop := func() error {
		sctx.Stop(stopGrace)

		return sctx.Wait()
	}

	sctx.Go(w.run)

	return events, stop, nil
}

type watcher struct {
	dir     string
	fsw     *fsnotify.Watcher
	events  chan<- Event
	lastRaw []byte
}

func (w *watcher) run(sctx *stopper.Context) error {
	var (
		debounce *time.Timer
		fire     <-chan time.Time
	)

	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-sctx.Stopping():
			return nil

		case <-sctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}

			if filepath.Base(event.Name) != File {
				continue
			}

			if debounce == nil {
				debounce = time.NewTimer(debounceDelay)
			} else {
				debounce.Stop()
				debounce.Reset(debounceDelay)
			}

			fire = debounce.C

		case <-fire:
			fire = nil

			w.emit(sctx)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}

			w.send(sctx, Event{Err: err})
		}
	}
}

// emit reads the status file and sends it if its content changed since the
// last emit. Raw bytes are compared, not decoded values, so a rewrite with
// identical content stays silent.
func (w *watcher) emit(sctx *stopper.Context) {
	raw, err := os.ReadFile(filepath.Join(w.dir, File))
	if err != nil {
		w.send(sctx, Event{Err: fmt.Errorf("read status: %w", err)})

		return
	}

	if bytes.Equal(raw, w.lastRaw) {
		return
	}

	w.lastRaw = raw

	status, err := decode(raw)
	if err != nil {
		w.send(sctx, Event{Err: err})

		return
	}

	w.send(sctx, Event{Status: status})
}

func (w *watcher) send(sctx *stopper.Context, event Event) {
	select {
	case w.events <- event:
	case <-sctx.Stopping():
	case <-sctx.Done():
	}
}
