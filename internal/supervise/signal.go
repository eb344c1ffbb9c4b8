// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package supervise

import (
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// watchHangup installs a SIGHUP handler that logs the signal and ignores it
// otherwise. A terminal hangup must not take the supervisor down.
//
// The returned stop function removes the handler and waits for the watch
// goroutine to finish.
func watchHangup(log *slog.Logger) func() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, unix.SIGHUP)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for sig := range signals {
			log.Info("Received signal",
				slog.String("signal", sig.String()))
		}
	}()

	return func() {
		signal.Stop(signals)
		close(signals)
		<-done
	}
}
