// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"log/slog"
	"time"

	"github.com/aibor/tinyinit/internal/status"
	"github.com/aibor/tinyinit/internal/supervise"
)

// statusSink publishes supervisor state transitions as status files.
//
// Publishing is best effort. Supervision must not stall because the status
// directory is gone, so write failures are logged and dropped.
type statusSink struct {
	writer *status.Writer
	log    *slog.Logger
	now    func() time.Time

	current status.Status
}

func newStatusSink(writer *status.Writer, log *slog.Logger) *statusSink {
	return &statusSink{
		writer: writer,
		log:    log,
		now:    time.Now,
	}
}

// Notify implements [supervise.NotifyFunc].
func (s *statusSink) Notify(event supervise.Event) {
	s.current.State = event.State.String()
	s.current.Restarts = event.Restarts

	switch event.State {
	case supervise.StateStarting:
		s.current.PID = 0
	case supervise.StateRunning:
		s.current.PID = event.PID
		s.current.StartedAt = s.now()
	case supervise.StateExited:
		s.current.PID = 0
		s.current.LastExitCode = event.ExitCode
		s.current.LastSignal = event.Signal
	}

	if err := s.writer.Write(s.current); err != nil {
		s.log.Warn("Publishing status failed", slog.Any("error", err))
	}
}
