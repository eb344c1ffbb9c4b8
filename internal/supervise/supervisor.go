// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package supervise

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Config describes the shell to supervise and how to do it.
type Config struct {
	// Shell is the path of the shell executable. Required.
	Shell string

	// Args are the arguments the shell is started with, not including the
	// program name itself. Defaults to a single "-i" for an interactive
	// session.
	Args []string

	// RestartDelay pauses respawning after a shell terminated. The default
	// of zero respawns immediately.
	RestartDelay time.Duration

	// Log receives supervision progress. Defaults to [slog.Default].
	Log *slog.Logger

	// Notify is called with every state transition. May be nil.
	Notify NotifyFunc

	// Start, Access, Reap and Raise replace the OS process primitives.
	// They default to the real ones and exist for tests.
	Start  StartFunc
	Access AccessFunc
	Reap   ReapFunc
	Raise  func() error
}

// Supervisor runs an interactive shell and restarts it whenever it
// terminates. Create one with [New].
type Supervisor struct {
	shell        string
	args         []string
	restartDelay time.Duration
	log          *slog.Logger
	notify       NotifyFunc
	restarts     int

	start StartFunc
	reap  ReapFunc
	raise func() error
}

// New validates the configured shell and returns a ready to run
// [Supervisor].
//
// It returns [ErrShellInaccessible] if the shell is not an executable file
// for this process. Without a working shell there is nothing to supervise,
// so this is checked up front.
func New(cfg Config) (*Supervisor, error) {
	if cfg.Shell == "" {
		return nil, ErrNoShell
	}

	s := &Supervisor{
		shell:        cfg.Shell,
		args:         cfg.Args,
		restartDelay: cfg.RestartDelay,
		log:          cfg.Log,
		notify:       cfg.Notify,
		start:        cfg.Start,
		reap:         cfg.Reap,
		raise:        cfg.Raise,
	}

	if s.log == nil {
		s.log = slog.Default()
	}

	if s.args == nil {
		s.args = []string{"-i"}
	}

	access := cfg.Access
	if access == nil {
		access = accessExecutable
	}

	if s.start == nil {
		s.start = StartShell(s.shell, s.args)
	}

	if s.reap == nil {
		s.reap = ReapOrphan
	}

	if s.raise == nil {
		s.raise = raiseHangup
	}

	if err := access(s.shell); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShellInaccessible, err)
	}

	return s, nil
}

// Run supervises the shell until ctx is canceled or a fatal error occurs.
// It never returns nil.
//
// Each iteration spawns the shell, waits for its termination, reports the
// outcome and sweeps up orphaned processes before respawning. A failure to
// spawn or to wait is fatal and ends supervision.
func (s *Supervisor) Run(ctx context.Context) error {
	stop := watchHangup(s.log)
	defer stop()

	if err := s.raise(); err != nil {
		s.log.Warn("Hangup probe failed", slog.Any("error", err))
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.notifyEvent(Event{
			State:    StateStarting,
			Restarts: s.restarts,
		})

		child, err := s.start()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSpawn, err)
		}

		pid := child.Pid()
		s.log.Info("Shell started", slog.Int("pid", pid))
		s.notifyEvent(Event{
			State:    StateRunning,
			PID:      pid,
			Restarts: s.restarts,
		})

		exit, err := child.Wait()
		if err != nil {
			return fmt.Errorf("wait for pid %d: %w", pid, err)
		}

		s.reportExit(pid, exit)
		s.restarts++
		s.sweepOrphans()

		s.notifyEvent(Event{
			State:    StateExited,
			PID:      pid,
			ExitCode: exit.Code,
			Signal:   exit.Signal,
			Restarts: s.restarts,
		})

		s.pause(ctx)
	}
}

func (s *Supervisor) reportExit(pid int, exit Exit) {
	if exit.Signaled {
		s.log.Warn("Shell terminated by signal",
			slog.Int("pid", pid),
			slog.String("signal", exit.Signal))

		return
	}

	s.log.Info("Shell exited",
		slog.Int("pid", pid),
		slog.Int("code", exit.Code))
}

// sweepOrphans drains terminated orphan processes. Errors are logged only:
// reaping is hygiene, not something to end supervision over.
func (s *Supervisor) sweepOrphans() {
	for {
		pid, err := s.reap()
		if err != nil {
			s.log.Warn("Reaping orphans failed", slog.Any("error", err))

			return
		}

		if pid == 0 {
			return
		}

		s.log.Debug("Reaped orphan", slog.Int("pid", pid))
	}
}

// pause waits the configured restart delay, if any. It returns early if ctx
// is canceled in the meantime.
func (s *Supervisor) pause(ctx context.Context) {
	if s.restartDelay <= 0 {
		return
	}

	timer := time.NewTimer(s.restartDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (s *Supervisor) notifyEvent(event Event) {
	if s.notify == nil {
		return
	}

	s.notify(event)
}
