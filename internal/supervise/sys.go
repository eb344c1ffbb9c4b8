// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package supervise

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// AccessFunc probes a path for a permission, access(2) style.
type AccessFunc func(path string) error

// ReapFunc collects a single terminated child process without blocking. It
// returns the PID of the reaped process, or 0 if no child is ready.
type ReapFunc func() (int, error)

// accessExecutable checks that path can be executed by this process.
func accessExecutable(path string) error {
	err := unix.Access(path, unix.X_OK)
	if err != nil {
		return fmt.Errorf("access %s: %w", path, err)
	}

	return nil
}

// ReapOrphan collects a terminated orphan process, if any.
//
// As PID 1 the supervisor inherits parentless processes. Collecting them
// keeps the process table free of zombies left behind by shell sessions.
func ReapOrphan() (int, error) {
	var status unix.WaitStatus

	pid, err := unix.Wait4(-1, &status, unix.WNOHANG, nil)
	if err != nil {
		if errors.Is(err, unix.ECHILD) {
			return 0, nil
		}

		return 0, fmt.Errorf("wait4: %w", err)
	}

	return pid, nil
}

// raiseHangup sends SIGHUP to the process itself. Used as a probe for the
// installed hangup handler right after it is set up.
func raiseHangup() error {
	err := unix.Kill(os.Getpid(), unix.SIGHUP)
	if err != nil {
		return fmt.Errorf("kill: %w", err)
	}

	return nil
}
