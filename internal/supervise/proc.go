// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package supervise

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// Exit describes how a child process terminated.
type Exit struct {
	// Code is the exit code of a regularly exited child. Not meaningful if
	// Signaled is set.
	Code int

	// Signaled is set if the child was terminated by a signal instead of
	// exiting on its own.
	Signaled bool

	// Signal is the name of the terminating signal if Signaled is set.
	Signal string
}

// Child is a running shell process the supervisor waits on.
type Child interface {
	// Pid returns the OS process ID of the child.
	Pid() int

	// Wait blocks until the child terminated and returns how it went. It
	// completes only on actual termination, never for stop or continue
	// transitions, so a child is reaped exactly once.
	Wait() (Exit, error)
}

// StartFunc spawns a new shell process.
type StartFunc func() (Child, error)

// StartShell returns a [StartFunc] launching the given shell with the given
// arguments.
//
// The child starts in the directory named by the HOME environment variable,
// or the current directory if HOME is unset. It inherits the environment and
// the standard streams, so the shell owns the console.
func StartShell(shell string, args []string) StartFunc {
	return func() (Child, error) {
		cmd := exec.Command(shell, args...)
		cmd.Dir = os.Getenv("HOME")
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		if err := cmd.Start(); err != nil {
			return nil, fmt.Errorf("start %s: %w", shell, err)
		}

		return &shellChild{cmd: cmd}, nil
	}
}

// shellChild adapts [exec.Cmd] to the [Child] interface.
type shellChild struct {
	cmd *exec.Cmd
}

func (c *shellChild) Pid() int {
	return c.cmd.Process.Pid
}

func (c *shellChild) Wait() (Exit, error) {
	err := c.cmd.Wait()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitFor(exitErr.ProcessState), nil
	}

	if err != nil {
		return Exit{}, fmt.Errorf("wait: %w", err)
	}

	return exitFor(c.cmd.ProcessState), nil
}

func exitFor(state *os.ProcessState) Exit {
	status, ok := state.Sys().(syscall.WaitStatus)
	if ok && status.Signaled() {
		return Exit{
			Signaled: true,
			Signal:   status.Signal().String(),
		}
	}

	return Exit{Code: state.ExitCode()}
}
