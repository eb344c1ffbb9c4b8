// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package supervise

// State describes what the supervisor is doing with its shell.
type State int

const (
	// StateStarting is reported right before a new shell is spawned.
	StateStarting State = iota

	// StateRunning is reported once a shell process is alive.
	StateRunning

	// StateExited is reported after a terminated shell was reaped.
	StateExited
)

// String returns the lower case name of the state.
func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateExited:
		return "exited"
	default:
		return "unknown"
	}
}

// Event is a single state transition of the supervised shell.
type Event struct {
	// State is the state entered with this event.
	State State

	// PID is the shell's process ID. It is set for [StateRunning] and
	// [StateExited] events.
	PID int

	// ExitCode is the exit code of the terminated shell. Only meaningful
	// for [StateExited] events with an empty Signal.
	ExitCode int

	// Signal is the name of the terminating signal. Empty if the shell
	// exited on its own.
	Signal string

	// Restarts counts shell terminations since the supervisor started.
	Restarts int
}

// NotifyFunc receives supervisor state transitions. It is called inline
// between supervision steps and must not block.
type NotifyFunc func(Event)
