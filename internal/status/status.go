// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package status

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// File is the name of the status file inside the status directory.
const File = "status"

// Status is the supervisor state as published to the status directory.
type Status struct {
	// State is the current supervision state: starting, running or exited.
	State string `toml:"state"`

	// PID is the process ID of the running shell, 0 if none is alive.
	PID int `toml:"pid"`

	// StartedAt is the time the current or most recent shell was launched.
	StartedAt time.Time `toml:"started_at"`

	// Restarts counts shell terminations since boot.
	Restarts int `toml:"restarts"`

	// LastExitCode is the exit code of the most recently reaped shell.
	LastExitCode int `toml:"last_exit_code"`

	// LastSignal names the signal that terminated the most recent shell.
	// Empty if it exited on its own.
	LastSignal string `toml:"last_signal"`
}

// Read loads the status file from the given status directory.
func Read(dir string) (Status, error) {
	data, err := os.ReadFile(filepath.Join(dir, File))
	if err != nil {
		return Status{}, fmt.Errorf("read status: %w", err)
	}

	return decode(data)
}

func decode(data []byte) (Status, error) {
	var status Status

	err := toml.Unmarshal(data, &status)
	if err != nil {
		return Status{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return status, nil
}
