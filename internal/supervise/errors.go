// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package supervise

import "errors"

var (
	// ErrNoShell is returned by [New] for a configuration without a shell
	// path.
	ErrNoShell = errors.New("no shell configured")

	// ErrShellInaccessible is returned by [New] if the configured shell is
	// missing execute permission or cannot be reached at all.
	ErrShellInaccessible = errors.New("shell not accessible")

	// ErrSpawn is returned by [Supervisor.Run] if a shell process could not
	// be created. There is no retry for this case: a system that cannot
	// spawn processes anymore has no way forward.
	ErrSpawn = errors.New("spawn shell")
)
