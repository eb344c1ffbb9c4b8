// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package supervise keeps an interactive shell running. It spawns the
// configured shell, waits for it to terminate, reports how it went and
// spawns the next one, forever. There is no exit code policy: a shell that
// ends is a shell that gets replaced.
//
// The supervisor is meant to run as PID 1. It ignores SIGHUP apart from
// logging it and sweeps up orphaned child processes so no zombies
// accumulate.
package supervise
