// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package status publishes and reads the supervisor state. The state lives
// as a single TOML file in a status directory, replaced atomically on every
// transition, so tools can read or watch it without coordinating with the
// init process.
package status
