// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd provides the init command entry point. It handles flag
// parsing, configuration loading, logging setup and the boot sequence up to
// handing over to the shell supervisor.
package cmd
