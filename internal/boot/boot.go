// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package boot holds the one-shot bring-up steps that run once at start of
// the init process, before supervision takes over.
package boot
