// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package fstab reads classic fstab style mount tables. It is deliberately
// lenient: the table drives a best effort boot mount pass, so a bad line
// must never take the whole table down with it.
package fstab
