// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fstab

import "errors"

// ErrIncompleteEntry is returned for mount table lines that have fewer than
// the four required fields.
var ErrIncompleteEntry = errors.New("incomplete mount table entry")
