// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootfs

import "errors"

var (
	// ErrEmptyPath is returned if an entry is added with an empty archive
	// path.
	ErrEmptyPath = errors.New("path must not be empty")

	// ErrEntryConflict is returned if an archive path is added twice with
	// different content.
	ErrEntryConflict = errors.New("conflicting archive entry")

	// ErrNotRegular is returned if a source file is not a regular file.
	ErrNotRegular = errors.New("not a regular file")
)
