// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package mount

import (
	"golang.org/x/sys/unix"
)

// Mounter applies a single mount with the semantics of mount(2).
//
// The syscall sits behind a function type so the mount pass can be exercised
// without touching the host.
type Mounter func(source, target, fstype string, flags uintptr, data string) error

// Unix is the [Mounter] backed by the real mount syscall.
func Unix(source, target, fstype string, flags uintptr, data string) error {
	return unix.Mount(source, target, fstype, flags, data)
}
