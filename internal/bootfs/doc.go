// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package bootfs builds the boot file system archive: a CPIO archive in the
// newc format, suitable for the kernel to unpack as initial RAM file system.
// Besides plain files it packs the shared objects dynamically linked
// executables need, resolved with ldd and placed in a single lib directory.
package bootfs
