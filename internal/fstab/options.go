// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fstab

import (
	"strings"

	"golang.org/x/sys/unix"
)

// optionFlags maps mount option tokens to mount(2) flag bits. Matching is
// exact and case sensitive.
var optionFlags = map[string]uintptr{
	"ro":       unix.MS_RDONLY,
	"noatime":  unix.MS_NOATIME,
	"relatime": unix.MS_RELATIME,
	"nosuid":   unix.MS_NOSUID,
	"nodev":    unix.MS_NODEV,
	"noexec":   unix.MS_NOEXEC,
	"sync":     unix.MS_SYNCHRONOUS,
	"dirsync":  unix.MS_DIRSYNC,
}

// TranslateOptions splits a comma separated option list into mount(2) flag
// bits and the remaining file system specific options.
//
// Tokens found in the flag table contribute their flag bit. All other
// tokens are kept in order and returned re-joined with commas, ready to be
// passed as mount data to the file system driver. Translating the returned
// remainder again yields no flags and the unchanged remainder.
func TranslateOptions(options string) (uintptr, string) {
	var (
		flags uintptr
		data  []string
	)

	for token := range strings.SplitSeq(options, ",") {
		if flag, ok := optionFlags[token]; ok {
			flags |= flag

			continue
		}

		data = append(data, token)
	}

	return flags, strings.Join(data, ",")
}
