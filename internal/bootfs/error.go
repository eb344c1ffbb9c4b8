// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootfs

import "strings"

// LDDError wraps a failed ldd invocation.
type LDDError struct {
	Err    error
	Stderr string
}

func (e *LDDError) Error() string {
	msg := "ldd: " + e.Err.Error()

	if e.Stderr != "" {
		msg += ": " + strings.TrimSpace(e.Stderr)
	}

	return msg
}

// Is returns true if the other error is of the same type.
func (e *LDDError) Is(other error) bool {
	_, ok := other.(*LDDError)

	return ok
}

func (e *LDDError) Unwrap() error {
	return e.Err
}
