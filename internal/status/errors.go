// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package status

import "errors"

// ErrDecode is returned for status files that do not contain a valid status
// document.
var ErrDecode = errors.New("invalid status file")
