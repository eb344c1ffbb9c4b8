// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import "errors"

var (
	// ErrMissingValue is returned by [Config.Validate] for required fields
	// without a value.
	ErrMissingValue = errors.New("missing required value")

	// ErrInvalidValue is returned by [Config.Validate] for values outside
	// their allowed range.
	ErrInvalidValue = errors.New("invalid value")
)
