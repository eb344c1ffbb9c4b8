// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fstab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtoi(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "empty", input: "", expected: 0},
		{name: "zero", input: "0", expected: 0},
		{name: "number", input: "42", expected: 42},
		{name: "signed positive", input: "+7", expected: 7},
		{name: "signed negative", input: "-7", expected: -7},
		{name: "trailing garbage", input: "12ab", expected: 12},
		{name: "leading garbage", input: "ab12", expected: 0},
		{name: "bare sign", input: "-", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, atoi(tt.input))
		})
	}
}
