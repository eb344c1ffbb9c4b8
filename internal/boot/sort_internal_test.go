// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package boot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedMap(t *testing.T) {
	tests := []struct {
		name     string
		inputMap map[string]string
		expected []string
	}{
		{
			name: "env names",
			inputMap: map[string]string{
				"TERM": "linux",
				"HOME": "/root",
				"USER": "root",
				"PATH": "/usr/bin",
			},
			expected: []string{
				"HOME",
				"PATH",
				"TERM",
				"USER",
			},
		},
		{
			name:     "empty",
			inputMap: map[string]string{},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := []string{}
			for key := range sortedMap(tt.inputMap) {
				actual = append(actual, key)
			}

			assert.Equal(t, tt.expected, actual)
		})
	}
}
