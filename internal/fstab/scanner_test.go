// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fstab_test

import (
	"strings"
	"testing"

	"github.com/aibor/tinyinit/internal/fstab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner(t *testing.T) {
	input := "# comment\n\n/dev/sda1 / ext4 rw\nno newline at end"

	type line struct {
		no   int
		text string
		skip bool
	}

	scanner := fstab.NewScanner(strings.NewReader(input))

	var lines []line
	for scanner.Scan() {
		lines = append(lines, line{
			no:   scanner.LineNo(),
			text: scanner.Line(),
			skip: scanner.Skip(),
		})
	}

	require.NoError(t, scanner.Err())
	assert.Equal(t, []line{
		{no: 1, text: "# comment", skip: true},
		{no: 2, text: "", skip: true},
		{no: 3, text: "/dev/sda1 / ext4 rw"},
		{no: 4, text: "no newline at end"},
	}, lines)
}

func TestScannerEmptyInput(t *testing.T) {
	scanner := fstab.NewScanner(strings.NewReader(""))

	assert.False(t, scanner.Scan())
	require.NoError(t, scanner.Err())
}

func TestScannerKeepsOtherWhitespace(t *testing.T) {
	scanner := fstab.NewScanner(strings.NewReader("/dev/sda1 / ext4 rw\r\n"))

	require.True(t, scanner.Scan())
	assert.Equal(t, "/dev/sda1 / ext4 rw\r", scanner.Line())
}

func TestScannerLongLine(t *testing.T) {
	long := strings.Repeat("x", fstab.MaxLineLength+10)
	input := long + "\ntail\n"

	scanner := fstab.NewScanner(strings.NewReader(input))

	require.True(t, scanner.Scan())
	assert.Len(t, scanner.Line(), fstab.MaxLineLength)
	assert.Equal(t, 1, scanner.LineNo())

	// The overlong remainder reads as its own line.
	require.True(t, scanner.Scan())
	assert.Equal(t, strings.Repeat("x", 10), scanner.Line())

	require.True(t, scanner.Scan())
	assert.Equal(t, "tail", scanner.Line())
	assert.Equal(t, 3, scanner.LineNo())

	assert.False(t, scanner.Scan())
	require.NoError(t, scanner.Err())
}

func TestScannerReadError(t *testing.T) {
	scanner := fstab.NewScanner(&failingReader{})

	assert.False(t, scanner.Scan())
	require.ErrorIs(t, scanner.Err(), assert.AnError)
}

type failingReader struct{}

func (*failingReader) Read([]byte) (int, error) {
	return 0, assert.AnError
}
