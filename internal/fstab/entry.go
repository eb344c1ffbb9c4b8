// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fstab

import (
	"fmt"
	"strings"
)

// maxFields is the number of fields a mount table line can carry. Additional
// tokens on a line are dropped silently.
const maxFields = 6

// Entry is a single mount table entry.
type Entry struct {
	// Source is the device, server or pseudo source to mount.
	Source string

	// Target is the mount point path.
	Target string

	// FSType is the file system type.
	FSType string

	// Options is the comma separated mount option list.
	Options string

	// Freq is the dump frequency. 0 if the field is absent.
	Freq int

	// PassNo is the fsck pass number. 0 if the field is absent.
	PassNo int
}

// ParseLine parses a single mount table line into an [Entry].
//
// Fields are separated by runs of spaces and tabs. Only the first
// six fields are read. Lines with fewer than four fields return
// [ErrIncompleteEntry]. The numeric fields are parsed leniently: a missing
// or malformed number yields 0, never an error.
func ParseLine(line string) (Entry, error) {
	fields := splitFields(line)
	if len(fields) < 4 {
		return Entry{}, fmt.Errorf(
			"%w: %d of 4 required fields",
			ErrIncompleteEntry, len(fields),
		)
	}

	entry := Entry{
		Source:  fields[0],
		Target:  fields[1],
		FSType:  fields[2],
		Options: fields[3],
	}

	if len(fields) > 4 {
		entry.Freq = atoi(fields[4])
	}

	if len(fields) > 5 {
		entry.PassNo = atoi(fields[5])
	}

	return entry, nil
}

// splitFields splits the line on runs of spaces and tabs into at most
// [maxFields] fields. Unlike [strings.Fields] it does not split on other
// white space, so a stray carriage return stays part of its field.
func splitFields(line string) []string {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t'
	})

	if len(fields) > maxFields {
		fields = fields[:maxFields]
	}

	return fields
}

// atoi converts the leading numeric prefix of s into an int. It reads an
// optional sign followed by digits and stops at the first other character.
// It returns 0 if there is no numeric prefix at all.
func atoi(s string) int {
	var value int

	idx := 0
	negative := false

	if idx < len(s) && (s[idx] == '+' || s[idx] == '-') {
		negative = s[idx] == '-'
		idx++
	}

	for ; idx < len(s) && s[idx] >= '0' && s[idx] <= '9'; idx++ {
		value = value*10 + int(s[idx]-'0')
	}

	if negative {
		return -value
	}

	return value
}
