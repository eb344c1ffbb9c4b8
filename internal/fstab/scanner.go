// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fstab

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// MaxLineLength is the maximum number of bytes a single mount table line can
// carry.
const MaxLineLength = 1024

// Scanner reads a mount table line by line.
//
// Lines are capped at [MaxLineLength] bytes. A longer line is returned
// truncated, with the remainder showing up as the following lines, the way a
// fixed buffer line reader behaves. Exactly one trailing newline is
// stripped, all other white space is kept.
type Scanner struct {
	reader *bufio.Reader
	line   string
	lineNo int
	err    error
}

// NewScanner creates a new [Scanner] reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReaderSize(r, MaxLineLength),
	}
}

// Scan advances to the next line. It returns false once the input is
// exhausted or reading failed. Check [Scanner.Err] once Scan returned false.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}

	chunk, err := s.reader.ReadSlice('\n')

	switch {
	case err == nil:
	case errors.Is(err, bufio.ErrBufferFull):
		// Line does not fit the buffer. Return what fits and let the
		// remainder show up as the next line.
	case errors.Is(err, io.EOF):
		if len(chunk) == 0 {
			s.err = io.EOF
			return false
		}
	default:
		s.err = fmt.Errorf("read line %d: %w", s.lineNo+1, err)
		return false
	}

	s.lineNo++
	s.line = strings.TrimSuffix(string(chunk), "\n")

	return true
}

// Line returns the current line without its trailing newline.
func (s *Scanner) Line() string {
	return s.line
}

// LineNo returns the one-based number of the current line.
func (s *Scanner) LineNo() int {
	return s.lineNo
}

// Skip reports whether the current line is empty or a comment and so must
// not be parsed as an entry.
func (s *Scanner) Skip() bool {
	return s.line == "" || strings.HasPrefix(s.line, "#")
}

// Err returns the first error encountered while reading. It returns nil if
// the input was consumed completely.
func (s *Scanner) Err() error {
	if errors.Is(s.err, io.EOF) {
		return nil
	}

	return s.err
}
