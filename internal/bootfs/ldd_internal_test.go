// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootfs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLdInfosParseFrom(t *testing.T) {
	lddOutput := strings.Join([]string{
		"\tlinux-vdso.so.1 (0x00007ffe234f1000)",
		"\tlibc.so.6 => /usr/lib/libc.so.6 (0x00007f1234567000)",
		"\t/lib64/ld-linux-x86-64.so.2 (0x00007f1234890000)",
	}, "\n")

	var infos ldInfos

	infos.parseFrom(strings.NewReader(lddOutput))

	expected := []string{
		"/usr/lib/libc.so.6",
		"/lib64/ld-linux-x86-64.so.2",
	}

	assert.Equal(t, expected, infos.realPaths())
}

func TestLdInfosRealPathsEmpty(t *testing.T) {
	var infos ldInfos

	infos.parseFrom(strings.NewReader("\tlinux-vdso.so.1 (0x00007ffe234f1000)\n"))

	assert.Empty(t, infos.realPaths())
}
