// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package mount_test

import (
	"bytes"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aibor/tinyinit/internal/mount"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

type mountCall struct {
	source string
	target string
	fstype string
	flags  uintptr
	data   string
}

type recordingMounter struct {
	calls []mountCall
	err   error
}

func (m *recordingMounter) mount(
	source, target, fstype string,
	flags uintptr,
	data string,
) error {
	m.calls = append(m.calls, mountCall{
		source: source,
		target: target,
		fstype: fstype,
		flags:  flags,
		data:   data,
	})

	return m.err
}

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.TimeKey {
				return slog.Attr{}
			}

			return attr
		},
	}))
}

func TestApply(t *testing.T) {
	input := "# boot disk\n" +
		"/dev/sda1 / ext4 rw,noatime 0 1\n" +
		"bad line\n" +
		"\n"

	var buf bytes.Buffer

	mounter := &recordingMounter{}

	mount.Apply(strings.NewReader(input), mounter.mount, testLogger(&buf))

	assert.Equal(t, []mountCall{
		{
			source: "/dev/sda1",
			target: "/",
			fstype: "ext4",
			flags:  unix.MS_NOATIME,
			data:   "rw",
		},
	}, mounter.calls)

	assert.Equal(t, 1, strings.Count(buf.String(), "level=WARN"))
	assert.Contains(t, buf.String(),
		`msg="Skipping invalid or incomplete line" line=3`)
}

func TestApplyContinuesAfterFailure(t *testing.T) {
	input := "proc /proc proc defaults\n" +
		"tmp /tmp tmpfs size=64m\n"

	var buf bytes.Buffer

	mounter := &recordingMounter{err: unix.ENODEV}

	mount.Apply(strings.NewReader(input), mounter.mount, testLogger(&buf))

	require.Len(t, mounter.calls, 2)

	log := buf.String()
	assert.Equal(t, 2, strings.Count(log, `msg="Mount failed"`))
	assert.Contains(t, log, "fstype=proc")
	assert.Contains(t, log, "target=/tmp")
	assert.Contains(t, log, "source=tmp")
	assert.Contains(t, log, `options="size=64m"`)
}

func TestApplyEmptyTable(t *testing.T) {
	input := "# only comments\n\n"

	var buf bytes.Buffer

	mounter := &recordingMounter{}

	mount.Apply(strings.NewReader(input), mounter.mount, testLogger(&buf))

	assert.Empty(t, mounter.calls)
	assert.Empty(t, buf.String())
}

func TestPass(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fstab")
	err := os.WriteFile(path, []byte("proc /proc proc defaults\n"), 0o644)
	require.NoError(t, err)

	var buf bytes.Buffer

	mounter := &recordingMounter{}

	err = mount.Pass(path, mounter.mount, testLogger(&buf))

	require.NoError(t, err)
	assert.Equal(t, []mountCall{
		{
			source: "proc",
			target: "/proc",
			fstype: "proc",
			data:   "defaults",
		},
	}, mounter.calls)
}

func TestPassMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fstab")

	var buf bytes.Buffer

	mounter := &recordingMounter{}

	err := mount.Pass(path, mounter.mount, testLogger(&buf))

	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Empty(t, mounter.calls)
}
