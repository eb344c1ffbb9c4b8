// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aibor/tinyinit/internal/bootfs"
)

func TestResolveLibraries(t *testing.T) {
	libsByBinary := map[string][]string{
		"/bin/sh":   {"/lib/libc.so.6"},
		"/bin/bash": {"/lib/libc.so.6", "/lib/libtinfo.so.6"},
	}

	resolver := func(_ context.Context, path string) ([]string, error) {
		return libsByBinary[path], nil
	}

	libs, err := bootfs.ResolveLibraries(
		t.Context(),
		resolver,
		"/bin/sh",
		"/bin/bash",
	)
	require.NoError(t, err)

	expected := []string{"/lib/libc.so.6", "/lib/libtinfo.so.6"}
	assert.Equal(t, expected, libs)
}

func TestResolveLibrariesStatic(t *testing.T) {
	resolver := func(_ context.Context, _ string) ([]string, error) {
		return nil, &bootfs.LDDError{Err: assert.AnError}
	}

	libs, err := bootfs.ResolveLibraries(t.Context(), resolver, "/bin/static")
	require.NoError(t, err)
	assert.Empty(t, libs)
}

func TestResolveLibrariesError(t *testing.T) {
	resolver := func(_ context.Context, _ string) ([]string, error) {
		return nil, assert.AnError
	}

	_, err := bootfs.ResolveLibraries(t.Context(), resolver, "/bin/sh")
	assert.ErrorIs(t, err, assert.AnError)
}
