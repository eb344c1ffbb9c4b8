// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootfs

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"maps"
	"path/filepath"
	"slices"
	"strings"
)

const (
	// LibDir is the archive directory shared objects are packed into.
	LibDir = "lib"

	// InitPath is the archive path the kernel executes as init.
	InitPath = "init"
)

type entryKind int

const (
	kindFile entryKind = iota
	kindSymlink
)

type entry struct {
	kind entryKind

	// source is the file system path packed for file entries.
	source string

	// target is the link destination for symlink entries.
	target string
}

// Archive is a set of files to pack into a boot archive.
//
// Entries are deduplicated by archive path and written in lexicographic path
// order, with parent directories created implicitly.
type Archive struct {
	entries map[string]entry
}

// New creates an empty [Archive].
func New() *Archive {
	return &Archive{
		entries: map[string]entry{},
	}
}

// AddFile adds the file at source to the archive at path.
//
// Paths are normalized to be relative to the archive root. Adding the same
// path twice is fine as long as it points to the same source. Anything else
// returns [ErrEntryConflict].
func (a *Archive) AddFile(path, source string) error {
	return a.add(path, entry{kind: kindFile, source: source})
}

// AddSymlink adds a symbolic link at path pointing to target.
func (a *Archive) AddSymlink(path, target string) error {
	return a.add(path, entry{kind: kindSymlink, target: target})
}

// AddLibraries adds shared object files to [LibDir].
//
// For each directory the libraries came from, a symlink to [LibDir] is added
// so the dynamic linker finds them at the paths it expects.
func (a *Archive) AddLibraries(libs ...string) error {
	for _, lib := range libs {
		path := filepath.Join(LibDir, filepath.Base(lib))

		err := a.AddFile(path, lib)
		if err != nil {
			return err
		}

		link := normalizePath(filepath.Dir(lib))
		if link == LibDir || link == "" {
			continue
		}

		err = a.AddSymlink(link, "/"+LibDir)
		if err != nil {
			return err
		}
	}

	return nil
}

func (a *Archive) add(path string, newEntry entry) error {
	path = normalizePath(path)
	if path == "" {
		return ErrEmptyPath
	}

	existing, exists := a.entries[path]
	if exists {
		if existing == newEntry {
			return nil
		}

		return fmt.Errorf("%w: %s", ErrEntryConflict, path)
	}

	a.entries[path] = newEntry

	return nil
}

// WriteTo writes the archive in newc CPIO format to w.
func (a *Archive) WriteTo(w io.Writer) error {
	writer := newCPIOWriter(w)

	written := map[string]bool{}

	for path, ent := range sortedMap(a.entries) {
		if written[path] {
			return fmt.Errorf("%w: %s", ErrEntryConflict, path)
		}

		if err := writeParents(writer, written, path); err != nil {
			return err
		}

		written[path] = true

		var err error

		switch ent.kind {
		case kindFile:
			err = writer.writeRegular(path, ent.source)
		case kindSymlink:
			err = writer.writeSymlink(path, ent.target)
		}

		if err != nil {
			return err
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}

	return nil
}

// writeParents writes directory entries for all missing parents of path,
// outermost first.
func writeParents(
	writer *cpioWriter,
	written map[string]bool,
	path string,
) error {
	dir := filepath.Dir(path)
	if dir == "." || written[dir] {
		return nil
	}

	if err := writeParents(writer, written, dir); err != nil {
		return err
	}

	written[dir] = true

	return writer.writeDirectory(dir)
}

// normalizePath turns any given path into a clean path relative to the
// archive root.
func normalizePath(path string) string {
	normalized := strings.TrimPrefix(filepath.Clean("/"+path), "/")
	if normalized == "." {
		return ""
	}

	return normalized
}

// sortedMap returns an iterator that iterates the given map in lexicographic
// order of the keys.
func sortedMap[K cmp.Ordered, V any](m map[K]V) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, key := range slices.Sorted(maps.Keys(m)) {
			if !yield(key, m[key]) {
				return
			}
		}
	}
}
