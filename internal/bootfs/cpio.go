// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: MIT

package bootfs

import (
	"fmt"
	"io"
	"os"

	"github.com/cavaliergopher/cpio"
)

const numLinks = 2

// cpioWriter writes archive entries in the newc CPIO format.
type cpioWriter struct {
	archive *cpio.Writer
}

func newCPIOWriter(w io.Writer) *cpioWriter {
	return &cpioWriter{cpio.NewWriter(w)}
}

// Close closes the writer. Flush is called by the underlying closer.
func (w *cpioWriter) Close() error {
	err := w.archive.Close()
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}

	return nil
}

// writeHeader writes the cpio header.
func (w *cpioWriter) writeHeader(hdr *cpio.Header) error {
	if err := w.archive.WriteHeader(hdr); err != nil {
		return fmt.Errorf("write header for %s: %w", hdr.Name, err)
	}

	return nil
}

// writeDirectory adds a directory entry for the given path to the archive.
func (w *cpioWriter) writeDirectory(path string) error {
	header := &cpio.Header{
		Name:  path,
		Mode:  cpio.TypeDir | cpio.ModePerm,
		Links: numLinks,
	}

	return w.writeHeader(header)
}

// writeSymlink adds a symbolic link for the given path pointing to the given
// target.
func (w *cpioWriter) writeSymlink(path, target string) error {
	header := &cpio.Header{
		Name: path,
		Mode: cpio.TypeSymlink | cpio.ModePerm,
		Size: int64(len(target)),
	}
	if err := w.writeHeader(header); err != nil {
		return err
	}

	// Body of a link is the path of the target file.
	if _, err := w.archive.Write([]byte(target)); err != nil {
		return fmt.Errorf("write body for %s: %w", path, err)
	}

	return nil
}

// writeRegular copies the existing file from source into the archive.
func (w *cpioWriter) writeRegular(path, source string) error {
	file, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("read info: %w", err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotRegular, source)
	}

	header, err := cpio.FileInfoHeader(info, "")
	if err != nil {
		return fmt.Errorf("create header: %w", err)
	}

	header.Name = path

	if err := w.writeHeader(header); err != nil {
		return err
	}

	if _, err := io.Copy(w.archive, file); err != nil {
		return fmt.Errorf("write body for %s: %w", path, err)
	}

	return nil
}
