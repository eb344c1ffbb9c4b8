// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package status

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/google/renameio/v2"
)

// Writer publishes supervisor status into a status directory.
type Writer struct {
	path string
}

// NewWriter creates the status directory if needed and returns a [Writer]
// for it.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create status directory: %w", err)
	}

	return &Writer{
		path: filepath.Join(dir, File),
	}, nil
}

// Write publishes the given status. The file is replaced atomically, so
// readers never observe a partial document.
func (w *Writer) Write(status Status) error {
	data, err := toml.Marshal(status)
	if err != nil {
		return fmt.Errorf("encode status: %w", err)
	}

	if err := renameio.WriteFile(w.path, data, 0o644); err != nil {
		return fmt.Errorf("write status: %w", err)
	}

	return nil
}
