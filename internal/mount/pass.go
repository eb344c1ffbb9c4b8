// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package mount applies a mount table at boot, best effort. A failing entry
// is reported and skipped; the pass carries on so the system comes up with
// whatever could be mounted.
package mount

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aibor/tinyinit/internal/fstab"
)

// Pass reads the mount table file at path and applies all its entries in
// file order using [Apply].
//
// The returned error is non-nil only if the file itself cannot be opened.
// Everything else is a per-entry problem and handled by [Apply].
func Pass(path string, mounter Mounter, log *slog.Logger) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open mount table: %w", err)
	}
	defer file.Close()

	Apply(file, mounter, log)

	return nil
}

// Apply reads mount table entries from r and applies each in order.
//
// Malformed lines and failing mounts are logged and skipped. Apply never
// gives up on the remaining entries.
func Apply(r io.Reader, mounter Mounter, log *slog.Logger) {
	scanner := fstab.NewScanner(r)

	for scanner.Scan() {
		if scanner.Skip() {
			continue
		}

		entry, err := fstab.ParseLine(scanner.Line())
		if err != nil {
			log.Warn("Skipping invalid or incomplete line",
				slog.Int("line", scanner.LineNo()))

			continue
		}

		applyEntry(entry, mounter, log)
	}

	if err := scanner.Err(); err != nil {
		log.Error("Reading mount table failed",
			slog.Any("error", err))
	}
}

// applyEntry translates the entry's options and issues the mount call.
// Failure is reported with everything needed to retry by hand.
func applyEntry(entry fstab.Entry, mounter Mounter, log *slog.Logger) {
	flags, data := fstab.TranslateOptions(entry.Options)
	entry.Options = data

	log.Debug("Mounting",
		slog.String("source", entry.Source),
		slog.String("target", entry.Target),
		slog.String("fstype", entry.FSType))

	err := mounter(entry.Source, entry.Target, entry.FSType, flags, data)
	if err != nil {
		log.Error("Mount failed",
			slog.String("fstype", entry.FSType),
			slog.String("target", entry.Target),
			slog.String("source", entry.Source),
			slog.String("options", entry.Options),
			slog.Any("error", err))
	}
}
