// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// mkbootfs packs a bootable initramfs archive around the tinyinit binary.
// The result is a CPIO archive the kernel unpacks and boots with tinyinit
// as /init.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/aibor/tinyinit/internal/bootfs"
)

func main() {
	cmd := &cli.Command{
		Name:  "mkbootfs",
		Usage: "Pack a bootable initramfs archive",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "init",
				Aliases:  []string{"i"},
				Usage:    "tinyinit binary packed as /init",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "fstab",
				Aliases: []string{"f"},
				Usage:   "mount table packed as /etc/fstab",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "configuration file packed as /etc/tinyinit.toml",
			},
			&cli.StringFlag{
				Name:    "shell",
				Aliases: []string{"s"},
				Usage:   "shell binary packed at its original path",
			},
			&cli.StringSliceFlag{
				Name:    "add",
				Aliases: []string{"a"},
				Usage:   "additional file packed at its original path",
			},
			&cli.StringFlag{
				Name:     "out",
				Aliases:  []string{"o"},
				Usage:    "output archive file",
				Required: true,
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	archive := bootfs.New()

	if err := archive.AddFile(bootfs.InitPath, cmd.String("init")); err != nil {
		return fmt.Errorf("add init: %w", err)
	}

	if fstab := cmd.String("fstab"); fstab != "" {
		if err := archive.AddFile("etc/fstab", fstab); err != nil {
			return fmt.Errorf("add fstab: %w", err)
		}
	}

	if config := cmd.String("config"); config != "" {
		err := archive.AddFile("etc/tinyinit.toml", config)
		if err != nil {
			return fmt.Errorf("add config: %w", err)
		}
	}

	// The shell and any extra files keep their original paths so the boot
	// configuration does not need rewriting.
	executables := cmd.StringSlice("add")
	if shell := cmd.String("shell"); shell != "" {
		executables = append(executables, shell)
	}

	for _, path := range executables {
		if err := archive.AddFile(path, path); err != nil {
			return fmt.Errorf("add %s: %w", path, err)
		}
	}

	libs, err := bootfs.ResolveLibraries(ctx, bootfs.Ldd, executables...)
	if err != nil {
		return fmt.Errorf("resolve libraries: %w", err)
	}

	if err := archive.AddLibraries(libs...); err != nil {
		return fmt.Errorf("add libraries: %w", err)
	}

	return writeArchive(archive, cmd.String("out"))
}

func writeArchive(archive *bootfs.Archive, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create archive file: %w", err)
	}

	if err := archive.WriteTo(file); err != nil {
		_ = file.Close()
		_ = os.Remove(path)

		return fmt.Errorf("write archive: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close archive file: %w", err)
	}

	return nil
}
