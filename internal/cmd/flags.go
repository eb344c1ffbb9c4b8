// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/aibor/tinyinit/internal/config"
)

type flags struct {
	configPath string
	shell      string
	fstab      string
	statusDir  string
	debug      bool
	version    bool
}

// parseFlags parses the command line. The kernel passes boot parameters it
// did not consume on to init, so unknown arguments are expected and must
// not be fatal. The returned error is [flag.ErrHelp] for a help request and
// a plain parse error otherwise; in both cases the flags parsed so far are
// returned as well.
func parseFlags(name string, args []string, output io.Writer) (*flags, error) {
	f := &flags{}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(
		&f.configPath,
		"config",
		config.DefaultPath,
		"configuration file to load",
	)

	fs.StringVar(
		&f.shell,
		"shell",
		"",
		"shell to supervise, overrides the configuration file",
	)

	fs.StringVar(
		&f.fstab,
		"fstab",
		"",
		"mount table to apply, overrides the configuration file",
	)

	fs.StringVar(
		&f.statusDir,
		"status-dir",
		"",
		"directory to publish supervisor status in, overrides the configuration file",
	)

	fs.BoolVar(
		&f.debug,
		"debug",
		false,
		"enable debug logging",
	)

	fs.BoolVar(
		&f.version,
		"version",
		false,
		"print version and exit",
	)

	if err := fs.Parse(args); err != nil {
		return f, fmt.Errorf("parse args: %w", err)
	}

	return f, nil
}

func printVersion(output io.Writer, name string) {
	version := "(devel)"

	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}

	fmt.Fprintf(output, "%s %s\n", name, version)
}
