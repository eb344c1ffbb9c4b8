// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aibor/tinyinit/internal/boot"
	"github.com/aibor/tinyinit/internal/config"
	"github.com/aibor/tinyinit/internal/mount"
	"github.com/aibor/tinyinit/internal/status"
	"github.com/aibor/tinyinit/internal/supervise"
)

// IO provides input and output streams for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run is the main entry point for the init command. It returns the process
// exit code.
//
// In normal operation it never returns: boot leads into the supervision
// loop, which runs until the system goes down. A non-zero return means the
// system cannot come up at all.
func Run(ctx context.Context, name string, args []string, cfg IO) int {
	flags, err := parseFlags(name, args, cfg.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		// The kernel hands boot parameters it did not consume to init.
		// Those are not ours to judge, so note them and boot on.
		log := setupLogging(cfg.Stderr, flags.debug)
		log.Warn("Ignoring unparsable arguments", slog.Any("error", err))
	}

	if flags.version {
		printVersion(cfg.Stdout, name)

		return 0
	}

	log := setupLogging(cfg.Stderr, flags.debug)

	conf, err := loadConfig(flags, log)
	if err != nil {
		log.Error("Invalid configuration", slog.Any("error", err))

		return 1
	}

	if err := run(ctx, conf, cfg, log); err != nil {
		log.Error("Init failed", slog.Any("error", err))

		return 1
	}

	return 0
}

// loadConfig loads the configuration file and merges flag overrides into
// it. A missing or broken file degrades to the built-in defaults: PID 1
// dying over a config typo would take the system down with it.
func loadConfig(flags *flags, log *slog.Logger) (*config.Config, error) {
	conf, err := config.Load(flags.configPath)
	if err != nil {
		log.Warn("Using default configuration",
			slog.String("path", flags.configPath),
			slog.Any("error", err))

		conf = &config.Config{}
	}

	conf.Merge(flags.shell, flags.fstab, flags.statusDir)
	conf.ApplyDefaults()

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

func run(
	ctx context.Context,
	conf *config.Config,
	cfg IO,
	log *slog.Logger,
) error {
	if err := boot.SetEnv(conf.Env); err != nil {
		return fmt.Errorf("set environment: %w", err)
	}

	if conf.Banner != "" {
		fmt.Fprintln(cfg.Stdout, conf.Banner)
	}

	// Mounting is best effort. A missing or broken mount table is logged
	// and boot carries on: a shell on an incomplete system beats no shell
	// at all.
	if err := mount.Pass(conf.Fstab, mount.Unix, log); err != nil {
		log.Warn("Skipping mount pass", slog.Any("error", err))
	}

	if conf.LoopbackEnabled() {
		if err := boot.ConfigureLoopbackInterface(); err != nil {
			log.Warn("Loopback bring-up failed", slog.Any("error", err))
		}
	}

	supervisorConf := supervise.Config{
		Shell:        conf.Shell,
		Args:         conf.ShellArgs,
		RestartDelay: time.Duration(conf.RestartDelay),
		Log:          log,
	}

	writer, err := status.NewWriter(conf.StatusDir)
	if err != nil {
		log.Warn("Status publishing disabled", slog.Any("error", err))
	} else {
		supervisorConf.Notify = newStatusSink(writer, log).Notify
	}

	supervisor, err := supervise.New(supervisorConf)
	if err != nil {
		return fmt.Errorf("supervisor: %w", err)
	}

	return supervisor.Run(ctx)
}
