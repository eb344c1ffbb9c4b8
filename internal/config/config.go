// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads the init configuration. Configuration is optional:
// with no file and no flags, the built-in defaults bring up a standard
// interactive system.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultPath is the default location of the configuration file.
	DefaultPath = "/etc/tinyinit.toml"

	// DefaultShell is the shell supervised if none is configured.
	DefaultShell = "/usr/bin/bash"

	// DefaultFstab is the mount table applied at boot.
	DefaultFstab = "/etc/fstab"

	// DefaultStatusDir is where the supervisor publishes its state.
	DefaultStatusDir = "/run/tinyinit"

	// DefaultBanner is written to the console once bring-up is done.
	DefaultBanner = "Welcome to tinyinit!"
)

// DefaultEnv returns the environment applied at boot before anything else
// runs.
func DefaultEnv() map[string]string {
	return map[string]string{
		"TERM": "linux",
		"USER": "root",
		"HOME": "/root",
		"PATH": "/usr/local/bin:/usr/bin:/usr/sbin",
	}
}

// Config holds the init process configuration.
type Config struct {
	// Shell is the interactive shell to launch and supervise.
	Shell string `toml:"shell"`

	// ShellArgs are the arguments passed to the shell. Defaults to a
	// single "-i".
	ShellArgs []string `toml:"shell_args"`

	// Fstab is the mount table file applied at boot.
	Fstab string `toml:"fstab"`

	// StatusDir is the directory the supervisor state is published in.
	StatusDir string `toml:"status_dir"`

	// Banner is written to the console once bring-up is done.
	Banner string `toml:"banner"`

	// Env are environment variables applied at boot, on top of the
	// built-in defaults.
	Env map[string]string `toml:"env"`

	// Loopback controls whether the loopback interface is brought up
	// during boot. Defaults to true.
	Loopback *bool `toml:"loopback"`

	// RestartDelay pauses shell respawning, e.g. "500ms". Zero respawns
	// immediately.
	RestartDelay Duration `toml:"restart_delay"`
}

// Load loads the configuration from a TOML file. It returns an empty
// configuration if the file does not exist.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return cfg, nil
}

// Merge merges command line flag values into the config, with flags taking
// precedence over config file values. Empty flag values are ignored.
func (c *Config) Merge(shell, fstab, statusDir string) {
	if shell != "" {
		c.Shell = shell
	}

	if fstab != "" {
		c.Fstab = fstab
	}

	if statusDir != "" {
		c.StatusDir = statusDir
	}
}

// ApplyDefaults fills in default values for any unset fields. Environment
// defaults are merged per key, so configured variables win over built-in
// ones.
func (c *Config) ApplyDefaults() {
	if c.Shell == "" {
		c.Shell = DefaultShell
	}

	if c.ShellArgs == nil {
		c.ShellArgs = []string{"-i"}
	}

	if c.Fstab == "" {
		c.Fstab = DefaultFstab
	}

	if c.StatusDir == "" {
		c.StatusDir = DefaultStatusDir
	}

	if c.Banner == "" {
		c.Banner = DefaultBanner
	}

	if c.Env == nil {
		c.Env = map[string]string{}
	}

	for key, value := range DefaultEnv() {
		if _, ok := c.Env[key]; !ok {
			c.Env[key] = value
		}
	}

	if c.Loopback == nil {
		enabled := true
		c.Loopback = &enabled
	}
}

// LoopbackEnabled reports whether the loopback interface should be brought
// up.
func (c *Config) LoopbackEnabled() bool {
	return c.Loopback != nil && *c.Loopback
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Shell == "" {
		return fmt.Errorf("%w: shell", ErrMissingValue)
	}

	if c.RestartDelay < 0 {
		return fmt.Errorf("%w: restart_delay must not be negative",
			ErrInvalidValue)
	}

	return nil
}
