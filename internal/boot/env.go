// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package boot

import (
	"fmt"
	"os"
)

// EnvVars is a map of environment variable values by name.
type EnvVars map[string]string

// SetEnv sets the given [EnvVars] in the environment, overwriting existing
// values. Variables are applied in lexicographic order of their names.
//
// The init environment is inherited by every process spawned later, so this
// runs before anything else is started.
func SetEnv(envVars EnvVars) error {
	for key, value := range sortedMap(envVars) {
		err := setenv(key, value)
		if err != nil {
			return err
		}
	}

	return nil
}

func setenv(key, value string) error {
	err := os.Setenv(key, value)
	if err != nil {
		return fmt.Errorf("setenv %s: %w", key, err)
	}

	return nil
}
