// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
)

const (
	configDirName  = "augent"
	configFileName = "config.yaml"
)

// GlobalPath returns the per-user global config file's path:
// $XDG_CONFIG_HOME/augent/config.yaml (os.UserConfigDir handles the
// platform-specific fallback when the env var is unset).
func GlobalPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, configDirName, configFileName), nil
}

// EnsureGlobalDir creates the global config file's parent directory.
func EnsureGlobalDir() error {
	base, err := os.UserConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(filepath.Join(base, configDirName), 0o700)
}
