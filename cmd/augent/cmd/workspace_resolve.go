// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cmd

import (
	"os"

	"github.com/archmagece/augent/internal/workspace"
)

// currentWorkspace resolves the workspace rooted at the current
// directory, shared by every subcommand that touches workspace state.
func currentWorkspace() (*workspace.Workspace, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return workspace.Detect(cwd)
}
