// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package orchestrator

import (
	"path/filepath"

	"github.com/archmagece/augent/internal/workspace"
)

// relativeToRoot converts an absolute installer target path into the
// workspace-relative form the index and modified-file detection use.
func relativeToRoot(root, target string) (string, error) {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// preserveScratchDir returns the directory modified files are copied
// into before a reinstall overwrites them, rooted under the workspace's
// own config directory so it travels with the workspace rather than a
// process-global temp path.
func preserveScratchDir(ws *workspace.Workspace) (string, error) {
	dir := filepath.Join(ws.ConfigDir, ".preserve")
	if err := ws.EnsureConfigDir(); err != nil {
		return "", err
	}
	return dir, nil
}
