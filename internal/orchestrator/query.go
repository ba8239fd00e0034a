// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package orchestrator

import (
	"github.com/archmagece/augent/internal/apperrors"
	"github.com/archmagece/augent/internal/workspace"
)

// List returns every bundle currently locked into the workspace, in
// lockfile order. A pure read-through over C8: no additional logic.
func List(ws *workspace.Workspace) ([]workspace.LockedBundle, error) {
	lf, err := workspace.LoadLockfile(ws.ConfigDir)
	if err != nil {
		return nil, err
	}
	return lf.Bundles, nil
}

// Show returns one locked bundle's full record plus the installed-file
// index entries it owns. A pure read-through over C8: no additional logic.
func Show(ws *workspace.Workspace, name string) (workspace.LockedBundle, map[string][]string, error) {
	lf, err := workspace.LoadLockfile(ws.ConfigDir)
	if err != nil {
		return workspace.LockedBundle{}, nil, err
	}
	locked, ok := lf.Find(name)
	if !ok {
		return workspace.LockedBundle{}, nil, apperrors.Newf(apperrors.CodeBundleNotFound, "bundle not found in lockfile: %s", name)
	}

	idx, err := workspace.LoadIndex(ws.ConfigDir)
	if err != nil {
		return workspace.LockedBundle{}, nil, err
	}
	return locked, idx[name], nil
}
