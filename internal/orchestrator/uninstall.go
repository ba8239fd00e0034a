// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package orchestrator

import (
	"os"
	"path/filepath"

	"github.com/archmagece/augent/internal/apperrors"
	"github.com/archmagece/augent/internal/logging"
	"github.com/archmagece/augent/internal/workspace"
)

// Uninstall removes a single locked bundle: every target path it wrote
// is deleted, its index entry and lockfile entry are purged, and both
// files are rewritten atomically. It refuses (CircularDependency, read
// here as "has dependents") if another locked bundle still depends on it.
func Uninstall(ws *workspace.Workspace, name string) error {
	logging.Info("uninstalling bundle", "workspace", ws.Root, "bundle", name)

	lf, err := workspace.LoadLockfile(ws.ConfigDir)
	if err != nil {
		return err
	}
	locked, ok := lf.Find(name)
	if !ok {
		return apperrors.Newf(apperrors.CodeBundleNotFound, "bundle not found in lockfile: %s", name)
	}

	deps, err := buildDependencyMap(lf)
	if err != nil {
		return err
	}
	if err := checkDependents(name, deps); err != nil {
		return err
	}

	idx, err := workspace.LoadIndex(ws.ConfigDir)
	if err != nil {
		return err
	}
	if err := removeInstalledTargets(ws.Root, idx, name); err != nil {
		return err
	}
	idx.RemoveBundle(name)

	lf.Bundles = removeLockedBundle(lf.Bundles, locked.Name)

	if err := workspace.SaveLockfile(ws.ConfigDir, lf, ws.Name()); err != nil {
		return err
	}
	return workspace.SaveIndex(ws.ConfigDir, idx)
}

func removeInstalledTargets(root string, idx workspace.Index, bundleName string) error {
	for bundleFile, targets := range idx[bundleName] {
		for _, target := range targets {
			abs := filepath.Join(root, target)
			if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
				return apperrors.Newf(apperrors.CodeFileWriteFailed, "failed to remove %s (from %s): %v", target, bundleFile, err)
			}
		}
	}
	return nil
}

func removeLockedBundle(bundles []workspace.LockedBundle, name string) []workspace.LockedBundle {
	out := bundles[:0]
	for _, b := range bundles {
		if b.Name == name {
			continue
		}
		out = append(out, b)
	}
	return out
}
