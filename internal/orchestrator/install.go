// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package orchestrator

import (
	"context"

	"github.com/archmagece/augent/internal/installer"
	"github.com/archmagece/augent/internal/logging"
	"github.com/archmagece/augent/internal/platform"
	"github.com/archmagece/augent/internal/resolver"
	"github.com/archmagece/augent/internal/workspace"
)

// InstallOptions configures one install call.
type InstallOptions struct {
	// Sources, if non-empty, names the bundles to install (git URL or
	// local path, one per element). Empty means "install the workspace's
	// own declared dependencies" (augent.yaml's bundles: list).
	Sources []string
	// PlatformIDs, if non-empty, restricts installation to exactly these
	// platform ids. Empty means auto-detect by scanning the workspace
	// root for each built-in platform's detection markers.
	PlatformIDs []string
	DryRun      bool
}

// InstallResult summarizes one completed install.
type InstallResult struct {
	Platforms      []platform.Platform
	Installed      map[string]installer.InstalledFile
	PreservedFiles int
}

// Install resolves opts.Sources (or the workspace's own dependencies),
// selects target platforms, preserves any user-modified files that a
// reinstall would otherwise clobber, writes every resource, and
// atomically rewrites the lockfile and index; the manifest (augent.yaml)
// is not modified.
func Install(ctx context.Context, ws *workspace.Workspace, opts InstallOptions) (*InstallResult, error) {
	logging.Info("starting install", "workspace", ws.Root, "sources", opts.Sources, "dryRun", opts.DryRun)

	cfg, err := workspace.LoadBundleConfig(ws.ConfigDir)
	if err != nil {
		return nil, err
	}

	platforms, err := platform.ResolvePlatforms(ws.Root, opts.PlatformIDs)
	if err != nil {
		return nil, err
	}

	resolved, err := resolveBundles(ctx, ws, cfg, opts.Sources)
	if err != nil {
		return nil, err
	}

	if opts.DryRun {
		in := installer.New(ws.Root, platforms, true)
		if err := in.InstallBundles(resolved); err != nil {
			return nil, err
		}
		return &InstallResult{Platforms: platforms, Installed: in.InstalledFiles()}, nil
	}

	idx, err := workspace.LoadIndex(ws.ConfigDir)
	if err != nil {
		return nil, err
	}

	modified, cleanup, err := detectModified(ws, idx, resolved, platforms)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	scratch, err := preserveScratchDir(ws)
	if err != nil {
		return nil, err
	}
	if err := workspace.PreserveModifiedFiles(ws.Root, scratch, modified); err != nil {
		return nil, err
	}

	in := installer.New(ws.Root, platforms, false)
	if err := in.InstallBundles(resolved); err != nil {
		return nil, err
	}

	if err := workspace.RestoreModifiedFiles(ws.Root, scratch, modified); err != nil {
		return nil, err
	}

	if err := commitWorkspaceState(ws, resolved, in); err != nil {
		return nil, err
	}

	return &InstallResult{
		Platforms:      platforms,
		Installed:      in.InstalledFiles(),
		PreservedFiles: len(modified),
	}, nil
}

// detectModified previews the install into a scratch directory and
// compares its output against the currently installed files recorded in
// idx, returning the subset whose on-disk content has diverged.
func detectModified(ws *workspace.Workspace, idx workspace.Index, resolved []resolver.ResolvedBundle, platforms []platform.Platform) ([]workspace.ModifiedFile, func(), error) {
	expected, cleanup, err := previewInstall(resolved, platforms)
	if err != nil {
		return nil, func() {}, err
	}
	modified, err := workspace.DetectModifiedFiles(ws.Root, idx, expected)
	if err != nil {
		cleanup()
		return nil, func() {}, err
	}
	return modified, cleanup, nil
}

// commitWorkspaceState rewrites the lockfile and index to reflect a
// successful install; the manifest itself is left untouched here (it is
// only rewritten by explicit add/remove-dependency operations).
func commitWorkspaceState(ws *workspace.Workspace, resolved []resolver.ResolvedBundle, in *installer.Installer) error {
	if err := ws.EnsureConfigDir(); err != nil {
		return err
	}

	name := ws.Name()

	lf := &workspace.Lockfile{Name: name}
	idx := workspace.Index{}

	for _, bundle := range resolved {
		locked, err := buildLockedBundle(bundle)
		if err != nil {
			return err
		}
		lf.Bundles = append(lf.Bundles, locked)

		for bundleFile, installed := range in.InstalledFiles() {
			if installed.BundlePath != bundle.Name {
				continue
			}
			for _, target := range installed.TargetPaths {
				rel, relErr := relativeToRoot(ws.Root, target)
				if relErr != nil {
					return relErr
				}
				idx.AddEntry(bundle.Name, bundleFile, rel)
			}
		}
	}

	lf.Reorganize(name)

	if err := workspace.SaveLockfile(ws.ConfigDir, lf, name); err != nil {
		return err
	}
	return workspace.SaveIndex(ws.ConfigDir, idx)
}
