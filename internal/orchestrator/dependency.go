// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package orchestrator

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/archmagece/augent/internal/apperrors"
	"github.com/archmagece/augent/internal/cache"
	"github.com/archmagece/augent/internal/manifest"
	"github.com/archmagece/augent/internal/workspace"
)

// buildDependencyMap maps each locked git bundle to the names of bundles
// it itself declares as dependencies, read from its cached augent.yaml.
// Directory-sourced bundles never carry one here (only git bundles are
// fetched into the cache), so they're simply absent from the map.
func buildDependencyMap(lf *workspace.Lockfile) (map[string][]string, error) {
	deps := map[string][]string{}

	for _, locked := range lf.Bundles {
		configPath, ok := lockedBundleConfigPath(locked)
		if !ok {
			continue
		}
		if _, err := os.Stat(configPath); err != nil {
			continue
		}

		cfg, err := manifest.LoadBundle(configPath)
		if err != nil {
			return nil, err
		}
		if len(cfg.Bundles) == 0 {
			continue
		}

		names := make([]string, len(cfg.Bundles))
		for i, d := range cfg.Bundles {
			names[i] = d.Name
		}
		deps[locked.Name] = names
	}

	return deps, nil
}

// lockedBundleConfigPath returns the path to a git-sourced locked
// bundle's cached augent.yaml, or ok=false for a directory source (the
// workspace's own augent.yaml already governs those).
func lockedBundleConfigPath(locked workspace.LockedBundle) (string, bool) {
	if locked.Source.Type != "git" {
		return "", false
	}
	entryPath, err := cache.RepoCacheEntryPath(locked.Source.URL, locked.Source.SHA)
	if err != nil {
		return "", false
	}
	return filepath.Join(cache.EntryResourcesPath(entryPath), manifest.FileName), true
}

// checkDependents fails with CircularDependencyError (used here to mean
// "has dependents") if any other locked bundle declares name as a
// dependency, listing the chain for the error message.
func checkDependents(name string, deps map[string][]string) error {
	var dependents []string
	for parent, names := range deps {
		if parent == name {
			continue
		}
		for _, n := range names {
			if n == name {
				dependents = append(dependents, parent)
				break
			}
		}
	}
	if len(dependents) == 0 {
		return nil
	}
	sort.Strings(dependents)

	chain := make([]string, 0, len(dependents)+1)
	chain = append(chain, name)
	chain = append(chain, dependents...)
	return &apperrors.CircularDependencyError{Chain: chain}
}
