// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package resolver

import (
	"os"
	"path/filepath"

	"github.com/archmagece/augent/internal/apperrors"
	"github.com/archmagece/augent/internal/manifest"
)

func resolveLocal(path, workspaceRoot string, dep *manifest.Dependency, resolutionStack []string) (ResolvedBundle, error) {
	fullPath := path
	if !filepath.IsAbs(path) {
		fullPath = filepath.Join(workspaceRoot, path)
	}

	if err := validateLocalBundlePath(fullPath, path, dep != nil, workspaceRoot); err != nil {
		return ResolvedBundle{}, err
	}

	if !statIsDir(fullPath) {
		return ResolvedBundle{}, apperrors.Newf(apperrors.CodeBundleNotFound, "bundle not found at path %q", path)
	}

	name := filepath.Base(path)
	if dep != nil {
		name = dep.Name
	}

	if err := checkCycle(name, resolutionStack); err != nil {
		return ResolvedBundle{}, err
	}

	m, err := loadBundleManifest(fullPath)
	if err != nil {
		return ResolvedBundle{}, err
	}

	return ResolvedBundle{
		Name:       name,
		Dependency: dep,
		SourcePath: fullPath,
		Manifest:   m,
	}, nil
}

// loadBundleManifest loads augent.yaml from dir if present; a missing
// file is not an error, mirroring load_bundle_config's Option semantics.
func loadBundleManifest(dir string) (*manifest.Bundle, error) {
	path := filepath.Join(dir, manifest.FileName)
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}
	m, err := manifest.LoadBundle(path)
	if err != nil {
		return nil, err
	}
	return m, nil
}
