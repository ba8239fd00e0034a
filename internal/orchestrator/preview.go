// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package orchestrator

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/archmagece/augent/internal/apperrors"
	"github.com/archmagece/augent/internal/installer"
	"github.com/archmagece/augent/internal/platform"
	"github.com/archmagece/augent/internal/resolver"
	"github.com/archmagece/augent/internal/workspace"
)

// previewInstall materializes what an install would write into a
// scratch directory, without touching the real workspace. The returned
// function answers workspace.ExpectedHash by looking up the same
// workspace-relative target path among the preview's output and hashing
// it, so modified-file detection can compare "what's on disk" against
// "what the install would produce" per the preservation design.
func previewInstall(bundles []resolver.ResolvedBundle, platforms []platform.Platform) (workspace.ExpectedHash, func(), error) {
	scratch, err := os.MkdirTemp("", "augent-preview-*")
	if err != nil {
		return nil, nil, apperrors.Newf(apperrors.CodeIoError, "failed to create preview scratch dir: %v", err)
	}
	cleanup := func() { _ = os.RemoveAll(scratch) }

	in := installer.New(scratch, platforms, false)
	if err := in.InstallBundles(bundles); err != nil {
		cleanup()
		return nil, nil, err
	}

	// relTarget -> absolute path under the preview scratch dir.
	byRelTarget := map[string]string{}
	for _, file := range in.InstalledFiles() {
		for _, target := range file.TargetPaths {
			rel, relErr := filepath.Rel(scratch, target)
			if relErr != nil {
				continue
			}
			byRelTarget[filepath.ToSlash(rel)] = target
		}
	}

	expected := func(_, _, targetPath string) (string, bool) {
		abs, ok := byRelTarget[strings.TrimPrefix(filepath.ToSlash(targetPath), "/")]
		if !ok {
			return "", false
		}
		hash, hashErr := workspace.HashFile(abs)
		if hashErr != nil {
			return "", false
		}
		return hash, true
	}

	return expected, cleanup, nil
}
