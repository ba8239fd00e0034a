// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package workspace

import (
	"os"
	"path/filepath"

	"github.com/archmagece/augent/internal/apperrors"
	"github.com/archmagece/augent/internal/manifest"
)

// LoadBundleConfig reads configDir's augent.yaml. Since the manifest is
// optional, a missing file yields an empty Bundle rather than an error;
// callers that need a name fill it in from Workspace.Name().
func LoadBundleConfig(configDir string) (*manifest.Bundle, error) {
	path := filepath.Join(configDir, BundleConfigFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &manifest.Bundle{}, nil
	}

	b, err := manifest.LoadBundle(path)
	if err != nil {
		return nil, apperrors.Newf(apperrors.CodeConfigParseFailed, "failed to load %s: %v", path, err)
	}
	return b, nil
}

// SaveBundleConfig writes b to configDir's augent.yaml with workspaceName
// substituted for the name field.
func SaveBundleConfig(configDir string, b *manifest.Bundle, workspaceName string) error {
	return manifest.SaveBundle(filepath.Join(configDir, BundleConfigFile), b, workspaceName)
}
