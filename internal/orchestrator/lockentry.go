// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package orchestrator

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"sort"

	"github.com/archmagece/augent/internal/apperrors"
	"github.com/archmagece/augent/internal/installer"
	"github.com/archmagece/augent/internal/resolver"
	"github.com/archmagece/augent/internal/workspace"
)

// buildLockedBundle turns a resolved bundle into the lockfile record for
// it: its source (git pinned to a SHA, or a local directory), the list
// of bundle-relative files it contributes, and a content hash over all
// of them.
func buildLockedBundle(bundle resolver.ResolvedBundle) (workspace.LockedBundle, error) {
	resources, err := installer.DiscoverResources(bundle.SourcePath)
	if err != nil {
		return workspace.LockedBundle{}, err
	}

	files := make([]string, len(resources))
	for i, r := range resources {
		files[i] = r.BundlePath
	}
	sort.Strings(files)

	hash, err := hashResources(resources)
	if err != nil {
		return workspace.LockedBundle{}, err
	}

	source := workspace.LockSource{Hash: hash}
	if bundle.GitSource != nil {
		source.Type = "git"
		source.URL = bundle.GitSource.URL
		source.SHA = bundle.ResolvedSHA
		source.Path = bundle.GitSource.Path
		source.Ref = bundle.GitSource.Ref
	} else {
		source.Type = "dir"
		source.Path = bundle.SourcePath
	}

	return workspace.LockedBundle{
		Name:   bundle.Name,
		Source: source,
		Files:  files,
	}, nil
}

// hashResources computes the lockfile's per-bundle content hash: sha256
// over every resource's (bundle-relative path, content bytes) pair,
// sorted by path so the digest is independent of discovery order.
func hashResources(resources []installer.Resource) (string, error) {
	sorted := make([]installer.Resource, len(resources))
	copy(sorted, resources)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].BundlePath < sorted[j].BundlePath })

	h := sha256.New()
	for _, r := range sorted {
		data, err := os.ReadFile(r.AbsolutePath)
		if err != nil {
			return "", apperrors.Newf(apperrors.CodeFileReadFailed, "failed to hash %s: %v", r.AbsolutePath, err)
		}
		h.Write([]byte(r.BundlePath))
		h.Write([]byte{0})
		h.Write(data)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
