// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package resolver

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/archmagece/augent/internal/apperrors"
	"github.com/archmagece/augent/internal/cache"
	"github.com/archmagece/augent/internal/logging"
	"github.com/archmagece/augent/internal/manifest"
	"github.com/archmagece/augent/internal/source"
)

func resolveGit(ctx context.Context, git source.Git, dep *manifest.Dependency, resolutionStack []string, resolved map[string]ResolvedBundle) (ResolvedBundle, error) {
	logging.Debug("resolving git source", "url", git.URL, "ref", git.Ref, "path", git.Path)

	sha, resources, err := cache.CacheBundle(ctx, git.URL, git.Ref)
	if err != nil {
		return ResolvedBundle{}, err
	}

	logging.Debug("resolved git source", "url", git.URL, "sha", sha)

	contentPath := resources
	if git.Path != "" {
		contentPath = filepath.Join(resources, git.Path)
	}
	if !statIsDir(contentPath) {
		return ResolvedBundle{}, apperrors.Newf(apperrors.CodeBundleNotFound,
			"bundle %q not found in %s", git.Path, git.URL)
	}

	name := determineBundleName(git, dep)

	if err := checkCycle(name, resolutionStack); err != nil {
		return ResolvedBundle{}, err
	}

	if existing, ok := resolved[name]; ok && existing.ResolvedSHA == sha {
		return existing, nil
	}

	return ResolvedBundle{
		Name:        name,
		Dependency:  dep,
		SourcePath:  contentPath,
		ResolvedSHA: sha,
		GitSource:   &source.Git{URL: git.URL, Path: git.Path, Ref: git.Ref, ResolvedSHA: sha},
	}, nil
}

// determineBundleName derives a git bundle's name per §3's naming
// rules: an explicit dependency name wins; otherwise it is built from
// the repo's "@owner/repo" base plus any subpath.
func determineBundleName(git source.Git, dep *manifest.Dependency) string {
	base := cache.RepoNameFromURL(git.URL)

	if dep != nil {
		return dep.Name
	}
	switch {
	case git.Path == "":
		return base
	case strings.HasPrefix(git.Path, "$claudeplugin/"):
		return base + "/" + strings.TrimPrefix(git.Path, "$claudeplugin/")
	default:
		return base + ":" + git.Path
	}
}
