// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package orchestrator wires resolution (C5), platform selection (C6),
// installation (C7), and workspace state (C8) into the install and
// uninstall flows (C9).
package orchestrator

import (
	"context"

	"github.com/archmagece/augent/internal/apperrors"
	"github.com/archmagece/augent/internal/manifest"
	"github.com/archmagece/augent/internal/resolver"
	"github.com/archmagece/augent/internal/workspace"
)

// resolveBundles resolves the bundles to install: explicit sources if
// given, otherwise every dependency declared in the workspace's own
// augent.yaml.
func resolveBundles(ctx context.Context, ws *workspace.Workspace, cfg *manifest.Bundle, sources []string) ([]resolver.ResolvedBundle, error) {
	op := resolver.New(ws.Root)

	if len(sources) > 0 {
		return op.ResolveMany(ctx, sources)
	}
	return resolveWorkspaceDependencies(ctx, op, cfg)
}

// resolveWorkspaceDependencies resolves every bundle declared in the
// workspace manifest's bundles: list, one source string per dependency.
func resolveWorkspaceDependencies(ctx context.Context, op *resolver.Operation, cfg *manifest.Bundle) ([]resolver.ResolvedBundle, error) {
	srcs := make([]string, 0, len(cfg.Bundles))
	for _, dep := range cfg.Bundles {
		src, err := dependencySource(dep)
		if err != nil {
			return nil, err
		}
		srcs = append(srcs, src)
	}
	if len(srcs) == 0 {
		return nil, nil
	}
	return op.ResolveMany(ctx, srcs)
}

// dependencySource turns a manifest dependency back into a source
// specifier string the resolver can parse (git URL with optional
// "#ref", or a bare local path).
func dependencySource(dep manifest.Dependency) (string, error) {
	if err := dep.Validate(); err != nil {
		return "", err
	}

	switch {
	case dep.Git != "":
		if dep.Ref != "" {
			return dep.Git + "#" + dep.Ref, nil
		}
		return dep.Git, nil
	case dep.Path != "":
		return dep.Path, nil
	default:
		return "", apperrors.Newf(apperrors.CodeBundleValidationFailed,
			"dependency %q has neither 'git' nor 'path' specified", dep.Name)
	}
}
