// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package resolver implements recursive bundle resolution and the
// topological sort that turns a declared source list into an ordered
// installation plan (C5).
package resolver

import (
	"context"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/archmagece/augent/internal/apperrors"
	"github.com/archmagece/augent/internal/cache"
	"github.com/archmagece/augent/internal/logging"
	"github.com/archmagece/augent/internal/manifest"
	"github.com/archmagece/augent/internal/source"
)

// ResolvedBundle is the in-memory record produced for each bundle
// reached during resolution, local or git-sourced.
type ResolvedBundle struct {
	Name         string
	Dependency   *manifest.Dependency
	SourcePath   string
	ResolvedSHA  string
	ResolvedRef  string
	GitSource    *source.Git
	Manifest     *manifest.Bundle
}

// Operation coordinates one resolution pass: parsing sources, recursing
// into declared dependencies, and producing a topologically sorted
// result. Not safe for concurrent use; create one per resolve call.
type Operation struct {
	workspaceRoot    string
	resolved         map[string]ResolvedBundle
	resolutionOrder  []string
	resolutionStack  []string
}

// New creates an Operation rooted at workspaceRoot, the directory
// relative-path dependency references are resolved against.
func New(workspaceRoot string) *Operation {
	return &Operation{
		workspaceRoot: workspaceRoot,
		resolved:      make(map[string]ResolvedBundle),
	}
}

// Resolve resolves a single top-level source. When skipDeps is true the
// bundle's own declared dependencies are not followed and the result is
// that one bundle; otherwise the full transitive closure is returned in
// topological order.
func (op *Operation) Resolve(ctx context.Context, src string, skipDeps bool) ([]ResolvedBundle, error) {
	op.resolutionOrder = nil

	parsed, err := source.Parse(src)
	if err != nil {
		return nil, err
	}
	bundle, err := op.resolveSource(ctx, parsed, nil, skipDeps)
	if err != nil {
		return nil, err
	}
	if skipDeps {
		return []ResolvedBundle{bundle}, nil
	}
	return op.topologicalSort()
}

// ResolveMany resolves every source in srcs and returns their full
// transitive closure in a single topological order.
func (op *Operation) ResolveMany(ctx context.Context, srcs []string) ([]ResolvedBundle, error) {
	op.resolutionOrder = nil
	op.resolved = make(map[string]ResolvedBundle)

	for _, s := range srcs {
		parsed, err := source.Parse(s)
		if err != nil {
			return nil, err
		}
		if _, err := op.resolveSource(ctx, parsed, nil, false); err != nil {
			return nil, err
		}
	}
	return op.topologicalSort()
}

func (op *Operation) resolveSource(ctx context.Context, src source.Source, dep *manifest.Dependency, skipDeps bool) (ResolvedBundle, error) {
	var (
		resolved ResolvedBundle
		err      error
	)
	if src.IsGit {
		resolved, err = resolveGit(ctx, src.Git, dep, op.resolutionStack, op.resolved)
	} else {
		resolved, err = resolveLocal(src.Dir, op.workspaceRoot, dep, op.resolutionStack)
	}
	if err != nil {
		return ResolvedBundle{}, err
	}

	op.trackResolution(ctx, resolved, dep == nil, skipDeps)
	return resolved, nil
}

func (op *Operation) trackResolution(ctx context.Context, bundle ResolvedBundle, isTopLevel, skipDeps bool) {
	name := bundle.Name

	op.resolutionStack = append(op.resolutionStack, name)
	if isTopLevel {
		op.resolutionOrder = append(op.resolutionOrder, name)
	}

	if !skipDeps && bundle.Manifest != nil && bundle.ResolvedSHA == "" {
		contextPath := op.workspaceRoot
		if bundle.GitSource != nil {
			contextPath = bundle.SourcePath
		}
		prefetchSiblingDependencies(ctx, bundle.Manifest.Bundles)
		for i := range bundle.Manifest.Bundles {
			_, _ = op.resolveDependencyWithContext(ctx, &bundle.Manifest.Bundles[i], contextPath)
		}
	}

	op.resolutionStack = op.resolutionStack[:len(op.resolutionStack)-1]
	op.resolved[name] = bundle
}

// prefetchSiblingDependencies warms the cache for every git-sourced
// dependency in deps concurrently before the sequential resolution pass
// below reaches them. Siblings are independent by construction (a
// manifest can't declare a dependency on itself), so there is no
// shared resolution state to race on here; CacheBundle's own index is
// mutex-guarded and the git adapter's rate limiter still throttles the
// underlying clones. Errors are swallowed: the sequential pass that
// follows re-does the work and is the one that reports failures.
func prefetchSiblingDependencies(ctx context.Context, deps []manifest.Dependency) {
	var gitDeps []manifest.Dependency
	for _, d := range deps {
		if d.Git != "" {
			gitDeps = append(gitDeps, d)
		}
	}
	if len(gitDeps) < 2 {
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, d := range gitDeps {
		d := d
		g.Go(func() error {
			if _, _, err := cache.CacheBundle(gctx, d.Git, d.Ref); err != nil {
				logging.Debug("sibling pre-fetch failed", "git", d.Git, "ref", d.Ref, "err", err)
			}
			return nil
		})
	}
	_ = g.Wait()
}

func (op *Operation) resolveDependencyWithContext(ctx context.Context, dep *manifest.Dependency, contextPath string) (ResolvedBundle, error) {
	var src source.Source
	switch {
	case dep.Git != "":
		src = source.Source{IsGit: true, Git: source.Git{URL: dep.Git, Path: dep.Path, Ref: dep.Ref}}
	case dep.Path != "":
		p := dep.Path
		if !filepath.IsAbs(p) {
			p = filepath.Join(contextPath, p)
		}
		src = source.Source{Dir: p}
	default:
		return ResolvedBundle{}, apperrors.Newf(apperrors.CodeBundleValidationFailed,
			"dependency %q has neither 'git' nor 'path' specified", dep.Name)
	}

	return op.resolveSource(ctx, src, dep, false)
}

func (op *Operation) topologicalSort() ([]ResolvedBundle, error) {
	deps := buildDependencyList(op.resolved)
	return TopologicalSort(deps, op.resolved, op.resolutionOrder)
}

// statIsDir reports whether path exists and is a directory.
func statIsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
