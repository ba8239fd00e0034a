// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package installer

import (
	"github.com/archmagece/augent/internal/convert"
	"github.com/archmagece/augent/internal/platform"
	"github.com/archmagece/augent/internal/resolver"
)

// InstalledFile records every target path a single bundle resource was
// installed to, across all target platforms.
type InstalledFile struct {
	BundlePath   string
	ResourceType string
	TargetPaths  []string
}

// Installer converts a resolved bundle's universal resources into files
// under a workspace, for every target platform, and tracks what it wrote.
type Installer struct {
	workspaceRoot  string
	platforms      []platform.Platform
	registry       *convert.Registry
	installedFiles map[string]InstalledFile
	dryRun         bool
}

// New creates an Installer targeting workspaceRoot and the given
// platforms, with all built-in format converters registered.
func New(workspaceRoot string, platforms []platform.Platform, dryRun bool) *Installer {
	registry := convert.NewRegistry()
	registry.RegisterBuiltins()
	return &Installer{
		workspaceRoot:  workspaceRoot,
		platforms:      platforms,
		registry:       registry,
		installedFiles: map[string]InstalledFile{},
		dryRun:         dryRun,
	}
}

// InstallBundle discovers and installs every resource in bundle's source
// directory, across every configured platform. In dry-run mode nothing is
// written and InstalledFiles stays as it was before the call.
func (in *Installer) InstallBundle(bundle resolver.ResolvedBundle) error {
	resources, err := DiscoverResources(bundle.SourcePath)
	if err != nil {
		return err
	}
	resources = FilterSkillsResources(resources)

	if in.dryRun {
		return nil
	}

	leafSkillDirs := LeafSkillDirs(resources)
	transformer := platform.NewTransformerWithLeafSkillDirs(leafSkillDirs)

	for _, resource := range resources {
		for _, p := range in.platforms {
			if err := in.installResourceForPlatform(transformer, resource, p, bundle); err != nil {
				return err
			}
		}
	}
	return nil
}

func (in *Installer) installResourceForPlatform(transformer *platform.Transformer, resource Resource, p platform.Platform, bundle resolver.ResolvedBundle) error {
	result := transformer.Transform(resource.BundlePath, p, in.workspaceRoot)

	if err := CopyFile(resource.AbsolutePath, result.TargetPath, in.platforms, in.workspaceRoot, in.registry); err != nil {
		return err
	}

	key := resource.BundlePath
	entry, exists := in.installedFiles[key]
	if !exists {
		entry = InstalledFile{BundlePath: bundle.Name, ResourceType: resource.ResourceType}
	}
	entry.TargetPaths = append(entry.TargetPaths, result.TargetPath)
	in.installedFiles[key] = entry

	return nil
}

// InstallBundles installs every bundle in order, stopping at the first error.
func (in *Installer) InstallBundles(bundles []resolver.ResolvedBundle) error {
	for _, bundle := range bundles {
		if err := in.InstallBundle(bundle); err != nil {
			return err
		}
	}
	return nil
}

// InstalledFiles returns every resource installed so far, keyed by its
// bundle-relative path.
func (in *Installer) InstalledFiles() map[string]InstalledFile {
	return in.installedFiles
}
