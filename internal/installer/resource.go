// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package installer implements the installation pipeline (discovery,
// platform format conversion, and file writing) that turns a resolved
// bundle's universal resources into files under a workspace's
// platform-specific directories.
package installer

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/archmagece/augent/internal/apperrors"
)

// Resource is a single file discovered inside a bundle, classified by the
// universal resource directory it lives under.
type Resource struct {
	AbsolutePath string
	BundlePath   string // relative to the bundle root
	ResourceType string
}

// resourceTypeDirs maps a bundle-root directory name to the resource type
// installed from it.
var resourceTypeDirs = map[string]string{
	"commands":    "command",
	"rules":       "rule",
	"agents":      "agent",
	"skills":      "skill",
	"hooks":       "hook",
	"mcp-servers": "mcp",
}

// DiscoverResources walks bundlePath and returns every installable
// resource file: anything under a recognized resource directory, plus a
// root-level AGENTS.md and mcp.json/mcp.jsonc.
func DiscoverResources(bundlePath string) ([]Resource, error) {
	var resources []Resource

	entries, err := os.ReadDir(bundlePath)
	if err != nil {
		return nil, apperrors.Newf(apperrors.CodeFileReadFailed, "read %s: %v", bundlePath, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			resourceType, ok := resourceTypeDirs[name]
			if !ok {
				continue
			}
			found, err := walkResourceDir(bundlePath, name, resourceType)
			if err != nil {
				return nil, err
			}
			resources = append(resources, found...)
			continue
		}

		if name == "AGENTS.md" {
			resources = append(resources, Resource{
				AbsolutePath: filepath.Join(bundlePath, name),
				BundlePath:   name,
				ResourceType: "agent",
			})
		}
		if name == "mcp.json" || name == "mcp.jsonc" {
			resources = append(resources, Resource{
				AbsolutePath: filepath.Join(bundlePath, name),
				BundlePath:   name,
				ResourceType: "mcp",
			})
		}
	}

	sort.Slice(resources, func(i, j int) bool { return resources[i].BundlePath < resources[j].BundlePath })
	return resources, nil
}

func walkResourceDir(bundlePath, dirName, resourceType string) ([]Resource, error) {
	root := filepath.Join(bundlePath, dirName)
	var out []Resource

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(bundlePath, path)
		if err != nil {
			return err
		}
		out = append(out, Resource{
			AbsolutePath: path,
			BundlePath:   filepath.ToSlash(rel),
			ResourceType: resourceType,
		})
		return nil
	})
	if err != nil {
		return nil, apperrors.Newf(apperrors.CodeFileReadFailed, "walk %s: %v", root, err)
	}
	return out, nil
}

// LeafSkillDirs returns the set of skill directories (relative to the
// bundle root, slash-separated) that directly contain a SKILL.md and are
// not themselves nested inside another skill directory. These are the
// directories the {name} path template resolves against.
func LeafSkillDirs(resources []Resource) map[string]bool {
	skillDirs := map[string]bool{}
	for _, r := range resources {
		if r.ResourceType != "skill" {
			continue
		}
		if filepath.Base(r.BundlePath) == "SKILL.md" {
			skillDirs[filepath.ToSlash(filepath.Dir(r.BundlePath))] = true
		}
	}

	leaves := map[string]bool{}
	for dir := range skillDirs {
		nested := false
		for other := range skillDirs {
			if other != dir && strings.HasPrefix(dir, other+"/") {
				nested = true
				break
			}
		}
		if !nested {
			leaves[dir] = true
		}
	}
	return leaves
}

// FilterSkillsResources drops the redundant SKILL.md marker of a skill
// nested inside another skill's directory: its sibling files still
// install as part of the outer (leaf) skill's tree, but the nested
// marker itself would otherwise make the installer treat it as a second,
// independent skill.
func FilterSkillsResources(resources []Resource) []Resource {
	leaves := LeafSkillDirs(resources)

	out := make([]Resource, 0, len(resources))
	for _, r := range resources {
		if r.ResourceType == "skill" && filepath.Base(r.BundlePath) == "SKILL.md" {
			dir := filepath.ToSlash(filepath.Dir(r.BundlePath))
			if !leaves[dir] {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}
