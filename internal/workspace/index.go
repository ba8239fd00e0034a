// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package workspace

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"

	"github.com/archmagece/augent/internal/apperrors"
	"github.com/archmagece/augent/internal/platform"
)

// Index is the parsed form of augent.index.yaml: bundle name to
// bundle-relative resource path to the workspace-relative target paths
// it was installed to.
type Index map[string]map[string][]string

// LoadIndex reads config_dir's augent.index.yaml. A missing file yields
// an empty Index, since it is routinely rebuilt from scratch.
func LoadIndex(configDir string) (Index, error) {
	path := filepath.Join(configDir, IndexFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Index{}, nil
		}
		return nil, apperrors.Newf(apperrors.CodeFileReadFailed, "failed to read index %s: %v", path, err)
	}

	idx := Index{}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &idx); err != nil {
			return nil, apperrors.Newf(apperrors.CodeConfigParseFailed, "failed to parse index %s: %v", path, err)
		}
	}
	return idx, nil
}

// SaveIndex atomically rewrites config_dir's augent.index.yaml.
func SaveIndex(configDir string, idx Index) error {
	data, err := yaml.Marshal(idx)
	if err != nil {
		return apperrors.Newf(apperrors.CodeConfigParseFailed, "failed to encode index: %v", err)
	}

	path := filepath.Join(configDir, IndexFile)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return apperrors.Newf(apperrors.CodeFileWriteFailed, "failed to write index: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return apperrors.Newf(apperrors.CodeFileWriteFailed, "failed to finalize index: %v", err)
	}
	return nil
}

// AddEntry records that bundleName's bundleFile was installed to target.
func (idx Index) AddEntry(bundleName, bundleFile, target string) {
	if idx[bundleName] == nil {
		idx[bundleName] = map[string][]string{}
	}
	idx[bundleName][bundleFile] = append(idx[bundleName][bundleFile], target)
}

// RemoveBundle drops every entry recorded for bundleName.
func (idx Index) RemoveBundle(bundleName string) {
	delete(idx, bundleName)
}

// Rebuild reconstructs an Index by scanning each detected platform
// directory under root for candidate files, for every bundle recorded in
// lockfile. Used when augent.index.yaml is missing or corrupted. This is
// necessarily best-effort: it tries each platform's transform rules in
// reverse, then a direct "<platform>/<type>/<file>" guess, then a couple
// of well-known extension substitutions (.md -> .mdc for rules).
func Rebuild(root string, lf *Lockfile) (Index, error) {
	loader := platform.NewLoader(root)
	platforms, err := loader.Load()
	if err != nil {
		return nil, err
	}

	var installedDirs []platform.Platform
	for _, p := range platforms {
		if _, statErr := os.Stat(p.DirectoryPath(root)); statErr == nil {
			installedDirs = append(installedDirs, p)
		}
	}

	idx := Index{}
	for _, bundle := range lf.Bundles {
		for _, file := range bundle.Files {
			for _, p := range installedDirs {
				for _, candidate := range candidateTargets(file, p) {
					abs := filepath.Join(root, candidate)
					if _, statErr := os.Stat(abs); statErr == nil {
						idx.AddEntry(bundle.Name, file, candidate)
					}
				}
			}
		}
	}
	return idx, nil
}

// candidateTargets returns every workspace-relative path bundleFile might
// have been installed to under p, trying each of p's transform rules in
// reverse, a direct <directory>/<file> guess, and the rules/*.md -> *.mdc
// substitution some platforms apply.
func candidateTargets(bundleFile string, p platform.Platform) []string {
	var out []string
	seen := map[string]bool{}
	add := func(rel string) {
		if rel != "" && !seen[rel] {
			seen[rel] = true
			out = append(out, rel)
		}
	}

	for _, rule := range p.Transforms {
		if matchesGlob(rule.From, bundleFile) {
			add(filepath.Join(p.Directory, reverseApplyTransform(rule.To, bundleFile)))
		}
	}

	parts := strings.Split(bundleFile, "/")
	if len(parts) > 0 {
		resourceType := parts[0]
		filename := parts[len(parts)-1]
		add(filepath.Join(p.Directory, resourceType, filename))

		if resourceType == "rules" && strings.HasSuffix(filename, ".md") {
			mdc := strings.TrimSuffix(filename, ".md") + ".mdc"
			add(filepath.Join(p.Directory, "rules", mdc))
		}
	}

	return out
}

func matchesGlob(pattern, path string) bool {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return pattern == path
	}
	return g.Match(path)
}

// reverseApplyTransform mirrors each "*" segment of toPattern with the
// next unconsumed segment of fromPath, and "{name}" with fromPath's file
// stem; any other segment is kept literal.
func reverseApplyTransform(toPattern, fromPath string) string {
	fromParts := strings.Split(fromPath, "/")
	patternParts := strings.Split(toPattern, "/")

	var result []string
	for _, part := range patternParts {
		switch {
		case part == "*" && len(fromParts) > 0:
			result = append(result, fromParts[0])
			fromParts = fromParts[1:]
		case part == "{name}":
			last := fromPath
			if len(fromParts) > 0 {
				last = fromParts[len(fromParts)-1]
			} else if i := strings.LastIndex(fromPath, "/"); i >= 0 {
				last = fromPath[i+1:]
			}
			if i := strings.LastIndex(last, "."); i >= 0 {
				last = last[:i]
			}
			result = append(result, last)
		default:
			result = append(result, part)
		}
	}
	return strings.Join(result, "/")
}
