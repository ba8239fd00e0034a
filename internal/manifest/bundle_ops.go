// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package manifest

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/archmagece/augent/internal/apperrors"
	"github.com/archmagece/augent/internal/gitsafety"
)

// defaultBranchRefs are elided on serialization since they add no
// information beyond "whatever the default branch currently is".
var defaultBranchRefs = map[string]bool{"main": true, "master": true}

// ToYAML serializes b with name substituted for workspaceName, a blank
// line after the name field, and a blank line between bundle entries —
// matching the hand-formatted augent.yaml the rest of the ecosystem
// produces and diffs cleanly against.
func (b *Bundle) ToYAML(workspaceName string) (string, error) {
	clean := *b
	clean.Name = workspaceName
	clean.Bundles = make([]Dependency, len(b.Bundles))
	for i, dep := range b.Bundles {
		if defaultBranchRefs[dep.Ref] {
			dep.Ref = ""
		}
		clean.Bundles[i] = dep
	}

	data, err := yaml.Marshal(&clean)
	if err != nil {
		return "", apperrors.Newf(apperrors.CodeConfigParseFailed, "failed to encode manifest: %v", err)
	}

	return formatBundleYAML(string(data)), nil
}

// formatBundleYAML inserts the readability blank lines described above
// into yaml.Marshal's compact output.
func formatBundleYAML(raw string) string {
	lines := strings.Split(strings.TrimRight(raw, "\n"), "\n")

	var out []string
	inBundles := false
	for i, line := range lines {
		out = append(out, line)
		if i == 0 && strings.HasPrefix(line, "name:") {
			out = append(out, "")
			continue
		}
		if strings.TrimSpace(line) == "bundles:" {
			inBundles = true
			continue
		}
		if inBundles && strings.HasPrefix(strings.TrimSpace(line), "- name:") && i > 0 {
			prev := lines[i-1]
			if strings.HasPrefix(prev, "  ") && strings.TrimSpace(prev) != "bundles:" && !strings.HasPrefix(strings.TrimSpace(prev), "- name:") {
				out = append(out[:len(out)-1], "", line)
			}
		}
	}
	return strings.Join(out, "\n") + "\n"
}

// Reorganize places git dependencies first (preserving their relative
// order) followed by local (path-only) dependencies.
func (b *Bundle) Reorganize() {
	var gitDeps, localDeps []Dependency
	for _, dep := range b.Bundles {
		if dep.Git != "" {
			gitDeps = append(gitDeps, dep)
		} else {
			localDeps = append(localDeps, dep)
		}
	}
	b.Bundles = append(gitDeps, localDeps...)
}

// AddDependency inserts dep, keeping git dependencies before local ones
// and preserving existing git-dependency order.
func (b *Bundle) AddDependency(dep Dependency) {
	if dep.Git == "" {
		b.Bundles = append(b.Bundles, dep)
		return
	}
	for i, existing := range b.Bundles {
		if existing.Git == "" {
			b.Bundles = append(b.Bundles[:i:i], append([]Dependency{dep}, b.Bundles[i:]...)...)
			return
		}
	}
	b.Bundles = append(b.Bundles, dep)
}

// HasDependency reports whether a dependency named name is declared.
func (b *Bundle) HasDependency(name string) bool {
	for _, dep := range b.Bundles {
		if dep.Name == name {
			return true
		}
	}
	return false
}

// RemoveDependency removes the dependency matching name, either by its
// bare name or by "name/path" for subdirectory bundles, and reports
// whether one was found.
func (b *Bundle) RemoveDependency(name string) (Dependency, bool) {
	for i, dep := range b.Bundles {
		if dep.Name == name || (dep.Path != "" && dep.Name+"/"+dep.Path == name) {
			removed := dep
			b.Bundles = append(b.Bundles[:i], b.Bundles[i+1:]...)
			return removed, true
		}
	}
	return Dependency{}, false
}

// IsLocal reports whether dep is a same-repo path dependency.
func (d Dependency) IsLocal() bool { return d.Path != "" && d.Git == "" }

// IsGit reports whether dep is a git-sourced dependency.
func (d Dependency) IsGit() bool { return d.Git != "" }

// Validate checks that dep carries a name and exactly one source kind,
// and that the git URL, ref, or local path it names is well-formed.
func (d Dependency) Validate() error {
	if d.Name == "" {
		return apperrors.New(apperrors.CodeBundleValidationFailed, "dependency name cannot be empty")
	}
	if d.Path == "" && d.Git == "" {
		return apperrors.Newf(apperrors.CodeBundleValidationFailed,
			"dependency %q must have either 'path' or 'git' specified", d.Name)
	}
	if d.IsGit() {
		if err := gitsafety.ValidateURL(d.Git); err != nil {
			return err
		}
		if err := gitsafety.ValidateRef(d.Ref); err != nil {
			return err
		}
	}
	if d.IsLocal() {
		if err := gitsafety.ValidatePath(d.Path); err != nil {
			return err
		}
	}
	return nil
}

// ReorderDependencies rewrites b.Bundles to match lockfileOrder (bundle
// names in lockfile resolution order), appending any dependency not
// present in lockfileOrder at the end.
func (b *Bundle) ReorderDependencies(lockfileOrder []string) {
	byName := make(map[string]Dependency, len(b.Bundles))
	for _, dep := range b.Bundles {
		byName[dep.Name] = dep
	}

	reordered := make([]Dependency, 0, len(b.Bundles))
	seen := make(map[string]bool, len(b.Bundles))
	for _, name := range lockfileOrder {
		if dep, ok := byName[name]; ok {
			reordered = append(reordered, dep)
			seen[name] = true
		}
	}
	for _, dep := range b.Bundles {
		if !seen[dep.Name] {
			reordered = append(reordered, dep)
		}
	}
	b.Bundles = reordered
}
