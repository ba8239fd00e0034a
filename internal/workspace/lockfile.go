// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package workspace

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/archmagece/augent/internal/apperrors"
)

// LockSource is one locked bundle's resolved origin: either a git
// repository pinned to a commit SHA, or a local directory. Exactly the
// fields relevant to Type are populated; the rest are omitted on write.
type LockSource struct {
	Type string `json:"type"` // "git" or "dir"
	URL  string `json:"url,omitempty"`
	SHA  string `json:"sha,omitempty"`
	Path string `json:"path,omitempty"`
	Ref  string `json:"ref,omitempty"`
	Hash string `json:"hash"`
}

// LockedBundle is one resolved bundle recorded in the lockfile.
type LockedBundle struct {
	Name   string     `json:"name"`
	Source LockSource `json:"source"`
	Files  []string   `json:"files"`
}

// Lockfile is the parsed form of augent.lock: the workspace name and its
// resolved bundles in installation order.
type Lockfile struct {
	Name    string         `json:"name"`
	Bundles []LockedBundle `json:"bundles"`
}

// LoadLockfile reads config_dir's augent.lock. A missing file yields an
// empty Lockfile, since the lockfile is regenerated on every install.
func LoadLockfile(configDir string) (*Lockfile, error) {
	path := filepath.Join(configDir, LockfileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Lockfile{}, nil
		}
		return nil, apperrors.Newf(apperrors.CodeFileReadFailed, "failed to read lockfile %s: %v", path, err)
	}

	lf := &Lockfile{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, lf); err != nil {
			return nil, apperrors.Newf(apperrors.CodeConfigParseFailed, "failed to parse lockfile %s: %v", path, err)
		}
	}
	return lf, nil
}

// SaveLockfile atomically rewrites config_dir's augent.lock (temp file +
// rename), so concurrent readers never observe a partial write.
func SaveLockfile(configDir string, lf *Lockfile, workspaceName string) error {
	clone := *lf
	clone.Name = workspaceName

	data, err := json.MarshalIndent(&clone, "", "  ")
	if err != nil {
		return apperrors.Newf(apperrors.CodeConfigParseFailed, "failed to encode lockfile: %v", err)
	}

	path := filepath.Join(configDir, LockfileName)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return apperrors.Newf(apperrors.CodeFileWriteFailed, "failed to write lockfile: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return apperrors.Newf(apperrors.CodeFileWriteFailed, "failed to finalize lockfile: %v", err)
	}
	return nil
}

// Reorganize orders git-sourced bundles first (preserving their relative
// order), then directory-sourced bundles, matching the manifest's own
// dependency ordering so the two files stay easy to diff side by side.
// If selfName names a bundle present in the lockfile (the workspace's
// own resources, installed as if they were a bundle), it is moved to the
// very end regardless of source type.
func (lf *Lockfile) Reorganize(selfName string) {
	var self *LockedBundle
	var gitBundles, dirBundles []LockedBundle

	for _, b := range lf.Bundles {
		if selfName != "" && b.Name == selfName {
			bundle := b
			self = &bundle
			continue
		}
		if b.Source.Type == "git" {
			gitBundles = append(gitBundles, b)
		} else {
			dirBundles = append(dirBundles, b)
		}
	}

	out := append(gitBundles, dirBundles...)
	if self != nil {
		out = append(out, *self)
	}
	lf.Bundles = out
}

// Names returns each locked bundle's name in lockfile order.
func (lf *Lockfile) Names() []string {
	names := make([]string, len(lf.Bundles))
	for i, b := range lf.Bundles {
		names[i] = b.Name
	}
	return names
}

// Find looks up a locked bundle by name.
func (lf *Lockfile) Find(name string) (LockedBundle, bool) {
	for _, b := range lf.Bundles {
		if b.Name == name {
			return b, true
		}
	}
	return LockedBundle{}, false
}

// HasDependent reports whether any locked bundle other than the one
// named exclude declares name as a dependency, per its originating
// manifest's bundles list recorded at resolution time. Since the
// lockfile itself doesn't carry dependency edges, callers pass the
// resolved dependency graph's edge list; this helper just checks
// membership for the "has dependents" uninstall guard.
func HasDependent(dependents map[string][]string, name, exclude string) (string, bool) {
	for parent, deps := range dependents {
		if parent == exclude {
			continue
		}
		for _, d := range deps {
			if d == name {
				return parent, true
			}
		}
	}
	return "", false
}
