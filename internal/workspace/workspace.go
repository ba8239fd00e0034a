// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package workspace owns a workspace's on-disk state: the bundle
// manifest (augent.yaml), the lockfile (augent.lock), and the installed
// file index (augent.index.yaml), plus the modified-file preservation
// logic that protects user edits across reinstalls.
package workspace

import (
	"os"
	"os/user"
	"path/filepath"

	"github.com/archmagece/augent/internal/gitadapter"
)

const (
	// BundleConfigFile is the bundle manifest's conventional filename.
	BundleConfigFile = "augent.yaml"
	// LockfileName is the lockfile's conventional filename.
	LockfileName = "augent.lock"
	// IndexFile is the installed-file index's conventional filename.
	IndexFile = "augent.index.yaml"
	// EnvWorkspaceOverride overrides workspace root detection.
	EnvWorkspaceOverride = "AUGENT_WORKSPACE"
	// dotDir is the fallback config directory when no augent.yaml lives
	// at the detected workspace root.
	dotDir = ".augent"
)

// Workspace is a resolved root directory plus the config directory its
// three state files live in.
type Workspace struct {
	Root      string
	ConfigDir string
}

// Detect resolves a workspace rooted at or above startPath: an
// AUGENT_WORKSPACE environment override wins outright; otherwise the
// surrounding git repository's root is used; otherwise startPath itself.
// The config directory is the root when an augent.yaml already lives
// there, else root/.augent.
func Detect(startPath string) (*Workspace, error) {
	root := startPath
	if override := os.Getenv(EnvWorkspaceOverride); override != "" {
		root = override
	} else if gitRoot, ok := gitadapter.DiscoverRoot(startPath); ok {
		root = gitRoot
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	return &Workspace{Root: abs, ConfigDir: configDirFor(abs)}, nil
}

func configDirFor(root string) string {
	if _, err := os.Stat(filepath.Join(root, BundleConfigFile)); err == nil {
		return root
	}
	return filepath.Join(root, dotDir)
}

// EnsureConfigDir creates the workspace's config directory if it doesn't
// already exist.
func (w *Workspace) EnsureConfigDir() error {
	return os.MkdirAll(w.ConfigDir, 0o755)
}

// Name derives the workspace's identity: the "origin" remote URL's
// "@owner/repo" form when the root is inside a git repository with one
// configured, else "@<user>/<directory-name>".
func (w *Workspace) Name() string {
	if url, ok := gitadapter.RemoteOriginURL(w.Root); ok {
		if owner, repo, ok := ownerRepoFromURL(url); ok {
			return "@" + owner + "/" + repo
		}
	}

	username := "user"
	if u, err := user.Current(); err == nil && u.Username != "" {
		username = u.Username
	}
	return "@" + username + "/" + filepath.Base(w.Root)
}
