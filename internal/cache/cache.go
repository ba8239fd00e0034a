// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cache

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/archmagece/augent/internal/apperrors"
	"github.com/archmagece/augent/internal/gitadapter"
)

// shallowClone controls whether CacheBundle clones with depth 1.
// SetShallow replaces it; the default matches the historical behavior.
var shallowClone = true

// SetShallow changes whether subsequent CacheBundle calls clone shallow
// or full, per the workspace's configured shallow-clone preference.
func SetShallow(shallow bool) { shallowClone = shallow }

// CacheBundle resolves ref on url to a commit SHA and ensures a cache
// entry exists for (url, sha), cloning and materializing it if needed.
// It returns the resolved SHA and the path to the entry's resources
// directory (a plain, .git-free copy of the repository contents at that
// commit). A populated entry is reused without re-cloning.
func CacheBundle(ctx context.Context, url, ref string) (sha string, resourcesPath string, err error) {
	sha, err = gitadapter.LsRemote(ctx, url, ref)
	if err != nil {
		return "", "", err
	}

	entryPath, err := RepoCacheEntryPath(url, sha)
	if err != nil {
		return "", "", err
	}
	resources := EntryResourcesPath(entryPath)

	if existing, found, lookupErr := lookupEntry(url, sha); lookupErr == nil && found {
		if _, statErr := os.Stat(resources); statErr == nil {
			_ = existing
			return sha, resources, nil
		}
	}

	repository := EntryRepositoryPath(entryPath)
	if err := os.RemoveAll(entryPath); err != nil {
		return "", "", apperrors.Newf(apperrors.CodeCacheOperationFailed, "failed to clear stale cache entry: %v", err)
	}
	if err := os.MkdirAll(entryPath, 0o755); err != nil {
		return "", "", apperrors.Newf(apperrors.CodeCacheOperationFailed, "failed to create cache entry: %v", err)
	}

	repo, err := gitadapter.Clone(ctx, url, repository, shallowClone)
	if err != nil {
		return "", "", err
	}
	if err := repo.Checkout(sha); err != nil {
		return "", "", err
	}

	if err := copyExcludingGit(repository, resources); err != nil {
		return "", "", apperrors.Newf(apperrors.CodeCacheOperationFailed, "failed to materialize resources: %v", err)
	}

	size, sizeErr := dirSize(resources)
	if sizeErr != nil {
		return "", "", apperrors.Newf(apperrors.CodeCacheOperationFailed, "failed to measure cache entry: %v", sizeErr)
	}

	entry := Entry{
		RepoURL:   url,
		SHA:       sha,
		RepoKey:   RepoKey(url),
		CachedAt:  time.Now(),
		SizeBytes: size,
	}
	if err := upsertEntry(entry); err != nil {
		return "", "", err
	}

	return sha, resources, nil
}

// WriteBundleName sidecars the owning bundle's declared name alongside
// an entry so later lookups can disambiguate synthetic marketplace
// subdirectories from the real repository root.
func WriteBundleName(entryPath, name string) error {
	return os.WriteFile(filepath.Join(entryPath, bundleNameFile), []byte(name), 0o644)
}

// ReadBundleName reads back a sidecar written by WriteBundleName, or
// returns "" if none was written.
func ReadBundleName(entryPath string) string {
	data, err := os.ReadFile(filepath.Join(entryPath, bundleNameFile))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Remove deletes the on-disk entry and its index row for (url, sha).
func Remove(url, sha string) error {
	entryPath, err := RepoCacheEntryPath(url, sha)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(entryPath); err != nil {
		return apperrors.Newf(apperrors.CodeCacheOperationFailed, "failed to remove cache entry: %v", err)
	}
	return removeEntry(url, sha)
}

// RemoveByName deletes every cached SHA recorded under name, matching
// either a bundle's declared name (WriteBundleName) or its repo key.
// Returns CodeCacheOperationFailed if no matching entry exists.
func RemoveByName(name string) error {
	entries, err := ListAllEntries()
	if err != nil {
		return err
	}

	dir, err := BundlesDir()
	if err != nil {
		return err
	}

	removed := false
	for _, e := range entries {
		if e.BundleName != name && e.RepoKey != name {
			continue
		}
		entryPath := filepath.Join(dir, e.RepoKey, e.SHA)
		if rmErr := os.RemoveAll(entryPath); rmErr != nil {
			return apperrors.Newf(apperrors.CodeCacheOperationFailed, "failed to remove cached bundle: %v", rmErr)
		}
		if rmErr := removeEntry(e.RepoURL, e.SHA); rmErr != nil {
			return rmErr
		}
		removed = true
	}

	if !removed {
		return apperrors.Newf(apperrors.CodeCacheOperationFailed, "bundle not found in cache: %s", name)
	}
	return nil
}

// Clear deletes every cache entry and resets the index.
func Clear() error {
	dir, err := BundlesDir()
	if err != nil {
		return err
	}
	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		if os.IsNotExist(readErr) {
			return clearEntries()
		}
		return apperrors.Newf(apperrors.CodeCacheOperationFailed, "failed to list cache: %v", readErr)
	}
	for _, e := range entries {
		if e.Name() == indexFileName {
			continue
		}
		if err := os.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return apperrors.Newf(apperrors.CodeCacheOperationFailed, "failed to remove %s: %v", e.Name(), err)
		}
	}
	return clearEntries()
}

func copyExcludingGit(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(src, path)
		if relErr != nil {
			return relErr
		}
		if rel == ".git" || strings.HasPrefix(rel, ".git"+string(filepath.Separator)) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if mkErr := os.MkdirAll(filepath.Dir(target), 0o755); mkErr != nil {
			return mkErr
		}
		in, openErr := os.Open(path)
		if openErr != nil {
			return openErr
		}
		defer in.Close()
		out, createErr := os.Create(target)
		if createErr != nil {
			return createErr
		}
		defer out.Close()
		_, copyErr := io.Copy(out, in)
		return copyErr
	})
}

func dirSize(root string) (int64, error) {
	var total int64
	err := filepath.WalkDir(root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, infoErr := d.Info()
		if infoErr != nil {
			return infoErr
		}
		total += info.Size()
		return nil
	})
	return total, err
}
