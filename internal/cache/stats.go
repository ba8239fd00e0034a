// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cache

import (
	"fmt"
	"sort"
)

// Stats summarizes the cache's on-disk footprint, per the workspace
// "cache stats" surface.
type Stats struct {
	EntryCount int
	TotalBytes int64
	Repos      int
}

// FormattedSize renders TotalBytes as a human-readable B/KB/MB/GB string.
func (s Stats) FormattedSize() string { return formatSize(s.TotalBytes) }

// ComputeStats aggregates Stats from the current index.
func ComputeStats() (Stats, error) {
	entries, err := ListAllEntries()
	if err != nil {
		return Stats{}, err
	}
	seenRepos := map[string]struct{}{}
	var stats Stats
	for _, e := range entries {
		stats.EntryCount++
		stats.TotalBytes += e.SizeBytes
		seenRepos[e.RepoKey] = struct{}{}
	}
	stats.Repos = len(seenRepos)
	return stats, nil
}

// CachedBundle summarizes every cached SHA of a single bundle, grouped
// by its declared name (falling back to the repo key when no name was
// ever recorded via WriteBundleName).
type CachedBundle struct {
	Name     string
	Versions int
	Size     int64
}

// FormattedSize renders Size as a human-readable B/KB/MB/GB string.
func (b CachedBundle) FormattedSize() string { return formatSize(b.Size) }

func formatSize(size int64) string {
	f := float64(size)
	switch {
	case f < 1024:
		return fmt.Sprintf("%d B", size)
	case f < 1024*1024:
		return fmt.Sprintf("%.1f KB", f/1024)
	case f < 1024*1024*1024:
		return fmt.Sprintf("%.1f MB", f/(1024*1024))
	default:
		return fmt.Sprintf("%.1f GB", f/(1024*1024*1024))
	}
}

// ListCachedBundles aggregates the index's entries by bundle name (or
// repo key, if no name was ever recorded), sorted alphabetically.
func ListCachedBundles() ([]CachedBundle, error) {
	entries, err := ListAllEntries()
	if err != nil {
		return nil, err
	}

	byName := map[string]*CachedBundle{}
	for _, e := range entries {
		name := e.BundleName
		if name == "" {
			name = e.RepoKey
		}
		b, ok := byName[name]
		if !ok {
			b = &CachedBundle{Name: name}
			byName[name] = b
		}
		b.Versions++
		b.Size += e.SizeBytes
	}

	out := make([]CachedBundle, 0, len(byName))
	for _, b := range byName {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
