// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cache

import "testing"

func TestComputeStats(t *testing.T) {
	setupTestCacheDir(t)

	_ = upsertEntry(Entry{RepoURL: "https://github.com/owner/repo-a.git", SHA: "sha1", RepoKey: "owner-repo-a", SizeBytes: 100})
	_ = upsertEntry(Entry{RepoURL: "https://github.com/owner/repo-a.git", SHA: "sha2", RepoKey: "owner-repo-a", SizeBytes: 50})
	_ = upsertEntry(Entry{RepoURL: "https://github.com/owner/repo-b.git", SHA: "sha3", RepoKey: "owner-repo-b", SizeBytes: 25})

	stats, err := ComputeStats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.EntryCount != 3 {
		t.Errorf("EntryCount = %d, want 3", stats.EntryCount)
	}
	if stats.TotalBytes != 175 {
		t.Errorf("TotalBytes = %d, want 175", stats.TotalBytes)
	}
	if stats.Repos != 2 {
		t.Errorf("Repos = %d, want 2", stats.Repos)
	}
}
