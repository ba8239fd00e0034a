// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cache

import "testing"

func setupTestCacheDir(t *testing.T) {
	t.Helper()
	t.Setenv("AUGENT_CACHE_DIR", t.TempDir())
	invalidateMemory()
	t.Cleanup(invalidateMemory)
}

func TestUpsertAndLookupEntry(t *testing.T) {
	setupTestCacheDir(t)

	e := Entry{RepoURL: "https://github.com/owner/repo.git", SHA: "abc123", RepoKey: "owner-repo"}
	if err := upsertEntry(e); err != nil {
		t.Fatal(err)
	}

	got, found, err := lookupEntry(e.RepoURL, e.SHA)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("expected entry to be found")
	}
	if got.RepoKey != "owner-repo" {
		t.Errorf("RepoKey = %q, want owner-repo", got.RepoKey)
	}
}

func TestUpsertEntryReplacesExisting(t *testing.T) {
	setupTestCacheDir(t)

	e1 := Entry{RepoURL: "https://github.com/owner/repo.git", SHA: "sha1", SizeBytes: 100}
	e2 := Entry{RepoURL: "https://github.com/owner/repo.git", SHA: "sha1", SizeBytes: 200}
	if err := upsertEntry(e1); err != nil {
		t.Fatal(err)
	}
	if err := upsertEntry(e2); err != nil {
		t.Fatal(err)
	}

	all, err := ListAllEntries()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 entry after replace, got %d", len(all))
	}
	if all[0].SizeBytes != 200 {
		t.Errorf("SizeBytes = %d, want 200", all[0].SizeBytes)
	}
}

func TestRemoveEntry(t *testing.T) {
	setupTestCacheDir(t)

	e := Entry{RepoURL: "https://github.com/owner/repo.git", SHA: "abc123"}
	if err := upsertEntry(e); err != nil {
		t.Fatal(err)
	}
	if err := removeEntry(e.RepoURL, e.SHA); err != nil {
		t.Fatal(err)
	}
	if _, found, _ := lookupEntry(e.RepoURL, e.SHA); found {
		t.Error("expected entry to be gone after removeEntry")
	}
}

func TestIndexSurvivesMemoryInvalidation(t *testing.T) {
	setupTestCacheDir(t)

	e := Entry{RepoURL: "https://github.com/owner/repo.git", SHA: "abc123"}
	if err := upsertEntry(e); err != nil {
		t.Fatal(err)
	}
	invalidateMemory()

	_, found, err := lookupEntry(e.RepoURL, e.SHA)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Error("expected entry to persist across memory invalidation (reread from disk)")
	}
}

func TestListEntriesForURL(t *testing.T) {
	setupTestCacheDir(t)

	urlA := "https://github.com/owner/repo-a.git"
	urlB := "https://github.com/owner/repo-b.git"
	_ = upsertEntry(Entry{RepoURL: urlA, SHA: "sha1"})
	_ = upsertEntry(Entry{RepoURL: urlA, SHA: "sha2"})
	_ = upsertEntry(Entry{RepoURL: urlB, SHA: "sha3"})

	got, err := ListEntriesForURL(urlA)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries for urlA, got %d", len(got))
	}
}

func TestClearEntries(t *testing.T) {
	setupTestCacheDir(t)

	_ = upsertEntry(Entry{RepoURL: "https://github.com/owner/repo.git", SHA: "abc123"})
	if err := clearEntries(); err != nil {
		t.Fatal(err)
	}
	all, err := ListAllEntries()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 0 {
		t.Errorf("expected empty index after clear, got %d entries", len(all))
	}
}
