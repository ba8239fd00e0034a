// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/archmagece/augent/internal/apperrors"
)

// Entry is one row of the cache index: a cached (repo, sha) pair with
// its repo key, cache time, size on disk, and recorded bundle name.
type Entry struct {
	RepoURL    string    `json:"repo_url"`
	SHA        string    `json:"sha"`
	RepoKey    string    `json:"repo_key"`
	CachedAt   time.Time `json:"cached_at"`
	SizeBytes  int64     `json:"size_bytes"`
	BundleName string    `json:"bundle_name,omitempty"`
}

// Index is the on-disk .cache_index.json structure: a JSON object whose
// "entries" key holds a flat array of entries, loaded and rewritten
// atomically.
type Index struct {
	Entries []Entry `json:"entries"`
}

var (
	memMu    sync.Mutex
	memIndex *Index
)

// loadIndex reads the index from disk, populating the in-memory cache.
// Callers must hold memMu.
func loadIndex() (*Index, error) {
	if memIndex != nil {
		return memIndex, nil
	}
	path, err := indexPath()
	if err != nil {
		return nil, err
	}
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		if os.IsNotExist(readErr) {
			idx := &Index{}
			memIndex = idx
			return idx, nil
		}
		return nil, apperrors.Newf(apperrors.CodeFileReadFailed, "failed to read cache index: %v", readErr)
	}
	idx := &Index{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, idx); err != nil {
			return nil, apperrors.Newf(apperrors.CodeFileReadFailed, "failed to parse cache index: %v", err)
		}
	}
	memIndex = idx
	return idx, nil
}

// saveIndex atomically rewrites the index file and refreshes the
// in-memory cache. Callers must hold memMu.
func saveIndex(idx *Index) error {
	path, err := indexPath()
	if err != nil {
		return err
	}
	if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
		return apperrors.Newf(apperrors.CodeFileWriteFailed, "failed to create cache directory: %v", mkErr)
	}
	data, marshalErr := json.MarshalIndent(idx, "", "  ")
	if marshalErr != nil {
		return apperrors.Newf(apperrors.CodeFileWriteFailed, "failed to encode cache index: %v", marshalErr)
	}
	tmp := path + ".tmp"
	if writeErr := os.WriteFile(tmp, data, 0o644); writeErr != nil {
		return apperrors.Newf(apperrors.CodeFileWriteFailed, "failed to write cache index: %v", writeErr)
	}
	if renameErr := os.Rename(tmp, path); renameErr != nil {
		return apperrors.Newf(apperrors.CodeFileWriteFailed, "failed to finalize cache index: %v", renameErr)
	}
	memIndex = idx
	return nil
}

// upsertEntry adds or replaces the index row for (url, sha).
func upsertEntry(e Entry) error {
	memMu.Lock()
	defer memMu.Unlock()
	idx, err := loadIndex()
	if err != nil {
		return err
	}
	for i, existing := range idx.Entries {
		if existing.RepoURL == e.RepoURL && existing.SHA == e.SHA {
			idx.Entries[i] = e
			return saveIndex(idx)
		}
	}
	idx.Entries = append(idx.Entries, e)
	return saveIndex(idx)
}

// lookupEntry finds the index row for (url, sha), if present.
func lookupEntry(url, sha string) (Entry, bool, error) {
	memMu.Lock()
	defer memMu.Unlock()
	idx, err := loadIndex()
	if err != nil {
		return Entry{}, false, err
	}
	for _, e := range idx.Entries {
		if e.RepoURL == url && e.SHA == sha {
			return e, true, nil
		}
	}
	return Entry{}, false, nil
}

// ListEntriesForURL returns every cached SHA recorded for url.
func ListEntriesForURL(url string) ([]Entry, error) {
	memMu.Lock()
	defer memMu.Unlock()
	idx, err := loadIndex()
	if err != nil {
		return nil, err
	}
	var out []Entry
	for _, e := range idx.Entries {
		if e.RepoURL == url {
			out = append(out, e)
		}
	}
	return out, nil
}

// ListAllEntries returns every row currently recorded in the index.
func ListAllEntries() ([]Entry, error) {
	memMu.Lock()
	defer memMu.Unlock()
	idx, err := loadIndex()
	if err != nil {
		return nil, err
	}
	out := make([]Entry, len(idx.Entries))
	copy(out, idx.Entries)
	return out, nil
}

// removeEntry deletes the index row for (url, sha), if present.
func removeEntry(url, sha string) error {
	memMu.Lock()
	defer memMu.Unlock()
	idx, err := loadIndex()
	if err != nil {
		return err
	}
	kept := idx.Entries[:0]
	for _, e := range idx.Entries {
		if e.RepoURL == url && e.SHA == sha {
			continue
		}
		kept = append(kept, e)
	}
	idx.Entries = kept
	return saveIndex(idx)
}

// clearEntries empties the index entirely.
func clearEntries() error {
	memMu.Lock()
	defer memMu.Unlock()
	return saveIndex(&Index{})
}

// invalidateMemory drops the in-memory index cache so the next load
// rereads from disk. Used by tests and after out-of-process mutation.
func invalidateMemory() {
	memMu.Lock()
	memIndex = nil
	memMu.Unlock()
}
