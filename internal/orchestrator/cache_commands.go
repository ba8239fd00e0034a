// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package orchestrator

import "github.com/archmagece/augent/internal/cache"

// CacheStats returns the cache's aggregate statistics. A pure
// read-through over C3: no additional logic.
func CacheStats() (cache.Stats, error) {
	return cache.ComputeStats()
}

// CacheList returns every cached bundle, grouped by name. A pure
// read-through over C3: no additional logic.
func CacheList() ([]cache.CachedBundle, error) {
	return cache.ListCachedBundles()
}

// CacheClear empties the entire bundle cache. A pure write-through over
// C3: no additional logic.
func CacheClear() error {
	return cache.Clear()
}

// CacheRemove removes a single named bundle's cached entries. A pure
// write-through over C3: no additional logic.
func CacheRemove(name string) error {
	return cache.RemoveByName(name)
}
