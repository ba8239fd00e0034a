// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package resolver

import "github.com/archmagece/augent/internal/apperrors"

// buildDependencyList extracts each resolved bundle's declared
// dependency names into a plain adjacency list for the topological sort.
func buildDependencyList(resolved map[string]ResolvedBundle) map[string][]string {
	deps := make(map[string][]string, len(resolved))
	for name, bundle := range resolved {
		if bundle.Manifest == nil {
			deps[name] = nil
			continue
		}
		names := make([]string, len(bundle.Manifest.Bundles))
		for i, d := range bundle.Manifest.Bundles {
			names[i] = d.Name
		}
		deps[name] = names
	}
	return deps
}

// validateDependencies fails with DependencyNotFoundError if any
// adjacency-list entry names a bundle absent from resolved.
func validateDependencies(deps map[string][]string, resolved map[string]ResolvedBundle) error {
	for _, names := range deps {
		for _, name := range names {
			if _, ok := resolved[name]; !ok {
				return &apperrors.DependencyNotFoundError{Name: name}
			}
		}
	}
	return nil
}
