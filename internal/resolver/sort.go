// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package resolver

import (
	"sort"

	"github.com/archmagece/augent/internal/apperrors"
)

type topoState struct {
	deps        map[string][]string
	visited     map[string]bool // black: fully processed
	tempVisited map[string]bool // gray: on the current DFS path
	resolved    map[string]ResolvedBundle
	result      []ResolvedBundle
}

// TopologicalSort orders resolved bundles so dependencies precede
// dependents (post-order DFS), preserving resolutionOrder for
// independent top-level bundles and appending any remaining transitive
// bundles alphabetically. Three-color (white/gray/black) marking
// detects cycles missed by the initial resolution-stack check (e.g.
// cycles introduced across independently resolved top-level sources).
func TopologicalSort(deps map[string][]string, resolved map[string]ResolvedBundle, resolutionOrder []string) ([]ResolvedBundle, error) {
	if err := validateDependencies(deps, resolved); err != nil {
		return nil, err
	}

	st := &topoState{
		deps:        deps,
		visited:     make(map[string]bool),
		tempVisited: make(map[string]bool),
		resolved:    resolved,
	}

	if err := processBundles(st, resolutionOrder); err != nil {
		return nil, err
	}

	var remaining []string
	for name := range resolved {
		if !st.visited[name] {
			remaining = append(remaining, name)
		}
	}
	sort.Strings(remaining)

	if err := processBundles(st, remaining); err != nil {
		return nil, err
	}

	return st.result, nil
}

func processBundles(st *topoState, names []string) error {
	for _, name := range names {
		if !st.visited[name] {
			if err := topoDFS(st, name); err != nil {
				return err
			}
		}
	}
	return nil
}

func topoDFS(st *topoState, name string) error {
	if st.tempVisited[name] {
		return &apperrors.CircularDependencyError{Chain: []string{name, name}}
	}
	if st.visited[name] {
		return nil
	}

	st.tempVisited[name] = true

	for _, dep := range st.deps[name] {
		if err := topoDFS(st, dep); err != nil {
			return err
		}
	}

	delete(st.tempVisited, name)
	st.visited[name] = true

	if bundle, ok := st.resolved[name]; ok {
		st.result = append(st.result, bundle)
	}
	return nil
}
