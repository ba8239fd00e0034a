// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package resolver

import "testing"

func TestTopologicalSortSimple(t *testing.T) {
	resolved := map[string]ResolvedBundle{
		"bundle-a": {Name: "bundle-a"},
		"bundle-b": {Name: "bundle-b"},
	}
	deps := map[string][]string{
		"bundle-a": {"bundle-b"},
		"bundle-b": nil,
	}

	result, err := TopologicalSort(deps, resolved, []string{"bundle-a"})
	if err != nil {
		t.Fatal(err)
	}
	if len(result) != 2 || result[0].Name != "bundle-b" || result[1].Name != "bundle-a" {
		t.Fatalf("got %+v, want [bundle-b bundle-a]", result)
	}
}

func TestTopologicalSortTransitive(t *testing.T) {
	resolved := map[string]ResolvedBundle{
		"bundle-b": {Name: "bundle-b"},
		"bundle-c": {Name: "bundle-c"},
		"bundle-d": {Name: "bundle-d"},
	}
	deps := map[string][]string{
		"bundle-b": nil,
		"bundle-c": {"bundle-b"},
		"bundle-d": {"bundle-c"},
	}

	result, err := TopologicalSort(deps, resolved, []string{"bundle-d"})
	if err != nil {
		t.Fatal(err)
	}
	names := []string{result[0].Name, result[1].Name, result[2].Name}
	want := []string{"bundle-b", "bundle-c", "bundle-d"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got %v, want %v", names, want)
		}
	}
}

func TestTopologicalSortCycleDetection(t *testing.T) {
	resolved := map[string]ResolvedBundle{
		"bundle-a": {Name: "bundle-a"},
		"bundle-b": {Name: "bundle-b"},
	}
	deps := map[string][]string{
		"bundle-a": {"bundle-b"},
		"bundle-b": {"bundle-a"},
	}

	_, err := TopologicalSort(deps, resolved, []string{"bundle-a"})
	if err == nil {
		t.Fatal("expected cycle detection error")
	}
}

func TestTopologicalSortPreservesOrder(t *testing.T) {
	resolved := map[string]ResolvedBundle{
		"bundle-a": {Name: "bundle-a"},
		"bundle-b": {Name: "bundle-b"},
	}
	deps := map[string][]string{"bundle-a": nil, "bundle-b": nil}

	result, err := TopologicalSort(deps, resolved, []string{"bundle-a", "bundle-b"})
	if err != nil {
		t.Fatal(err)
	}
	if result[0].Name != "bundle-a" || result[1].Name != "bundle-b" {
		t.Fatalf("got %+v, want preserved order", result)
	}
}

func TestTopologicalSortDependencyNotFound(t *testing.T) {
	resolved := map[string]ResolvedBundle{"bundle-a": {Name: "bundle-a"}}
	deps := map[string][]string{"bundle-a": {"missing"}}

	_, err := TopologicalSort(deps, resolved, []string{"bundle-a"})
	if err == nil {
		t.Fatal("expected dependency-not-found error")
	}
}
