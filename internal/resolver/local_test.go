// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package resolver

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveLocalBundleNoManifest(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "my-bundle"), 0o755); err != nil {
		t.Fatal(err)
	}

	op := New(root)
	bundles, err := op.Resolve(context.Background(), "./my-bundle", false)
	if err != nil {
		t.Fatal(err)
	}
	if len(bundles) != 1 || bundles[0].Name != "my-bundle" {
		t.Fatalf("got %+v, want single my-bundle", bundles)
	}
}

func TestResolveLocalBundleWithDependencies(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "a")
	b := filepath.Join(root, "b")
	for _, d := range []string{a, b} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	// Dependency paths resolve relative to the workspace root, not the
	// declaring bundle's own directory (matches the upstream resolver).
	manifestYAML := "name: a\nbundles:\n  - name: b\n    path: ./b\n"
	if err := os.WriteFile(filepath.Join(a, "augent.yaml"), []byte(manifestYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	op := New(root)
	bundles, err := op.Resolve(context.Background(), "./a", false)
	if err != nil {
		t.Fatal(err)
	}
	if len(bundles) != 2 {
		t.Fatalf("expected 2 bundles (a + dep b), got %d: %+v", len(bundles), bundles)
	}
	if bundles[len(bundles)-1].Name != "a" {
		t.Errorf("expected a to be last (dependent after dependency), got order %+v", bundles)
	}
}

func TestResolveLocalBundleNotFound(t *testing.T) {
	root := t.TempDir()
	op := New(root)
	if _, err := op.Resolve(context.Background(), "./missing", false); err == nil {
		t.Fatal("expected bundle-not-found error")
	}
}

func TestValidateLocalBundlePathRejectsOutsideWorkspace(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	err := validateLocalBundlePath(filepath.Join(outside, "x"), filepath.Join(outside, "x"), true, root)
	if err == nil {
		t.Fatal("expected validation error for path outside workspace")
	}
}

func TestCheckCycleDetectsExistingName(t *testing.T) {
	err := checkCycle("bundle-a", []string{"bundle-a", "bundle-b"})
	if err == nil {
		t.Fatal("expected cycle error")
	}
}

func TestCheckCycleNoCycle(t *testing.T) {
	if err := checkCycle("bundle-c", []string{"bundle-a", "bundle-b"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
