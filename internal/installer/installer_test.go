// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package installer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/archmagece/augent/internal/platform"
	"github.com/archmagece/augent/internal/resolver"
)

func newClaudePlatform() platform.Platform {
	return platform.New("claude", "Claude Code", ".claude").
		WithTransform(platform.NewTransformRule("commands/**/*.md", ".claude/commands/**/*.md")).
		WithTransform(platform.NewTransformRule("rules/**/*.md", ".claude/CLAUDE.md"))
}

func TestInstallBundleWritesResourcesForEachPlatform(t *testing.T) {
	dir := t.TempDir()
	bundleRoot := filepath.Join(dir, "bundle")
	workspaceRoot := filepath.Join(dir, "workspace")
	writeFile(t, filepath.Join(bundleRoot, "commands", "review.md"), "# review a PR")

	in := New(workspaceRoot, []platform.Platform{newClaudePlatform()}, false)
	bundle := resolver.ResolvedBundle{Name: "my-bundle", SourcePath: bundleRoot}

	if err := in.InstallBundle(bundle); err != nil {
		t.Fatal(err)
	}

	target := filepath.Join(workspaceRoot, ".claude", "commands", "review.md")
	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("expected file written at %s: %v", target, err)
	}
	if !strings.Contains(string(got), "review a PR") {
		t.Errorf("got %q", got)
	}

	installed := in.InstalledFiles()
	entry, ok := installed["commands/review.md"]
	if !ok {
		t.Fatal("expected commands/review.md to be tracked in InstalledFiles")
	}
	if entry.BundlePath != "my-bundle" || entry.ResourceType != "command" {
		t.Errorf("got %+v", entry)
	}
	if len(entry.TargetPaths) != 1 || entry.TargetPaths[0] != target {
		t.Errorf("got target paths %v", entry.TargetPaths)
	}
}

func TestInstallBundleDryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	bundleRoot := filepath.Join(dir, "bundle")
	workspaceRoot := filepath.Join(dir, "workspace")
	writeFile(t, filepath.Join(bundleRoot, "commands", "review.md"), "# review a PR")

	in := New(workspaceRoot, []platform.Platform{newClaudePlatform()}, true)
	bundle := resolver.ResolvedBundle{Name: "my-bundle", SourcePath: bundleRoot}

	if err := in.InstallBundle(bundle); err != nil {
		t.Fatal(err)
	}

	target := filepath.Join(workspaceRoot, ".claude", "commands", "review.md")
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Errorf("expected no file written in dry-run mode, stat err: %v", err)
	}
	if len(in.InstalledFiles()) != 0 {
		t.Errorf("expected no installed files tracked in dry-run mode, got %v", in.InstalledFiles())
	}
}

func TestInstallBundlesInstallsEachBundleInOrder(t *testing.T) {
	dir := t.TempDir()
	workspaceRoot := filepath.Join(dir, "workspace")

	bundleA := filepath.Join(dir, "bundle-a")
	bundleB := filepath.Join(dir, "bundle-b")
	writeFile(t, filepath.Join(bundleA, "commands", "a.md"), "command a")
	writeFile(t, filepath.Join(bundleB, "commands", "b.md"), "command b")

	in := New(workspaceRoot, []platform.Platform{newClaudePlatform()}, false)
	bundles := []resolver.ResolvedBundle{
		{Name: "bundle-a", SourcePath: bundleA},
		{Name: "bundle-b", SourcePath: bundleB},
	}

	if err := in.InstallBundles(bundles); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"a.md", "b.md"} {
		target := filepath.Join(workspaceRoot, ".claude", "commands", name)
		if _, err := os.Stat(target); err != nil {
			t.Errorf("expected %s to be installed: %v", target, err)
		}
	}
	if len(in.InstalledFiles()) != 2 {
		t.Errorf("expected 2 tracked installed files, got %d", len(in.InstalledFiles()))
	}
}
