// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package orchestrator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/archmagece/augent/internal/workspace"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func newTestWorkspace(t *testing.T) *workspace.Workspace {
	t.Helper()
	root := t.TempDir()
	return &workspace.Workspace{Root: root, ConfigDir: filepath.Join(root, ".augent")}
}

func TestInstallWritesResourcesAndLockfile(t *testing.T) {
	ws := newTestWorkspace(t)
	writeFile(t, filepath.Join(ws.Root, ".claude", ".keep"), "")

	bundleDir := filepath.Join(t.TempDir(), "review-bundle")
	writeFile(t, filepath.Join(bundleDir, "commands", "review.md"), "# review")

	result, err := Install(context.Background(), ws, InstallOptions{
		Sources:     []string{bundleDir},
		PlatformIDs: []string{"claude"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Installed) != 1 {
		t.Fatalf("expected 1 installed resource, got %+v", result.Installed)
	}

	target := filepath.Join(ws.Root, ".claude", "commands", "review.md")
	if _, err := os.Stat(target); err != nil {
		t.Errorf("expected %s to exist: %v", target, err)
	}

	lf, err := workspace.LoadLockfile(ws.ConfigDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(lf.Bundles) != 1 || lf.Bundles[0].Name != "review-bundle" {
		t.Fatalf("got bundles %+v", lf.Bundles)
	}
	if lf.Bundles[0].Source.Hash == "" {
		t.Error("expected a non-empty content hash")
	}

	idx, err := workspace.LoadIndex(ws.ConfigDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(idx["review-bundle"]["commands/review.md"]) != 1 {
		t.Errorf("got index %+v", idx)
	}
}

func TestInstallDryRunLeavesLockfileEmpty(t *testing.T) {
	ws := newTestWorkspace(t)
	writeFile(t, filepath.Join(ws.Root, ".claude", ".keep"), "")

	bundleDir := filepath.Join(t.TempDir(), "review-bundle")
	writeFile(t, filepath.Join(bundleDir, "commands", "review.md"), "# review")

	if _, err := Install(context.Background(), ws, InstallOptions{
		Sources:     []string{bundleDir},
		PlatformIDs: []string{"claude"},
		DryRun:      true,
	}); err != nil {
		t.Fatal(err)
	}

	target := filepath.Join(ws.Root, ".claude", "commands", "review.md")
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Errorf("expected no file written in dry-run, stat err: %v", err)
	}
	if _, err := os.Stat(filepath.Join(ws.ConfigDir, workspace.LockfileName)); !os.IsNotExist(err) {
		t.Error("expected no lockfile written in dry-run")
	}
}

func TestInstallPreservesModifiedFileAcrossReinstall(t *testing.T) {
	ws := newTestWorkspace(t)
	writeFile(t, filepath.Join(ws.Root, ".claude", ".keep"), "")

	bundleDir := filepath.Join(t.TempDir(), "review-bundle")
	writeFile(t, filepath.Join(bundleDir, "commands", "review.md"), "# review v1")

	if _, err := Install(context.Background(), ws, InstallOptions{
		Sources:     []string{bundleDir},
		PlatformIDs: []string{"claude"},
	}); err != nil {
		t.Fatal(err)
	}

	target := filepath.Join(ws.Root, ".claude", "commands", "review.md")
	writeFile(t, target, "# review v1 with my own notes")

	result, err := Install(context.Background(), ws, InstallOptions{
		Sources:     []string{bundleDir},
		PlatformIDs: []string{"claude"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.PreservedFiles != 1 {
		t.Errorf("expected 1 preserved file, got %d", result.PreservedFiles)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "# review v1 with my own notes" {
		t.Errorf("expected the user's edit to survive reinstall, got %q", got)
	}
}

func TestUninstallRemovesTargetsAndLockfileEntry(t *testing.T) {
	ws := newTestWorkspace(t)
	writeFile(t, filepath.Join(ws.Root, ".claude", ".keep"), "")

	bundleDir := filepath.Join(t.TempDir(), "review-bundle")
	writeFile(t, filepath.Join(bundleDir, "commands", "review.md"), "# review")

	if _, err := Install(context.Background(), ws, InstallOptions{
		Sources:     []string{bundleDir},
		PlatformIDs: []string{"claude"},
	}); err != nil {
		t.Fatal(err)
	}

	if err := Uninstall(ws, "review-bundle"); err != nil {
		t.Fatal(err)
	}

	target := filepath.Join(ws.Root, ".claude", "commands", "review.md")
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Errorf("expected %s to be removed, stat err: %v", target, err)
	}

	lf, err := workspace.LoadLockfile(ws.ConfigDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(lf.Bundles) != 0 {
		t.Errorf("expected empty lockfile, got %+v", lf.Bundles)
	}
}

func TestUninstallUnknownBundleFails(t *testing.T) {
	ws := newTestWorkspace(t)
	if err := ws.EnsureConfigDir(); err != nil {
		t.Fatal(err)
	}
	if err := Uninstall(ws, "nonexistent"); err == nil {
		t.Error("expected an error for an unknown bundle")
	}
}

func TestCheckDependentsRejectsWhenDependedOn(t *testing.T) {
	deps := map[string][]string{"parent-bundle": {"child-bundle"}}
	if err := checkDependents("child-bundle", deps); err == nil {
		t.Error("expected an error when another bundle depends on this one")
	}
	if err := checkDependents("parent-bundle", deps); err != nil {
		t.Errorf("expected no error for a bundle with no dependents, got %v", err)
	}
}

func TestListAndShowReadThroughLockfileAndIndex(t *testing.T) {
	ws := newTestWorkspace(t)
	writeFile(t, filepath.Join(ws.Root, ".claude", ".keep"), "")

	bundleDir := filepath.Join(t.TempDir(), "review-bundle")
	writeFile(t, filepath.Join(bundleDir, "commands", "review.md"), "# review")

	if _, err := Install(context.Background(), ws, InstallOptions{
		Sources:     []string{bundleDir},
		PlatformIDs: []string{"claude"},
	}); err != nil {
		t.Fatal(err)
	}

	bundles, err := List(ws)
	if err != nil {
		t.Fatal(err)
	}
	if len(bundles) != 1 || bundles[0].Name != "review-bundle" {
		t.Fatalf("got %+v", bundles)
	}

	locked, files, err := Show(ws, "review-bundle")
	if err != nil {
		t.Fatal(err)
	}
	if locked.Name != "review-bundle" {
		t.Errorf("got %+v", locked)
	}
	if len(files["commands/review.md"]) != 1 {
		t.Errorf("got files %+v", files)
	}

	if _, _, err := Show(ws, "missing"); err == nil {
		t.Error("expected an error for an unknown bundle")
	}
}
