// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveAppliesDefaultsWithNoLayers(t *testing.T) {
	l := &Loader{}
	eff := l.Resolve(nil)

	if len(eff.Platforms) != 1 || eff.Platforms[0] != "claude-code" {
		t.Errorf("Platforms = %v, want [claude-code]", eff.Platforms)
	}
	if !eff.Shallow {
		t.Error("expected Shallow to default true")
	}
	if eff.Sources["platforms"] != SourceDefault {
		t.Errorf("Sources[platforms] = %v, want default", eff.Sources["platforms"])
	}
}

func TestResolveGlobalOverridesDefaults(t *testing.T) {
	falseVal := false
	l := &Loader{global: &Settings{Platforms: []string{"cursor", "windsurf"}, Shallow: &falseVal}}
	eff := l.Resolve(nil)

	if len(eff.Platforms) != 2 || eff.Platforms[0] != "cursor" {
		t.Errorf("Platforms = %v, want [cursor windsurf]", eff.Platforms)
	}
	if eff.Shallow {
		t.Error("expected Shallow false from global layer")
	}
	if eff.Sources["shallow"] != SourceGlobal {
		t.Errorf("Sources[shallow] = %v, want global", eff.Sources["shallow"])
	}
	if eff.Sources["verbose"] != SourceDefault {
		t.Errorf("Sources[verbose] = %v, want default (untouched by global)", eff.Sources["verbose"])
	}
}

func TestResolveWorkspaceOverridesGlobal(t *testing.T) {
	l := &Loader{
		global:    &Settings{CacheDir: "/global/cache"},
		workspace: &Settings{CacheDir: "/workspace/cache"},
	}
	eff := l.Resolve(nil)

	if eff.CacheDir != "/workspace/cache" {
		t.Errorf("CacheDir = %q, want workspace value", eff.CacheDir)
	}
	if eff.Sources["cacheDir"] != SourceWorkspace {
		t.Errorf("Sources[cacheDir] = %v, want workspace", eff.Sources["cacheDir"])
	}
}

func TestResolveFlagsOverrideEverything(t *testing.T) {
	l := &Loader{
		global:    &Settings{CacheDir: "/global/cache"},
		workspace: &Settings{CacheDir: "/workspace/cache"},
	}
	eff := l.Resolve(map[string]interface{}{"cacheDir": "/flag/cache", "verbose": true})

	if eff.CacheDir != "/flag/cache" {
		t.Errorf("CacheDir = %q, want flag value", eff.CacheDir)
	}
	if eff.Sources["cacheDir"] != SourceFlag {
		t.Errorf("Sources[cacheDir] = %v, want flag", eff.Sources["cacheDir"])
	}
	if !eff.Verbose {
		t.Error("expected Verbose true from flag")
	}
}

func TestLoadWorkspaceIgnoresMissingFile(t *testing.T) {
	l := &Loader{}
	if err := l.LoadWorkspace(t.TempDir()); err != nil {
		t.Fatalf("LoadWorkspace() error = %v, want nil for missing file", err)
	}
	if l.workspace != nil {
		t.Error("expected workspace layer to stay nil when augent.yaml is absent")
	}
}

func TestLoadWorkspaceParsesSettingsAlongsideBundles(t *testing.T) {
	dir := t.TempDir()
	content := "name: my-workspace\nplatforms:\n  - cursor\ncache_dir: /custom/cache\nbundles:\n  - name: dep1\n    path: bundles/dep1\n"
	if err := os.WriteFile(filepath.Join(dir, "augent.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	l := &Loader{}
	if err := l.LoadWorkspace(dir); err != nil {
		t.Fatalf("LoadWorkspace() error = %v", err)
	}
	if l.workspace == nil {
		t.Fatal("expected workspace layer to be populated")
	}
	if len(l.workspace.Platforms) != 1 || l.workspace.Platforms[0] != "cursor" {
		t.Errorf("Platforms = %v, want [cursor]", l.workspace.Platforms)
	}
	if l.workspace.CacheDir != "/custom/cache" {
		t.Errorf("CacheDir = %q, want /custom/cache", l.workspace.CacheDir)
	}
}

func TestGlobalPathUsesUserConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := GlobalPath()
	if err != nil {
		t.Fatalf("GlobalPath() error = %v", err)
	}
	want := filepath.Join(dir, "augent", "config.yaml")
	if path != want {
		t.Errorf("GlobalPath() = %q, want %q", path, want)
	}
}
