// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package installer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/archmagece/augent/internal/convert"
	"github.com/archmagece/augent/internal/platform"
)

func newTestRegistry() *convert.Registry {
	r := convert.NewRegistry()
	r.RegisterBuiltins()
	return r
}

func TestCopyFileSimpleCopyOutsideResourceDir(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "bundle", "README.md")
	target := filepath.Join(dir, "workspace", "README.md")
	writeFile(t, source, "plain content")

	err := CopyFile(source, target, nil, filepath.Join(dir, "workspace"), newTestRegistry())
	if err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "plain content" {
		t.Errorf("got %q", got)
	}
}

func TestCopyFileBinaryIsCopiedVerbatim(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "bundle", "commands", "icon.png")
	workspaceRoot := filepath.Join(dir, "workspace")
	target := filepath.Join(workspaceRoot, ".claude", "commands", "icon.png")
	writeFile(t, source, "not actually a png, just bytes")

	platforms := []platform.Platform{platform.New("claude", "Claude Code", ".claude").
		WithTransform(platform.NewTransformRule("commands/**/*.md", ".claude/commands/**/*.md"))}

	err := CopyFile(source, target, platforms, workspaceRoot, newTestRegistry())
	if err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "not actually a png, just bytes" {
		t.Errorf("got %q", got)
	}
}

func TestCopyFileFrontmatterResourceWritesUniversalFormat(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "bundle", "rules", "style.md")
	workspaceRoot := filepath.Join(dir, "workspace")
	target := filepath.Join(workspaceRoot, ".cursor", "rules", "style.md")
	writeFile(t, source, "---\ndescription: style rules\n---\n\nUse tabs.\n")

	platforms := []platform.Platform{platform.New("cursor", "Cursor", ".cursor")}

	err := CopyFile(source, target, platforms, workspaceRoot, newTestRegistry())
	if err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	s := string(got)
	if !strings.Contains(s, "description: style rules") {
		t.Errorf("expected frontmatter preserved, got: %s", s)
	}
	if !strings.Contains(s, "Use tabs.") {
		t.Errorf("expected body preserved, got: %s", s)
	}
}
