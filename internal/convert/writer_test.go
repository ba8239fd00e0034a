// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package convert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteMergedFrontmatterMarkdown(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.md")

	merged := map[string]interface{}{"description": "A rule"}
	if err := WriteMergedFrontmatterMarkdown(merged, "Rule body.", target); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	s := string(got)
	if !strings.HasPrefix(s, "---\n") {
		t.Errorf("expected frontmatter delimiter at start, got: %s", s)
	}
	if !strings.Contains(s, "description: A rule") {
		t.Errorf("expected description field, got: %s", s)
	}
	if !strings.HasSuffix(s, "Rule body.") {
		t.Errorf("expected body at end, got: %s", s)
	}
}

func TestWriteMergedFrontmatterMarkdownEmptyFrontmatter(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.md")

	if err := WriteMergedFrontmatterMarkdown(map[string]interface{}{}, "Just body.", target); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "---\n---\n\nJust body." {
		t.Errorf("got %q", got)
	}
}
