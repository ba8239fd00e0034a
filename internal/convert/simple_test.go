// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package convert

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSimpleConverterSupportsConversion(t *testing.T) {
	c := newSimpleConverter("codex", ".codex/")
	if !c.SupportsConversion("", "/ws/.codex/commands/review.md") {
		t.Error("expected path under .codex/ to be supported")
	}
	if c.SupportsConversion("", "/ws/.cursor/commands/review.md") {
		t.Error("expected path under a different directory to be unsupported")
	}
}

func TestSimpleConverterConvertFromMarkdownCopiesVerbatim(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "source.md")
	target := filepath.Join(dir, "out", "target.md")
	if err := os.WriteFile(source, []byte("---\ndescription: x\n---\n\nbody"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := newSimpleConverter("codex", ".codex/")
	if err := c.ConvertFromMarkdown(Context{Source: source, Target: target}); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "---\ndescription: x\n---\n\nbody" {
		t.Errorf("expected verbatim copy, got: %s", got)
	}
}

func TestSimpleConverterConvertFromMergedWritesBodyOnly(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.md")

	c := newSimpleConverter("codex", ".codex/")
	if err := c.ConvertFromMerged(map[string]interface{}{"description": "x"}, "just the body", Context{Target: target}); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "just the body" {
		t.Errorf("got %q, want %q", got, "just the body")
	}
}
