// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package convert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpencodeConverterAgentFrontmatter(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "reviewer.md")

	c := newOpencodeConverter()
	merged := map[string]interface{}{
		"description": "Reviews code",
		"model":       "gpt-5",
	}
	ctx := Context{Source: "agents/reviewer.md", Target: target}
	if err := c.ConvertFromMerged(merged, "You are a reviewer.", ctx); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	s := string(got)
	if !strings.Contains(s, "mode: subagent") {
		t.Errorf("expected agent frontmatter to set mode: subagent, got: %s", s)
	}
	if !strings.Contains(s, "model: gpt-5") {
		t.Errorf("expected model to be carried through, got: %s", s)
	}
	if !strings.Contains(s, "You are a reviewer.") {
		t.Errorf("expected body to be preserved, got: %s", s)
	}
}

func TestOpencodeConverterCommandFrontmatter(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "review.md")

	c := newOpencodeConverter()
	merged := map[string]interface{}{"description": "Run a review"}
	ctx := Context{Source: "commands/review.md", Target: target}
	if err := c.ConvertFromMerged(merged, "Do the review.", ctx); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(got), "mode: subagent") {
		t.Errorf("command frontmatter should not carry agent-only fields, got: %s", got)
	}
}
