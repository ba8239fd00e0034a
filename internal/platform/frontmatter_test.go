// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package platform

import "testing"

func TestParseFrontmatterAndBody(t *testing.T) {
	content := "---\ndescription: test rule\n---\n\nbody text\n"
	fm, body, ok := ParseFrontmatterAndBody(content)
	if !ok {
		t.Fatal("expected frontmatter to parse")
	}
	if got, _ := GetStr(fm, "description"); got != "test rule" {
		t.Errorf("description = %q, want %q", got, "test rule")
	}
	if body != "body text\n" {
		t.Errorf("body = %q", body)
	}
}

func TestParseFrontmatterAndBodyNoDelimiter(t *testing.T) {
	_, _, ok := ParseFrontmatterAndBody("just plain text\nno frontmatter\n")
	if ok {
		t.Error("expected ok=false for content without frontmatter")
	}
}

func TestMergeFrontmatterForPlatform(t *testing.T) {
	fm := map[string]interface{}{
		"description": "common description",
		"claude": map[string]interface{}{
			"description": "claude-specific description",
		},
	}
	merged := MergeFrontmatterForPlatform(fm, "claude", KnownPlatformIDs)
	if got, _ := GetStr(merged, "description"); got != "claude-specific description" {
		t.Errorf("platform override should win, got %q", got)
	}
	if _, exists := merged["claude"]; exists {
		t.Error("platform-named block should not appear in merged output")
	}
}

func TestMergeFrontmatterForPlatformNoOverride(t *testing.T) {
	fm := map[string]interface{}{"description": "common description"}
	merged := MergeFrontmatterForPlatform(fm, "cursor", KnownPlatformIDs)
	if got, _ := GetStr(merged, "description"); got != "common description" {
		t.Errorf("expected common description unchanged, got %q", got)
	}
}
