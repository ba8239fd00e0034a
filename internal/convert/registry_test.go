// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package convert

import "testing"

func TestRegisterBuiltinsCoversAllPlatforms(t *testing.T) {
	r := NewRegistry()
	r.RegisterBuiltins()

	want := []string{
		"antigravity", "augment", "claude", "claude-plugin", "codex",
		"copilot", "cursor", "factory", "gemini", "junie", "kilo", "kiro",
		"opencode", "qwen", "roo", "warp", "windsurf",
	}
	got := r.RegisteredPlatforms()
	if len(got) != len(want) {
		t.Fatalf("RegisteredPlatforms() returned %d entries, want %d: %v", len(got), len(want), got)
	}
	for _, id := range want {
		if _, ok := r.GetByPlatformID(id); !ok {
			t.Errorf("missing converter for platform %q", id)
		}
	}
}

func TestFindConverterByTargetPath(t *testing.T) {
	r := NewRegistry()
	r.RegisterBuiltins()

	cases := map[string]string{
		"/ws/.claude/CLAUDE.md":                  "claude",
		"/ws/.cursor/rules/style.mdc":            "cursor",
		"/ws/.github/instructions/style.md":      "copilot",
		"/ws/.junie/guidelines.md":               "junie",
		"/ws/.gemini/commands/review.md":         "gemini",
		"/ws/.qwen/QWEN.md":                      "qwen",
		"/ws/.warp/WARP.md":                      "warp",
		"/ws/.codex/commands/review.md":          "codex",
		"/ws/.opencode/command/review.md":        "opencode",
	}
	for target, wantID := range cases {
		c, ok := r.FindConverter("", target)
		if !ok {
			t.Errorf("FindConverter(%q) found nothing", target)
			continue
		}
		if c.PlatformID() != wantID {
			t.Errorf("FindConverter(%q) = %q, want %q", target, c.PlatformID(), wantID)
		}
	}
}

func TestFindConverterNoMatch(t *testing.T) {
	r := NewRegistry()
	r.RegisterBuiltins()

	if _, ok := r.FindConverter("", "/ws/knowledge/notes.md"); ok {
		t.Error("expected no converter to claim an unrecognized path")
	}
}

func TestRegisterIsIdempotentInOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(newSimpleConverter("codex", ".codex/"))
	r.Register(newSimpleConverter("codex", ".codex/"))

	if got := len(r.RegisteredPlatforms()); got != 1 {
		t.Errorf("re-registering the same id should not duplicate it, got %d entries", got)
	}
}
