// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package platform

import "testing"

func TestTransformSimpleRule(t *testing.T) {
	p := New("claude", "Claude Code", ".claude").
		WithTransform(NewTransformRule("commands/**/*.md", ".claude/commands/**/*.md"))

	tr := NewTransformer()
	result := tr.Transform("commands/git/review.md", p, "/workspace")
	if result.TargetPath != "/workspace/.claude/commands/git/review.md" {
		t.Errorf("TargetPath = %q", result.TargetPath)
	}
	if result.MergeStrategy != MergeReplace {
		t.Errorf("MergeStrategy = %q, want replace", result.MergeStrategy)
	}
}

func TestTransformExtensionOverride(t *testing.T) {
	p := New("cursor", "Cursor", ".cursor").
		WithTransform(NewTransformRule("rules/**/*.md", ".cursor/rules/**/*.mdc").WithExtension("mdc"))

	tr := NewTransformer()
	result := tr.Transform("rules/team/style.md", p, "/workspace")
	if result.TargetPath != "/workspace/.cursor/rules/team/style.mdc" {
		t.Errorf("TargetPath = %q", result.TargetPath)
	}
}

func TestTransformNameVariable(t *testing.T) {
	p := New("claude", "Claude Code", ".claude").
		WithTransform(NewTransformRule("skills/**/*", ".claude/skills/{name}/**/*"))

	tr := NewTransformerWithLeafSkillDirs(map[string]bool{"skills/my-skill": true})
	result := tr.Transform("skills/my-skill/SKILL.md", p, "/workspace")
	if result.TargetPath != "/workspace/.claude/skills/my-skill/SKILL.md" {
		t.Errorf("TargetPath = %q", result.TargetPath)
	}
}

func TestTransformNoMatchingRuleFallsBackToPlatformDirectory(t *testing.T) {
	p := New("claude", "Claude Code", ".claude")

	tr := NewTransformer()
	result := tr.Transform("knowledge/notes.md", p, "/workspace")
	if result.TargetPath != "/workspace/.claude/knowledge/notes.md" {
		t.Errorf("TargetPath = %q", result.TargetPath)
	}
	if result.MergeStrategy != MergeReplace {
		t.Errorf("expected default MergeReplace for unmatched rule")
	}
}

func TestFindTransformRule(t *testing.T) {
	p := New("claude", "Claude Code", ".claude").
		WithTransform(NewTransformRule("rules/**/*.md", ".claude/rules/**/*.md"))

	tr := NewTransformer()
	if _, ok := tr.FindTransformRule(p, "rules/style.md"); !ok {
		t.Error("expected rule to match rules/style.md")
	}
	if _, ok := tr.FindTransformRule(p, "commands/review.md"); ok {
		t.Error("expected no rule to match commands/review.md")
	}
}
