// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package installer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/archmagece/augent/internal/platform"
)

func TestMergeMultipleInstallationsComposite(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "AGENTS.md")
	writeFile(t, target, "existing guidance")

	srcA := filepath.Join(dir, "a.md")
	srcB := filepath.Join(dir, "b.md")
	writeFile(t, srcA, "guidance from bundle a")
	writeFile(t, srcB, "guidance from bundle b")

	err := MergeMultipleInstallations(target, []PendingInstallation{{SourcePath: srcA}, {SourcePath: srcB}}, platform.MergeComposite)
	if err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	s := string(got)
	for _, want := range []string{"existing guidance", "guidance from bundle a", "guidance from bundle b"} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %q in merged result: %s", want, s)
		}
	}
}

func TestMergeMultipleInstallationsReplaceKeepsLast(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "config.json")
	srcA := filepath.Join(dir, "a.json")
	srcB := filepath.Join(dir, "b.json")
	writeFile(t, srcA, `{"from": "a"}`)
	writeFile(t, srcB, `{"from": "b"}`)

	err := MergeMultipleInstallations(target, []PendingInstallation{{SourcePath: srcA}, {SourcePath: srcB}}, platform.MergeReplace)
	if err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(got), `"from": "a"`) {
		t.Errorf("Replace strategy should only keep the last installation, got: %s", got)
	}
	if !strings.Contains(string(got), `"from": "b"`) {
		t.Errorf("expected last installation's content, got: %s", got)
	}
}

func TestMergeMultipleInstallationsDeepMergesJSON(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "mcp.json")
	srcA := filepath.Join(dir, "a.json")
	srcB := filepath.Join(dir, "b.json")
	writeFile(t, srcA, `{"servers": {"a": {"command": "a"}}}`)
	writeFile(t, srcB, `{"servers": {"b": {"command": "b"}}}`)

	err := MergeMultipleInstallations(target, []PendingInstallation{{SourcePath: srcA}, {SourcePath: srcB}}, platform.MergeDeep)
	if err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	s := string(got)
	if !strings.Contains(s, `"a"`) || !strings.Contains(s, `"b"`) {
		t.Errorf("expected both servers present after deep merge, got: %s", s)
	}
}

func TestMergeMultipleInstallationsEmpty(t *testing.T) {
	if err := MergeMultipleInstallations("/nonexistent", nil, platform.MergeReplace); err != nil {
		t.Errorf("expected no-op for empty installation list, got error: %v", err)
	}
}
