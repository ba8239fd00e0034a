// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package convert

import (
	"path/filepath"
	"strings"
)

// CopilotConverter claims files under .github/instructions and
// .github/prompts, and an AGENTS.md under .github/. The distinct
// instructions.md / prompt.md extensions come from the platform's own
// transform rules, not from this converter.
type CopilotConverter struct{}

func newCopilotConverter() *CopilotConverter { return &CopilotConverter{} }

func (c *CopilotConverter) PlatformID() string { return "copilot" }

func (c *CopilotConverter) SupportsConversion(_, target string) bool {
	if !strings.Contains(target, ".github/") {
		return false
	}
	if strings.Contains(target, "/instructions/") || strings.Contains(target, "/prompts/") {
		return true
	}
	return filepath.Base(target) == "AGENTS.md"
}

func (c *CopilotConverter) ConvertFromMarkdown(ctx Context) error {
	return copyMarkdownFile(ctx)
}

func (c *CopilotConverter) ConvertFromMerged(_ map[string]interface{}, body string, ctx Context) error {
	return writeBodyToTarget(body, ctx)
}

func (c *CopilotConverter) FileExtension() (string, bool) { return "", false }
