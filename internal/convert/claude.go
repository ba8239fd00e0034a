// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package convert

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/archmagece/augent/internal/apperrors"
)

// ClaudeConverter composite-merges AGENTS.md content into CLAUDE.md: an
// existing CLAUDE.md is never replaced outright, only appended to.
type ClaudeConverter struct{}

func newClaudeConverter() *ClaudeConverter { return &ClaudeConverter{} }

func (c *ClaudeConverter) PlatformID() string { return "claude" }

func (c *ClaudeConverter) SupportsConversion(_, target string) bool {
	return strings.Contains(target, ".claude/") && filepath.Base(target) == "CLAUDE.md"
}

func (c *ClaudeConverter) ConvertFromMarkdown(ctx Context) error {
	content, err := os.ReadFile(ctx.Source)
	if err != nil {
		return apperrors.Newf(apperrors.CodeFileReadFailed, "read %s: %v", ctx.Source, err)
	}
	return compositeMergeAndWrite(string(content), ctx.Target)
}

func (c *ClaudeConverter) ConvertFromMerged(_ map[string]interface{}, body string, ctx Context) error {
	return compositeMergeAndWrite(body, ctx.Target)
}

func (c *ClaudeConverter) FileExtension() (string, bool) { return "", false }
