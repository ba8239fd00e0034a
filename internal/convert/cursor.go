// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package convert

import (
	"path/filepath"
	"strings"
)

// CursorConverter claims .cursor/rules/*.mdc files and the .cursor/AGENTS.md
// file, writing content unchanged but forcing the .mdc extension on rules.
type CursorConverter struct{}

func newCursorConverter() *CursorConverter { return &CursorConverter{} }

func (c *CursorConverter) PlatformID() string { return "cursor" }

func (c *CursorConverter) SupportsConversion(_, target string) bool {
	if strings.Contains(target, ".cursor/rules/") && strings.HasSuffix(target, ".mdc") {
		return true
	}
	return strings.Contains(target, ".cursor/") && filepath.Base(target) == "AGENTS.md"
}

func (c *CursorConverter) ConvertFromMarkdown(ctx Context) error {
	return copyMarkdownFile(ctx)
}

func (c *CursorConverter) ConvertFromMerged(_ map[string]interface{}, body string, ctx Context) error {
	return writeBodyToTarget(body, ctx)
}

func (c *CursorConverter) FileExtension() (string, bool) { return "mdc", true }
