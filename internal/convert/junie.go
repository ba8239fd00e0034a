// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package convert

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/archmagece/augent/internal/apperrors"
)

// JunieConverter composite-merges rules and AGENTS.md content into a single
// .junie/guidelines.md, since JetBrains Junie reads one guidelines file.
type JunieConverter struct{}

func newJunieConverter() *JunieConverter { return &JunieConverter{} }

func (c *JunieConverter) PlatformID() string { return "junie" }

func (c *JunieConverter) SupportsConversion(_, target string) bool {
	if !strings.Contains(target, ".junie/") {
		return false
	}
	base := filepath.Base(target)
	return base == "guidelines.md" || base == "AGENTS.md"
}

func (c *JunieConverter) ConvertFromMarkdown(ctx Context) error {
	content, err := os.ReadFile(ctx.Source)
	if err != nil {
		return apperrors.Newf(apperrors.CodeFileReadFailed, "read %s: %v", ctx.Source, err)
	}
	return compositeMergeAndWrite(string(content), ctx.Target)
}

func (c *JunieConverter) ConvertFromMerged(_ map[string]interface{}, body string, ctx Context) error {
	return compositeMergeAndWrite(body, ctx.Target)
}

func (c *JunieConverter) FileExtension() (string, bool) { return "", false }
