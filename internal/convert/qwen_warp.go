// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package convert

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/archmagece/augent/internal/apperrors"
	"github.com/archmagece/augent/internal/platform"
)

// QwenConverter composite-merges content into .qwen/QWEN.md.
type QwenConverter struct{}

func newQwenConverter() *QwenConverter { return &QwenConverter{} }

func (c *QwenConverter) PlatformID() string { return "qwen" }

func (c *QwenConverter) SupportsConversion(_, target string) bool {
	return strings.Contains(target, ".qwen/") && filepath.Base(target) == "QWEN.md"
}

func (c *QwenConverter) ConvertFromMarkdown(ctx Context) error {
	content, err := os.ReadFile(ctx.Source)
	if err != nil {
		return apperrors.Newf(apperrors.CodeFileReadFailed, "read %s: %v", ctx.Source, err)
	}
	return compositeMergeAndWrite(string(content), ctx.Target)
}

func (c *QwenConverter) ConvertFromMerged(_ map[string]interface{}, body string, ctx Context) error {
	return compositeMergeAndWrite(body, ctx.Target)
}

func (c *QwenConverter) FileExtension() (string, bool) { return "", false }

// WarpConverter composite-merges content into .warp/WARP.md.
type WarpConverter struct{}

func newWarpConverter() *WarpConverter { return &WarpConverter{} }

func (c *WarpConverter) PlatformID() string { return "warp" }

func (c *WarpConverter) SupportsConversion(_, target string) bool {
	return strings.Contains(target, ".warp/") && filepath.Base(target) == "WARP.md"
}

func (c *WarpConverter) ConvertFromMarkdown(ctx Context) error {
	content, err := os.ReadFile(ctx.Source)
	if err != nil {
		return apperrors.Newf(apperrors.CodeFileReadFailed, "read %s: %v", ctx.Source, err)
	}
	return compositeMergeAndWrite(string(content), ctx.Target)
}

func (c *WarpConverter) ConvertFromMerged(_ map[string]interface{}, body string, ctx Context) error {
	return compositeMergeAndWrite(body, ctx.Target)
}

func (c *WarpConverter) FileExtension() (string, bool) { return "", false }

// compositeMergeAndWrite is shared by the converters whose target is a single
// accumulating file (CLAUDE.md, QWEN.md, WARP.md, guidelines.md): new content
// is appended to whatever is already on disk rather than replacing it.
func compositeMergeAndWrite(newContent, target string) error {
	existing, err := os.ReadFile(target)
	if err != nil && !os.IsNotExist(err) {
		return apperrors.Newf(apperrors.CodeFileReadFailed, "read %s: %v", target, err)
	}
	merged, err := platform.MergeComposite.MergeStrings(string(existing), newContent)
	if err != nil {
		return err
	}
	return writeContentToFile(target, merged)
}
