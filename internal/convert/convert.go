// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package convert implements the per-platform format converters that turn a
// universal resource file (plain markdown or YAML-frontmatter markdown)
// into the shape a target platform expects.
package convert

import (
	"os"
	"path/filepath"

	"github.com/archmagece/augent/internal/apperrors"
)

// Context carries the source/target paths and workspace root for a single
// conversion call.
type Context struct {
	Source        string
	Target        string
	WorkspaceRoot string
}

// FormatConverter adapts universal resource content into a platform's
// expected on-disk format. Implementations are registered with a Registry
// and looked up by the target path they claim via SupportsConversion.
type FormatConverter interface {
	PlatformID() string
	SupportsConversion(source, target string) bool
	ConvertFromMarkdown(ctx Context) error
	ConvertFromMerged(merged map[string]interface{}, body string, ctx Context) error
	FileExtension() (string, bool)
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperrors.Newf(apperrors.CodeFileWriteFailed, "create directory %s: %v", dir, err)
	}
	return nil
}

func writeContentToFile(target, content string) error {
	if err := ensureParentDir(target); err != nil {
		return err
	}
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return apperrors.Newf(apperrors.CodeFileWriteFailed, "write %s: %v", target, err)
	}
	return nil
}

// copyMarkdownFile reads ctx.Source verbatim and writes it to ctx.Target.
func copyMarkdownFile(ctx Context) error {
	content, err := os.ReadFile(ctx.Source)
	if err != nil {
		return apperrors.Newf(apperrors.CodeFileReadFailed, "read %s: %v", ctx.Source, err)
	}
	return writeContentToFile(ctx.Target, string(content))
}

// writeBodyToTarget writes a merged frontmatter's body straight to the
// target, used by converters that only care about the rendered body.
func writeBodyToTarget(body string, ctx Context) error {
	return writeContentToFile(ctx.Target, body)
}
