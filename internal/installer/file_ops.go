// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package installer

import (
	"io"
	"os"
	"path/filepath"

	"github.com/archmagece/augent/internal/apperrors"
	"github.com/archmagece/augent/internal/convert"
	"github.com/archmagece/augent/internal/platform"
)

// EnsureParentDir creates target's parent directory if it doesn't exist.
func EnsureParentDir(target string) error {
	dir := filepath.Dir(target)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperrors.Newf(apperrors.CodeFileWriteFailed, "create directory %s: %v", dir, err)
	}
	return nil
}

// CopyFile installs source at target, applying platform-specific format
// conversion for text resource files and a verbatim byte copy for
// everything else (binaries, and files outside any recognized resource
// directory).
func CopyFile(source, target string, platforms []platform.Platform, workspaceRoot string, registry *convert.Registry) error {
	isResource := IsPlatformResourceFile(target, platforms, workspaceRoot)
	isBinary := IsLikelyBinaryFile(source)

	if !isResource || isBinary {
		return performSimpleCopy(source, target)
	}
	return handleTextFile(source, target, platforms, workspaceRoot, registry)
}

func performSimpleCopy(source, target string) error {
	if err := EnsureParentDir(target); err != nil {
		return err
	}
	in, err := os.Open(source)
	if err != nil {
		return apperrors.Newf(apperrors.CodeFileReadFailed, "read %s: %v", source, err)
	}
	defer in.Close()

	out, err := os.Create(target)
	if err != nil {
		return apperrors.Newf(apperrors.CodeFileWriteFailed, "write %s: %v", target, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return apperrors.Newf(apperrors.CodeFileWriteFailed, "write %s: %v", target, err)
	}
	return nil
}

func handleTextFile(source, target string, platforms []platform.Platform, workspaceRoot string, registry *convert.Registry) error {
	if err := EnsureParentDir(target); err != nil {
		return err
	}

	content, err := os.ReadFile(source)
	if err != nil {
		return apperrors.Newf(apperrors.CodeFileReadFailed, "read %s: %v", source, err)
	}

	if handled, err := handleFrontmatterFile(string(content), target, platforms, workspaceRoot, registry); handled {
		return err
	}

	if converter, ok := registry.FindConverter(source, target); ok {
		return converter.ConvertFromMarkdown(convert.Context{Source: source, Target: target, WorkspaceRoot: workspaceRoot})
	}

	if err := os.WriteFile(target, content, 0o644); err != nil {
		return apperrors.Newf(apperrors.CodeFileWriteFailed, "write %s: %v", target, err)
	}
	return nil
}

// handleFrontmatterFile applies universal-frontmatter merge + platform
// conversion when content parses as frontmatter markdown. The bool return
// reports whether it took ownership of writing the file at all (a parse
// failure means the caller should fall through to its own handling).
func handleFrontmatterFile(content, target string, platforms []platform.Platform, workspaceRoot string, registry *convert.Registry) (bool, error) {
	fm, body, ok := platform.ParseFrontmatterAndBody(content)
	if !ok {
		return false, nil
	}

	known := make([]string, len(platforms))
	for i, p := range platforms {
		known[i] = p.ID
	}

	pid, ok := PlatformIDFromTarget(target, platforms, workspaceRoot)
	if !ok {
		return true, convert.WriteMergedFrontmatterMarkdown(fm, body, target)
	}

	merged := platform.MergeFrontmatterForPlatform(fm, pid, known)

	if converter, found := registry.FindConverter(target, target); found {
		ctx := convert.Context{Source: target, Target: target, WorkspaceRoot: workspaceRoot}
		return true, converter.ConvertFromMerged(merged, body, ctx)
	}

	return true, convert.WriteMergedFrontmatterMarkdown(merged, body, target)
}
