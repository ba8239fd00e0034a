// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package installer

import (
	"path/filepath"
	"strings"

	"github.com/archmagece/augent/internal/platform"
)

// binaryExtensions are file extensions that must be copied byte-for-byte
// rather than read as text and run through frontmatter parsing.
var binaryExtensions = map[string]bool{
	"zip": true, "pdf": true, "png": true, "jpg": true, "jpeg": true,
	"gif": true, "webp": true, "ico": true, "woff": true, "woff2": true,
	"ttf": true, "otf": true, "eot": true, "mp3": true, "mp4": true,
	"webm": true, "avi": true, "mov": true, "exe": true, "dll": true,
	"so": true, "dylib": true, "bin": true,
}

// IsLikelyBinaryFile reports whether path's extension marks it as binary
// content that should never be parsed as text.
func IsLikelyBinaryFile(path string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return binaryExtensions[ext]
}

// resourceDirMarkers are the universal resource directory names; a target
// path containing any of them is a platform resource file subject to
// frontmatter parsing and merge, as opposed to an opaque asset.
var resourceDirMarkers = []string{
	"commands/", "rules/", "agents/", "skills/", "workflows/",
	"prompts/", "instructions/", "guidelines", "droids/", "steering/",
}

// PlatformIDFromTarget returns the id of the platform whose directory is a
// prefix of target, if any.
func PlatformIDFromTarget(target string, platforms []platform.Platform, workspaceRoot string) (string, bool) {
	for _, p := range platforms {
		dir := p.DirectoryPath(workspaceRoot)
		if target == dir || strings.HasPrefix(target, dir+string(filepath.Separator)) || strings.HasPrefix(filepath.ToSlash(target), filepath.ToSlash(dir)+"/") {
			return p.ID, true
		}
	}
	return "", false
}

// IsPlatformResourceFile reports whether target lives under a platform
// directory and inside a recognized resource-type directory, meaning it
// should go through universal frontmatter merge rather than a raw copy.
func IsPlatformResourceFile(target string, platforms []platform.Platform, workspaceRoot string) bool {
	if _, ok := PlatformIDFromTarget(target, platforms, workspaceRoot); !ok {
		return false
	}
	pathStr := filepath.ToSlash(target)
	for _, marker := range resourceDirMarkers {
		if strings.Contains(pathStr, marker) {
			return true
		}
	}
	return false
}

// IsGeminiCommandFile reports whether target is a .gemini/commands/*.md file.
func IsGeminiCommandFile(target string) bool {
	path := filepath.ToSlash(target)
	return strings.Contains(path, ".gemini/commands/") && strings.HasSuffix(path, ".md")
}

// IsOpencodeMetadataFile reports whether target is an OpenCode
// commands/agents/skills markdown file.
func IsOpencodeMetadataFile(target string) bool {
	path := filepath.ToSlash(target)
	if !strings.HasSuffix(path, ".md") {
		return false
	}
	return strings.Contains(path, ".opencode/commands/") ||
		strings.Contains(path, ".opencode/agents/") ||
		strings.Contains(path, ".opencode/skills/")
}
