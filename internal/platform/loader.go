// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package platform

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/archmagece/augent/internal/apperrors"
)

// Loader resolves the effective platform list for a workspace by layering
// built-in platforms under workspace and global platforms.jsonc overrides.
type Loader struct {
	WorkspaceRoot string
}

// NewLoader creates a Loader rooted at workspaceRoot.
func NewLoader(workspaceRoot string) *Loader {
	return &Loader{WorkspaceRoot: workspaceRoot}
}

// Load returns the default platforms merged with workspace- and
// user-level platforms.jsonc overrides, in that priority order (later
// sources override earlier ones by platform id).
func (l *Loader) Load() ([]Platform, error) {
	platforms := DefaultPlatforms()

	workspacePlatforms, err := l.loadPlatformsFile(filepath.Join(l.WorkspaceRoot, "platforms.jsonc"))
	if err != nil {
		return nil, err
	}
	if workspacePlatforms != nil {
		platforms = mergePlatforms(platforms, workspacePlatforms)
	}

	globalPlatforms, err := l.loadGlobalPlatforms()
	if err != nil {
		return nil, err
	}
	if globalPlatforms != nil {
		platforms = mergePlatforms(platforms, globalPlatforms)
	}

	return platforms, nil
}

func (l *Loader) loadGlobalPlatforms() ([]Platform, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, apperrors.Newf(apperrors.CodePlatformConfigFailed, "could not determine config directory: %v", err)
	}
	return l.loadPlatformsFile(filepath.Join(configDir, "augent", "platforms.jsonc"))
}

func (l *Loader) loadPlatformsFile(path string) ([]Platform, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, apperrors.Newf(apperrors.CodeFileReadFailed, "read %s: %v", path, err)
	}

	jsonContent := StripJSONCComments(string(content))
	return ParsePlatformsJSON(jsonContent, path)
}

// mergePlatforms layers override entries onto base by platform id: matching
// ids replace the base entry entirely, unmatched ids are appended.
func mergePlatforms(base, overrides []Platform) []Platform {
	merged := append([]Platform(nil), base...)
	for _, p := range overrides {
		replaced := false
		for i := range merged {
			if merged[i].ID == p.ID {
				merged[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, p)
		}
	}
	return merged
}

// platformsFile mirrors the two accepted platforms.jsonc shapes: a bare
// array, or an object carrying a "platforms" array.
type platformsFile struct {
	Platforms []Platform `json:"platforms"`
}

// ParsePlatformsJSON parses either a JSON array of platforms or an object
// with a "platforms" array, for use with workspace/global platforms.jsonc
// overrides.
func ParsePlatformsJSON(jsonContent, path string) ([]Platform, error) {
	trimmed := firstNonSpace(jsonContent)

	if trimmed == '[' {
		var platforms []Platform
		if err := json.Unmarshal([]byte(jsonContent), &platforms); err != nil {
			return nil, apperrors.Newf(apperrors.CodeConfigParseFailed, "%s: %v", path, err)
		}
		return platforms, nil
	}

	if trimmed == '{' {
		var wrapper platformsFile
		if err := json.Unmarshal([]byte(jsonContent), &wrapper); err != nil {
			return nil, apperrors.Newf(apperrors.CodeConfigParseFailed, "%s: %v", path, err)
		}
		if wrapper.Platforms == nil {
			return nil, apperrors.Newf(apperrors.CodeConfigParseFailed, "%s: expected 'platforms' array", path)
		}
		return wrapper.Platforms, nil
	}

	return nil, apperrors.Newf(apperrors.CodeConfigParseFailed,
		"%s: expected array of platforms or object with 'platforms' key", path)
}

func firstNonSpace(s string) byte {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			return c
		}
	}
	return 0
}

// StripJSONCComments removes // line comments and /* */ block comments from
// JSONC content, leaving string literals untouched.
func StripJSONCComments(content string) string {
	var result []byte
	runes := []rune(content)
	n := len(runes)

	inString := false
	inSingleComment := false
	inMultiComment := false

	for i := 0; i < n; i++ {
		c := runes[i]
		var next rune
		if i+1 < n {
			next = runes[i+1]
		}

		switch {
		case inSingleComment:
			if c == '\n' {
				inSingleComment = false
				result = append(result, byte(c))
			}
		case inMultiComment:
			if c == '*' && next == '/' {
				inMultiComment = false
				i++
			}
		case inString:
			result = appendRune(result, c)
			if c == '"' && (i == 0 || runes[i-1] != '\\') {
				inString = false
			}
		default:
			switch {
			case c == '/' && next == '/':
				inSingleComment = true
				i++
			case c == '/' && next == '*':
				inMultiComment = true
				i++
			case c == '"':
				inString = true
				result = appendRune(result, c)
			default:
				result = appendRune(result, c)
			}
		}
	}

	return string(result)
}

func appendRune(b []byte, r rune) []byte {
	return append(b, []byte(string(r))...)
}
