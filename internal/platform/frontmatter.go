// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package platform

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// KnownPlatformIDs lists every platform id that can appear as a
// platform-specific override block in a resource's frontmatter. Must track
// the ids returned by DefaultPlatforms.
var KnownPlatformIDs = []string{
	"antigravity",
	"augment",
	"claude",
	"claude-plugin",
	"codex",
	"copilot",
	"cursor",
	"factory",
	"gemini",
	"junie",
	"kilo",
	"kiro",
	"opencode",
	"qwen",
	"roo",
	"warp",
	"windsurf",
}

// ParseFrontmatterAndBody splits content into YAML frontmatter (delimited by
// a leading and trailing "---" line) and the remaining body. ok is false if
// content has no frontmatter block or the block fails to parse as a mapping.
func ParseFrontmatterAndBody(content string) (fm map[string]interface{}, body string, ok bool) {
	lines := strings.Split(content, "\n")
	if len(lines) < 3 || strings.TrimSpace(lines[0]) != "---" {
		return nil, "", false
	}

	endIdx := -1
	for i, l := range lines[1:] {
		if strings.TrimSpace(l) == "---" {
			endIdx = i + 1
			break
		}
	}
	if endIdx < 0 {
		return nil, "", false
	}

	frontmatterStr := strings.Join(lines[1:endIdx], "\n")
	bodyStr := strings.TrimPrefix(strings.Join(lines[endIdx+1:], "\n"), "\n")

	var value map[string]interface{}
	if err := yaml.Unmarshal([]byte(frontmatterStr), &value); err != nil {
		return nil, "", false
	}
	if value == nil {
		value = map[string]interface{}{}
	}
	return value, bodyStr, true
}

// MergeFrontmatterForPlatform returns common frontmatter keys (those that
// aren't a known platform id) plus the given platform's own override block,
// with platform keys winning over common ones.
func MergeFrontmatterForPlatform(frontmatter map[string]interface{}, platformID string, knownPlatformIDs []string) map[string]interface{} {
	known := make(map[string]bool, len(knownPlatformIDs))
	for _, id := range knownPlatformIDs {
		known[id] = true
	}

	out := map[string]interface{}{}
	var platformBlock interface{}

	for k, v := range frontmatter {
		if k == platformID {
			platformBlock = v
		} else if !known[k] {
			out[k] = v
		}
	}

	if block, ok := platformBlock.(map[string]interface{}); ok {
		for k, v := range block {
			out[k] = v
		}
	}

	return out
}

// SerializeToYAML renders a frontmatter value as a YAML document, returning
// an empty string if it cannot be serialized.
func SerializeToYAML(value interface{}) string {
	out, err := yaml.Marshal(value)
	if err != nil {
		return ""
	}
	return string(out)
}

// GetStr reads a scalar value from frontmatter by key and renders it as a
// string, returning ok=false if the key is absent or not a scalar.
func GetStr(m map[string]interface{}, key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	switch val := v.(type) {
	case string:
		return val, true
	case int, int64, float64, bool:
		return fmt.Sprintf("%v", val), true
	default:
		return "", false
	}
}
