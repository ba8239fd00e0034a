// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package convert

import "strings"

// ExtractDescriptionAndPrompt splits a markdown file's frontmatter
// description field from its remaining prompt body, skipping leading blank
// lines in the body. Returns ("", false, content) with content unchanged
// if there is no frontmatter block.
func ExtractDescriptionAndPrompt(content string) (description string, hasDescription bool, prompt string) {
	lines := strings.Split(content, "\n")
	if len(lines) < 3 || lines[0] != "---" {
		return "", false, content
	}

	endIdx := -1
	for i, l := range lines[1:] {
		if l == "---" {
			endIdx = i + 1
			break
		}
	}
	if endIdx < 0 {
		return "", false, content
	}

	frontmatter := strings.Join(lines[1:endIdx], "\n")
	desc, ok := extractDescriptionFromFrontmatter(frontmatter)

	promptLines := lines[endIdx+1:]
	start := 0
	for start < len(promptLines) && strings.TrimSpace(promptLines[start]) == "" {
		start++
	}
	promptBody := strings.Join(promptLines[start:], "\n")

	return desc, ok, promptBody
}

func extractDescriptionFromFrontmatter(frontmatter string) (string, bool) {
	for _, line := range strings.Split(frontmatter, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "description:") && !strings.HasPrefix(line, "description =") {
			continue
		}

		idx := strings.IndexAny(line, ":=")
		if idx < 0 {
			continue
		}
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		return value, true
	}
	return "", false
}
