// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package convert

import (
	"strings"

	"github.com/archmagece/augent/internal/platform"
)

// WriteMergedFrontmatterMarkdown serializes merged frontmatter back to YAML
// and writes it with the body as a standard "---\n...\n---\n\nbody" markdown
// file, used as the fallback when no platform-specific converter claims the
// target path.
func WriteMergedFrontmatterMarkdown(merged map[string]interface{}, body, target string) error {
	yamlStr := strings.TrimRight(platform.SerializeToYAML(merged), "\n")

	var out string
	if yamlStr == "" || yamlStr == "{}" {
		out = "---\n---\n\n" + body
	} else {
		out = "---\n" + yamlStr + "\n---\n\n" + body
	}

	return writeContentToFile(target, out)
}
