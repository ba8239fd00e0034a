// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package convert

import (
	"os"
	"strings"

	"github.com/archmagece/augent/internal/apperrors"
	"github.com/archmagece/augent/internal/platform"
)

// OpencodeConverter rewrites a resource's frontmatter into the shape
// opencode expects for its three resource kinds (command, agent, skill),
// rather than passing the universal frontmatter through unchanged.
type OpencodeConverter struct{}

func newOpencodeConverter() *OpencodeConverter { return &OpencodeConverter{} }

func (c *OpencodeConverter) PlatformID() string { return "opencode" }

func (c *OpencodeConverter) SupportsConversion(_, target string) bool {
	return strings.Contains(target, ".opencode/")
}

func (c *OpencodeConverter) ConvertFromMarkdown(ctx Context) error {
	content, err := os.ReadFile(ctx.Source)
	if err != nil {
		return apperrors.Newf(apperrors.CodeFileReadFailed, "read %s: %v", ctx.Source, err)
	}
	fm, body, ok := platform.ParseFrontmatterAndBody(string(content))
	if !ok {
		fm, body = map[string]interface{}{}, string(content)
	}
	return c.ConvertFromMerged(fm, body, ctx)
}

func (c *OpencodeConverter) ConvertFromMerged(merged map[string]interface{}, body string, ctx Context) error {
	built := c.buildFrontmatter(merged, ctx.Source)
	yamlStr := strings.TrimRight(platform.SerializeToYAML(built), "\n")

	var out string
	if yamlStr == "" || yamlStr == "{}" {
		out = body
	} else {
		out = "---\n" + yamlStr + "\n---\n\n" + body
	}
	return writeContentToFile(ctx.Target, out)
}

func (c *OpencodeConverter) FileExtension() (string, bool) { return "", false }

// buildFrontmatter maps universal frontmatter keys onto opencode's expected
// field names, which differ by resource kind (command/agent/skill).
func (c *OpencodeConverter) buildFrontmatter(fm map[string]interface{}, sourcePath string) map[string]interface{} {
	out := map[string]interface{}{}

	if desc, ok := platform.GetStr(fm, "description"); ok && desc != "" {
		out["description"] = desc
	}

	// A leading "/" lets a bundle-relative path like "agents/x.md" match too.
	sourcePath = "/" + strings.ReplaceAll(sourcePath, "\\", "/")
	switch {
	case strings.Contains(sourcePath, "/agents/"):
		if model, ok := platform.GetStr(fm, "model"); ok && model != "" {
			out["model"] = model
		}
		out["mode"] = "subagent"
		if tools, ok := fm["tools"]; ok {
			out["tools"] = tools
		}
	case strings.Contains(sourcePath, "/commands/"):
		if agent, ok := platform.GetStr(fm, "agent"); ok && agent != "" {
			out["agent"] = agent
		}
	case strings.Contains(sourcePath, "/skills/"):
		// description only; opencode reads skill content from the body.
	}

	return out
}
