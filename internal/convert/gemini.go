// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package convert

import (
	"fmt"
	"os"
	"strings"

	"github.com/archmagece/augent/internal/apperrors"
)

// GeminiConverter turns a command's markdown (frontmatter description plus
// prompt body) into the TOML file format expected under .gemini/commands.
type GeminiConverter struct{}

func newGeminiConverter() *GeminiConverter { return &GeminiConverter{} }

func (c *GeminiConverter) PlatformID() string { return "gemini" }

func (c *GeminiConverter) SupportsConversion(_, target string) bool {
	return strings.Contains(target, ".gemini/commands/") && strings.HasSuffix(target, ".md")
}

func (c *GeminiConverter) ConvertFromMarkdown(ctx Context) error {
	content, err := os.ReadFile(ctx.Source)
	if err != nil {
		return apperrors.Newf(apperrors.CodeFileReadFailed, "read %s: %v", ctx.Source, err)
	}
	description, hasDescription, prompt := ExtractDescriptionAndPrompt(string(content))
	return writeContentToFile(ctx.Target, buildTOMLContent(description, hasDescription, prompt))
}

func (c *GeminiConverter) ConvertFromMerged(merged map[string]interface{}, body string, ctx Context) error {
	description, hasDescription := "", false
	if v, ok := merged["description"]; ok {
		description = fmt.Sprintf("%v", v)
		hasDescription = true
	}
	return writeContentToFile(ctx.Target, buildTOMLContent(description, hasDescription, body))
}

func (c *GeminiConverter) FileExtension() (string, bool) { return "toml", true }

func buildTOMLContent(description string, hasDescription bool, prompt string) string {
	var b strings.Builder
	if hasDescription && description != "" {
		fmt.Fprintf(&b, "description = %s\n", escapeTOMLString(description))
	}
	fmt.Fprintf(&b, "prompt = %s\n", escapeTOMLString(prompt))
	return b.String()
}

// escapeTOMLString renders a Go string as a TOML basic string literal.
// Other control characters are written as \xNN.
func escapeTOMLString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
