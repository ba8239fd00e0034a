// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package platform

// DefaultPlatforms returns the built-in platform descriptors, including
// their detection patterns and universal-to-platform transform rules.
func DefaultPlatforms() []Platform {
	return []Platform{
		New("antigravity", "Google Antigravity", ".agent").
			WithDetection(".agent").
			WithTransform(NewTransformRule("rules/**/*.md", ".agent/rules/**/*.md")).
			WithTransform(NewTransformRule("commands/**/*.md", ".agent/workflows/**/*.md")).
			WithTransform(NewTransformRule("skills/**/*", ".agent/skills/**/*")),

		New("augment", "Augment Code", ".augment").
			WithDetection(".augment").
			WithTransform(NewTransformRule("rules/**/*.md", ".augment/rules/**/*.md")).
			WithTransform(NewTransformRule("commands/**/*.md", ".augment/commands/**/*.md")),

		New("claude", "Claude Code", ".claude").
			WithDetection(".claude").
			WithDetection("CLAUDE.md").
			WithTransform(NewTransformRule("commands/**/*.md", ".claude/commands/**/*.md")).
			WithTransform(NewTransformRule("rules/**/*.md", ".claude/rules/**/*.md")).
			WithTransform(NewTransformRule("agents/**/*.md", ".claude/agents/**/*.md")).
			WithTransform(NewTransformRule("skills/**/*.md", ".claude/skills/**/*.md")).
			WithTransform(NewTransformRule("mcp.jsonc", ".claude/mcp.json").WithMerge(MergeDeep)).
			WithTransform(NewTransformRule("AGENTS.md", "CLAUDE.md").WithMerge(MergeComposite)),

		New("claude-plugin", "Claude Code Plugin", ".claude-plugin").
			WithDetection(".claude-plugin/plugin.json").
			WithTransform(NewTransformRule("rules/**/*.md", "rules/**/*.md")).
			WithTransform(NewTransformRule("commands/**/*.md", "commands/**/*.md")).
			WithTransform(NewTransformRule("agents/**/*.md", "agents/**/*.md")).
			WithTransform(NewTransformRule("skills/**/*", "skills/**/*")).
			WithTransform(NewTransformRule("mcp.jsonc", ".mcp.json").WithMerge(MergeDeep)),

		New("cursor", "Cursor", ".cursor").
			WithDetection(".cursor").
			WithDetection("AGENTS.md").
			WithTransform(NewTransformRule("commands/**/*.md", ".cursor/commands/**/*.md")).
			WithTransform(NewTransformRule("rules/**/*.md", ".cursor/rules/**/*.mdc").WithExtension("mdc")).
			WithTransform(NewTransformRule("agents/**/*.md", ".cursor/agents/**/*.md")).
			WithTransform(NewTransformRule("skills/**/*", ".cursor/skills/**/*")).
			WithTransform(NewTransformRule("mcp.jsonc", ".cursor/mcp.json").WithMerge(MergeDeep)).
			WithTransform(NewTransformRule("AGENTS.md", "AGENTS.md").WithMerge(MergeComposite)),

		New("codex", "Codex CLI", ".codex").
			WithDetection(".codex").
			WithDetection("AGENTS.md").
			WithTransform(NewTransformRule("commands/**/*.md", ".codex/prompts/**/*.md")).
			WithTransform(NewTransformRule("skills/**/*", ".codex/skills/**/*")).
			WithTransform(NewTransformRule("mcp.jsonc", ".codex/config.toml").WithMerge(MergeDeep)),

		New("copilot", "GitHub Copilot", ".github").
			WithDetection(".github/copilot-instructions.md").
			WithDetection(".github/instructions").
			WithDetection(".github/prompts").
			WithTransform(NewTransformRule("rules/**/*.md", ".github/instructions/**/*.md").WithExtension("instructions.md")).
			WithTransform(NewTransformRule("commands/**/*.md", ".github/prompts/**/*.md").WithExtension("prompt.md")).
			WithTransform(NewTransformRule("AGENTS.md", ".github/AGENTS.md").WithMerge(MergeComposite)),

		New("factory", "Factory AI", ".factory").
			WithDetection(".factory").
			WithDetection("AGENTS.md").
			WithTransform(NewTransformRule("commands/**/*.md", ".factory/commands/**/*.md")).
			WithTransform(NewTransformRule("agents/**/*.md", ".factory/droids/**/*.md")).
			WithTransform(NewTransformRule("skills/**/*", ".factory/skills/**/*")).
			WithTransform(NewTransformRule("mcp.jsonc", ".factory/settings/mcp.json").WithMerge(MergeDeep)).
			WithTransform(NewTransformRule("AGENTS.md", "AGENTS.md").WithMerge(MergeComposite)),

		New("gemini", "Gemini CLI", ".gemini").
			WithDetection(".gemini").
			WithDetection("GEMINI.md").
			WithTransform(NewTransformRule("commands/**/*.md", ".gemini/commands/**/*.md")).
			WithTransform(NewTransformRule("agents/*.md", ".gemini/agents/*.md")).
			WithTransform(NewTransformRule("skills/**/*.md", ".gemini/skills/**/*.md")).
			WithTransform(NewTransformRule("mcp.jsonc", ".gemini/settings.json").WithMerge(MergeDeep)).
			WithTransform(NewTransformRule("AGENTS.md", "GEMINI.md").WithMerge(MergeComposite)).
			WithTransform(NewTransformRule("root/**/*", ".gemini/**/*")),

		New("junie", "JetBrains Junie", ".junie").
			WithDetection(".junie").
			WithTransform(NewTransformRule("rules/**/*.md", ".junie/guidelines.md").WithMerge(MergeComposite)).
			WithTransform(NewTransformRule("AGENTS.md", ".junie/guidelines.md").WithMerge(MergeComposite)),

		New("kilo", "Kilo Code", ".kilocode").
			WithDetection(".kilocode").
			WithDetection("AGENTS.md").
			WithTransform(NewTransformRule("rules/**/*.md", ".kilocode/rules/**/*.md")).
			WithTransform(NewTransformRule("commands/**/*.md", ".kilocode/workflows/**/*.md")).
			WithTransform(NewTransformRule("skills/**/*", ".kilocode/skills/**/*")).
			WithTransform(NewTransformRule("mcp.jsonc", ".kilocode/mcp.json").WithMerge(MergeDeep)).
			WithTransform(NewTransformRule("AGENTS.md", "AGENTS.md").WithMerge(MergeComposite)),

		New("kiro", "Kiro", ".kiro").
			WithDetection(".kiro").
			WithTransform(NewTransformRule("rules/**/*.md", ".kiro/steering/**/*.md")).
			WithTransform(NewTransformRule("mcp.jsonc", ".kiro/settings/mcp.json").WithMerge(MergeDeep)),

		New("opencode", "OpenCode", ".opencode").
			WithDetection(".opencode").
			WithTransform(NewTransformRule("commands/**/*.md", ".opencode/commands/**/*.md")).
			WithTransform(NewTransformRule("rules/**/*.md", ".opencode/rules/**/*.md")).
			WithTransform(NewTransformRule("agents/**/*.md", ".opencode/agents/**/*.md")).
			WithTransform(NewTransformRule("skills/**/*.md", ".opencode/skills/{name}/SKILL.md")).
			WithTransform(NewTransformRule("mcp.jsonc", ".opencode/opencode.json").WithMerge(MergeDeep)).
			WithTransform(NewTransformRule("AGENTS.md", "AGENTS.md").WithMerge(MergeComposite)),

		New("qwen", "Qwen Code", ".qwen").
			WithDetection(".qwen").
			WithDetection("QWEN.md").
			WithTransform(NewTransformRule("agents/**/*.md", ".qwen/agents/**/*.md")).
			WithTransform(NewTransformRule("skills/**/*", ".qwen/skills/**/*")).
			WithTransform(NewTransformRule("AGENTS.md", "QWEN.md").WithMerge(MergeComposite)).
			WithTransform(NewTransformRule("mcp.jsonc", ".qwen/settings.json").WithMerge(MergeDeep)),

		New("roo", "Roo Code", ".roo").
			WithDetection(".roo").
			WithDetection("AGENTS.md").
			WithTransform(NewTransformRule("commands/**/*.md", ".roo/commands/**/*.md")).
			WithTransform(NewTransformRule("skills/**/*", ".roo/skills/**/*")).
			WithTransform(NewTransformRule("mcp.jsonc", ".roo/mcp.json").WithMerge(MergeDeep)).
			WithTransform(NewTransformRule("AGENTS.md", "AGENTS.md").WithMerge(MergeComposite)),

		New("warp", "Warp", ".warp").
			WithDetection(".warp").
			WithDetection("WARP.md").
			WithTransform(NewTransformRule("AGENTS.md", "WARP.md").WithMerge(MergeComposite)),

		New("windsurf", "Windsurf", ".windsurf").
			WithDetection(".windsurf").
			WithTransform(NewTransformRule("rules/**/*.md", ".windsurf/rules/**/*.md")).
			WithTransform(NewTransformRule("skills/**/*", ".windsurf/skills/**/*")),
	}
}
