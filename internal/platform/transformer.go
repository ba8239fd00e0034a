// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package platform

import (
	"path"
	"strings"

	"github.com/gobwas/glob"
)

// TransformResult is the outcome of transforming a universal resource path
// for a specific platform.
type TransformResult struct {
	TargetPath    string
	MergeStrategy MergeStrategy
}

// Transformer converts universal resource paths into platform-specific
// target paths, substituting the {name} template variable and expanding
// wildcard segments.
type Transformer struct {
	leafSkillDirs map[string]bool
}

// NewTransformer creates a transformer with no skill-directory context.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// NewTransformerWithLeafSkillDirs creates a transformer aware of the set of
// leaf skill directories (skill directories that directly contain a
// SKILL.md and aren't nested under another skill directory).
func NewTransformerWithLeafSkillDirs(leafSkillDirs map[string]bool) *Transformer {
	return &Transformer{leafSkillDirs: leafSkillDirs}
}

// Transform computes the target path and merge strategy for installing
// universalPath under the given platform.
func (t *Transformer) Transform(universalPath string, p Platform, workspaceRoot string) TransformResult {
	rule, ok := t.FindTransformRule(p, universalPath)
	if !ok {
		target := path.Join(p.DirectoryPath(workspaceRoot), universalPath)
		return TransformResult{TargetPath: target, MergeStrategy: MergeReplace}
	}

	target := t.applyTransformRule(rule, universalPath)
	absolute := path.Join(workspaceRoot, target)
	return TransformResult{TargetPath: absolute, MergeStrategy: rule.Merge}
}

// FindTransformRule returns the first transform rule on the platform whose
// "from" glob matches resourcePath.
func (t *Transformer) FindTransformRule(p Platform, resourcePath string) (TransformRule, bool) {
	pathStr := toSlash(resourcePath)

	for _, rule := range p.Transforms {
		g, err := glob.Compile(rule.From, '/')
		if err != nil {
			if rule.From == pathStr {
				return rule, true
			}
			continue
		}
		if g.Match(pathStr) {
			return rule, true
		}
		// A "**/" segment also matches zero directories, so
		// "rules/**/*.md" matches "rules/lint.md".
		if strings.Contains(rule.From, "**/") {
			if g2, err := glob.Compile(strings.ReplaceAll(rule.From, "**/", ""), '/'); err == nil && g2.Match(pathStr) {
				return rule, true
			}
		}
	}
	return TransformRule{}, false
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// applyTransformRule computes the concrete target path for resourcePath
// given a matched rule: substitutes {name}, expands a "**" wildcard segment
// with the path's relative remainder, and applies any extension override.
func (t *Transformer) applyTransformRule(rule TransformRule, resourcePath string) string {
	pathStr := toSlash(resourcePath)
	skillRoot, hasSkillRoot := t.findSkillRoot(pathStr)

	target := substituteNameVariable(rule.To, pathStr, skillRoot, hasSkillRoot, resourcePath)
	relativePart := computeRelativePart(rule, rule.To, pathStr, skillRoot, hasSkillRoot)
	target = processWildcards(target, relativePart, rule.Extension)
	target = addExtension(target, rule.Extension)

	return toSlash(target)
}

func substituteNameVariable(target, pathStr, skillRoot string, hasSkillRoot bool, resourcePath string) string {
	if !strings.Contains(target, "{name}") {
		return target
	}
	name := computeNameVariable(pathStr, skillRoot, hasSkillRoot, resourcePath)
	if name == "" {
		return target
	}
	return strings.ReplaceAll(target, "{name}", name)
}

func computeRelativePart(rule TransformRule, target, pathStr, skillRoot string, hasSkillRoot bool) string {
	if strings.Contains(target, "{name}") {
		if hasSkillRoot {
			rel := strings.TrimPrefix(pathStr, skillRoot)
			return strings.TrimPrefix(rel, "/")
		}
		return extractRelativePart(rule.From, pathStr)
	}
	return extractRelativePart(rule.From, pathStr)
}

func processWildcards(target, relativePart, extension string) string {
	if !strings.Contains(target, "**") {
		return target
	}
	return processDoubleWildcard(target, relativePart, extension)
}

func processDoubleWildcard(target, relativePart, extension string) string {
	pos := strings.Index(target, "**")
	if pos < 0 {
		return target
	}

	prefix := target[:pos]
	suffix := ""
	if pos+2 < len(target) {
		suffix = target[pos+2:]
	}

	relativeToUse := computeRelativeToUse(relativePart, extension)

	switch {
	case strings.HasPrefix(suffix, "/"):
		suffixClean := strings.TrimPrefix(suffix, "/")
		if strings.Contains(suffixClean, ".") || strings.Contains(suffixClean, "*") {
			return prefix + relativeToUse
		}
		return prefix + relativeToUse + "/" + suffixClean
	case suffix != "":
		return prefix + relativeToUse + suffix
	default:
		return prefix + relativeToUse
	}
}

func computeRelativeToUse(relativePart, extension string) string {
	if extension == "" || (!strings.Contains(relativePart, ".") && !strings.Contains(relativePart, "*")) {
		return relativePart
	}

	dir := path.Dir(relativePart)
	base := path.Base(relativePart)
	stem := strings.TrimSuffix(base, path.Ext(base))

	if dir == "." || dir == "" {
		return stem
	}
	return dir + "/" + stem
}

func addExtension(target, extension string) string {
	if extension == "" {
		return target
	}

	target = toSlash(target)
	dir := path.Dir(target)
	base := path.Base(target)
	stem := strings.TrimSuffix(base, path.Ext(base))
	newName := stem + "." + extension

	if dir == "." {
		return newName
	}
	return dir + "/" + newName
}

// extractRelativePart returns the portion of path beyond the literal prefix
// of pattern (the text before its first wildcard), falling back to the
// path's file name if the prefix doesn't match.
func extractRelativePart(pattern, pathStr string) string {
	wildcardPos := strings.IndexByte(pattern, '*')
	if wildcardPos < 0 {
		wildcardPos = len(pattern)
	}
	patternPrefix := pattern[:wildcardPos]

	if rel, ok := strings.CutPrefix(pathStr, patternPrefix); ok {
		return strings.TrimPrefix(rel, "/")
	}
	return path.Base(pathStr)
}

// findSkillRoot returns the leaf skill directory containing pathStr, if any.
func (t *Transformer) findSkillRoot(pathStr string) (string, bool) {
	if !strings.HasPrefix(pathStr, "skills/") || t.leafSkillDirs == nil {
		return "", false
	}
	for dir := range t.leafSkillDirs {
		if pathStr == dir || strings.HasPrefix(pathStr, dir+"/") {
			return dir, true
		}
	}
	return "", false
}

// computeNameVariable derives the {name} template value: the skill's
// directory name when inside a known skill directory, else the resource's
// file stem.
func computeNameVariable(pathStr, skillRoot string, hasSkillRoot bool, resourcePath string) string {
	if !strings.HasPrefix(pathStr, "skills/") {
		return fileStem(resourcePath)
	}

	if hasSkillRoot {
		parts := strings.Split(skillRoot, "/")
		return parts[len(parts)-1]
	}

	rest := strings.TrimPrefix(pathStr, "skills/")
	parts := strings.SplitN(rest, "/", 2)
	if parts[0] != "" {
		return parts[0]
	}
	return fileStem(resourcePath)
}

func fileStem(p string) string {
	base := path.Base(toSlash(p))
	return strings.TrimSuffix(base, path.Ext(base))
}
