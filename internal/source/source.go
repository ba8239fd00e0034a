// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package source parses bundle source specifiers into the typed Source
// sum type: a local directory or a git repository at an optional ref and
// subpath.
package source

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/archmagece/augent/internal/apperrors"
	"github.com/archmagece/augent/internal/gitsafety"
)

// Git describes a git repository source.
type Git struct {
	URL          string
	Path         string // subpath within the repo, "" if none
	Ref          string // branch, tag, or SHA; "" means HEAD
	ResolvedSHA  string // populated after resolution
}

// Source is the parsed form of a source specifier: exactly one of Dir or
// Git is populated (IsGit distinguishes them explicitly rather than
// relying on zero values, since an empty Dir.Path is a legitimate "here").
type Source struct {
	IsGit bool
	Dir   string
	Git   Git
}

// Parse converts a source specifier string into a Source, applying the
// local-path-first heuristics and the git URL tie-break rules.
func Parse(input string) (Source, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Source{}, apperrors.Newf(apperrors.CodeInvalidSourceURL, "invalid source: empty input")
	}

	if after, ok := strings.CutPrefix(input, "file://"); ok {
		hasRefOrPath := strings.ContainsAny(after, "#@") || containsSubpathColon(after)
		if hasRefOrPath {
			g, err := parseGit(input)
			if err != nil {
				return Source{}, err
			}
			if err := validateGit(g); err != nil {
				return Source{}, err
			}
			return Source{IsGit: true, Git: g}, nil
		}
		return Source{Dir: after}, nil
	}

	if isLocalPath(input) {
		return Source{Dir: input}, nil
	}

	g, err := parseGit(input)
	if err != nil {
		return Source{}, err
	}
	if err := validateGit(g); err != nil {
		return Source{}, err
	}
	return Source{IsGit: true, Git: g}, nil
}

// validateGit rejects a parsed git source whose URL or ref augent
// cannot safely act on.
func validateGit(g Git) error {
	if err := gitsafety.ValidateURL(g.URL); err != nil {
		return err
	}
	return gitsafety.ValidateRef(g.Ref)
}

// containsSubpathColon reports whether a colon appears after the first
// character, avoiding a false match on a Windows drive letter ("C:").
func containsSubpathColon(s string) bool {
	if s == "" {
		return false
	}
	return strings.Contains(s[1:], ":")
}

func isLocalPath(input string) bool {
	if input == "." || input == ".." || strings.HasPrefix(input, "./") || strings.HasPrefix(input, "../") {
		return true
	}
	if strings.HasPrefix(input, ".") && !strings.Contains(input, "://") {
		return true
	}
	if filepath.IsAbs(input) || strings.HasPrefix(input, "/") {
		return true
	}
	if !strings.Contains(input, ":") {
		if fi, err := os.Stat(input); err == nil && fi.IsDir() {
			return true
		}
	}
	return false
}

// parseGit parses the git-source forms: github shorthand, @owner/repo,
// owner/repo, explicit URLs, and the GitHub web-UI tree URL, applying
// the #ref / @ref / :subpath tie-break rules.
func parseGit(input string) (Git, error) {
	if owner, repo, ref, path, ok := parseGitHubWebUIURL(input); ok {
		return Git{
			URL:  "https://github.com/" + owner + "/" + repo + ".git",
			Ref:  ref,
			Path: path,
		}, nil
	}

	mainPart, refPart, hasRefPart := parseFragment(input)

	path, ref, urlPart := parsePathWithoutFragment(mainPart, refPart, hasRefPart)

	url, err := parseURL(urlPart)
	if err != nil {
		return Git{}, err
	}

	return Git{URL: url, Ref: ref, Path: path}, nil
}

// parseFragment splits input on the first '#' (always a ref separator)
// or the first '@' (a ref separator unless it is part of an SSH prefix
// or sits at position 0, where it denotes a GitHub username shorthand).
func parseFragment(input string) (main string, frag string, has bool) {
	if i := strings.IndexByte(input, '#'); i >= 0 {
		return input[:i], input[i+1:], true
	}
	if i := strings.IndexByte(input, '@'); i >= 0 {
		if strings.HasPrefix(input, "git@") || strings.HasPrefix(input, "ssh://") || i == 0 {
			return input, "", false
		}
		return input[:i], input[i+1:], true
	}
	return input, "", false
}

func isSSHURL(input string) bool {
	return strings.HasPrefix(input, "git@") || strings.HasPrefix(input, "ssh://")
}

func findProtocolPrefixStart(s string) int {
	for _, prefix := range []string{"github:", "https://", "http://", "file://"} {
		if strings.HasPrefix(s, prefix) {
			return len(prefix)
		}
	}
	return 0
}

// skipWindowsDriveLetter skips a leading "C:" or "/C:" drive-letter
// prefix so it is never mistaken for a path-separator colon.
func skipWindowsDriveLetter(rest string) (skip int, tail string) {
	isAlpha := func(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
	if len(rest) >= 2 && isAlpha(rest[0]) && rest[1] == ':' {
		return 2, rest[2:]
	}
	if len(rest) >= 3 && rest[0] == '/' && isAlpha(rest[1]) && rest[2] == ':' {
		return 3, rest[3:]
	}
	return 0, rest
}

func parsePathFromFragment(refFrag string) string {
	if i := strings.IndexByte(refFrag, ':'); i >= 0 {
		return refFrag[i+1:]
	}
	return ""
}

func parseRefFromFragment(refFrag string) string {
	if refFrag == "" {
		return ""
	}
	if i := strings.IndexByte(refFrag, ':'); i >= 0 {
		return refFrag[:i]
	}
	return refFrag
}

// parsePathWithoutFragment implements the §4.1 tie-break rules: inside
// fragments, a ':' splits ref:path; outside fragments, a ':' is URL
// syntax in SSH URLs, part of a Windows drive letter in file:// URLs,
// and otherwise a subpath separator only if the prefix before it parses
// as a URL (else it is a legacy ref separator).
func parsePathWithoutFragment(mainPart, refPart string, hasRefPart bool) (path, ref, urlPart string) {
	if hasRefPart {
		return parsePathFromFragment(refPart), parseRefFromFragment(refPart), mainPart
	}

	if isSSHURL(mainPart) {
		return "", "", mainPart
	}

	searchStart := findProtocolPrefixStart(mainPart)
	rest := mainPart[searchStart:]
	driveSkip, searchIn := skipWindowsDriveLetter(rest)

	idx := strings.IndexByte(searchIn, ':')
	if idx < 0 {
		return "", "", mainPart
	}
	colonPos := searchStart + driveSkip + idx

	beforeColon, afterColon := mainPart[:colonPos], mainPart[colonPos+1:]

	if _, err := parseURL(beforeColon); err == nil {
		return afterColon, "", beforeColon
	}
	return "", afterColon, beforeColon
}

// isGitHubShorthand reports whether input looks like a bare "owner/repo".
func isGitHubShorthand(input string) bool {
	return !strings.Contains(input, "://") &&
		!strings.HasPrefix(input, "git@") &&
		!strings.HasPrefix(input, "file://") &&
		!strings.HasPrefix(input, "github:") &&
		!strings.HasPrefix(input, "@") &&
		strings.Count(input, "/") == 1 &&
		!strings.HasPrefix(input, "/")
}

// parseGitHubWebUIURL recognizes https://github.com/{owner}/{repo}/tree/{ref}/{path...}.
func parseGitHubWebUIURL(input string) (owner, repo, ref, path string, ok bool) {
	rest, found := strings.CutPrefix(input, "https://github.com/")
	if !found {
		return "", "", "", "", false
	}
	parts := strings.Split(rest, "/")
	if len(parts) < 4 || parts[2] != "tree" {
		return "", "", "", "", false
	}
	p := ""
	if len(parts) > 4 {
		p = strings.Join(parts[4:], "/")
	}
	return parts[0], parts[1], parts[3], p, true
}

// parseURL normalizes a URL-or-shorthand string into a canonical git URL.
func parseURL(input string) (string, error) {
	if rest, ok := strings.CutPrefix(input, "github:"); ok {
		return "https://github.com/" + rest + ".git", nil
	}
	if rest, ok := strings.CutPrefix(input, "@"); ok && isGitHubShorthand(rest) {
		return "https://github.com/" + rest + ".git", nil
	}
	if isGitHubShorthand(input) {
		return "https://github.com/" + input + ".git", nil
	}
	for _, prefix := range []string{"https://", "http://", "git@", "ssh://", "file://"} {
		if strings.HasPrefix(input, prefix) {
			return input, nil
		}
	}
	return "", apperrors.Newf(apperrors.CodeSourceParseFailed, "failed to parse source %q: unknown source format", input)
}
