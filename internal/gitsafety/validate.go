// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package gitsafety validates the user-supplied strings that flow into
// git and filesystem operations: a dependency's git URL, ref, and local
// path. augent never shells out to git (internal/gitadapter drives
// go-git directly), so these checks guard against malformed or
// unsupported input rather than command injection, but the patterns
// are the same ones a shelling-out implementation would need.
package gitsafety

import (
	"regexp"
	"strings"

	"github.com/archmagece/augent/internal/apperrors"
)

var controlCharPattern = regexp.MustCompile(`[\x00\r\n]`)

var validURLSchemes = []string{
	"https://", "http://", "ssh://", "git://", "git@", "file://",
}

// ValidateURL rejects a dependency git URL that contains control
// characters or uses a scheme augent's resolver doesn't understand.
func ValidateURL(url string) error {
	if url == "" {
		return apperrors.New(apperrors.CodeInvalidSourceURL, "git URL cannot be empty")
	}
	if controlCharPattern.MatchString(url) {
		return apperrors.Newf(apperrors.CodeInvalidSourceURL, "git URL %q contains a control character", url)
	}

	for _, scheme := range validURLSchemes {
		if strings.HasPrefix(url, scheme) {
			return nil
		}
	}
	// git@host:path SSH shorthand is covered by the "git@" prefix above;
	// anything else must look like a scp-like path ("host:path").
	if strings.Contains(url, ":") && !strings.ContainsAny(url, " \t") {
		return nil
	}
	return apperrors.Newf(apperrors.CodeInvalidSourceURL, "git URL %q has an unsupported scheme", url)
}

// ValidateRef rejects a ref (branch, tag, or partial SHA) that git
// itself would refuse, per the git-check-ref-format rules that matter
// for a ref used as a lookup key rather than created fresh.
func ValidateRef(ref string) error {
	if ref == "" {
		return nil
	}
	invalid := []struct {
		pattern *regexp.Regexp
		reason  string
	}{
		{regexp.MustCompile(`\.\.`), "contains '..'"},
		{regexp.MustCompile(`[~^:?*\[\]\\]`), "contains a git-reserved character"},
		{regexp.MustCompile(`\s`), "contains whitespace"},
		{regexp.MustCompile(`\.lock$`), "ends with '.lock'"},
		{regexp.MustCompile(`^/|/$|//`), "starts/ends with '/' or has '//'"},
	}
	for _, c := range invalid {
		if c.pattern.MatchString(ref) {
			return apperrors.Newf(apperrors.CodeInvalidSourceURL, "ref %q is invalid: %s", ref, c.reason)
		}
	}
	return nil
}

// ValidatePath rejects a local dependency path that escapes via a null
// byte or reaches into an absolute system directory. Containment within
// the workspace itself is resolver.validateLocalBundlePath's job, which
// also needs to resolve symlinks and can't be decided from the string
// alone.
func ValidatePath(path string) error {
	if controlCharPattern.MatchString(path) {
		return apperrors.Newf(apperrors.CodeBundleValidationFailed, "path %q contains a control character", path)
	}

	systemDirs := []string{"/etc/", "/usr/", "/bin/", "/sbin/", "/sys/", "/proc/"}
	for _, dir := range systemDirs {
		if strings.HasPrefix(path, dir) {
			return apperrors.Newf(apperrors.CodeBundleValidationFailed, "path %q reaches into a system directory", path)
		}
	}
	return nil
}
