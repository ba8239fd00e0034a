// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package workspace

import "strings"

// ownerRepoFromURL extracts "owner", "repo" from the common git remote
// URL shapes: https://host/owner/repo(.git), git@host:owner/repo(.git),
// ssh://host/owner/repo(.git).
func ownerRepoFromURL(url string) (owner, repo string, ok bool) {
	rest := url
	switch {
	case strings.Contains(rest, "://"):
		parts := strings.SplitN(rest, "://", 2)
		rest = parts[1]
		if i := strings.Index(rest, "/"); i >= 0 {
			rest = rest[i+1:]
		} else {
			return "", "", false
		}
	case strings.HasPrefix(rest, "git@"):
		rest = strings.TrimPrefix(rest, "git@")
		if i := strings.Index(rest, ":"); i >= 0 {
			rest = rest[i+1:]
		} else {
			return "", "", false
		}
	default:
		return "", "", false
	}

	rest = strings.TrimSuffix(rest, ".git")
	rest = strings.TrimSuffix(rest, "/")
	segments := strings.Split(rest, "/")
	if len(segments) < 2 {
		return "", "", false
	}
	n := len(segments)
	return segments[n-2], segments[n-1], true
}
