// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package workspace

import "testing"

func TestOwnerRepoFromURL(t *testing.T) {
	cases := []struct {
		url       string
		wantOwner string
		wantRepo  string
		wantOK    bool
	}{
		{"https://github.com/archmagece/augent.git", "archmagece", "augent", true},
		{"https://github.com/archmagece/augent", "archmagece", "augent", true},
		{"git@github.com:archmagece/augent.git", "archmagece", "augent", true},
		{"ssh://git@github.com/archmagece/augent.git", "archmagece", "augent", true},
		{"not-a-url", "", "", false},
	}

	for _, c := range cases {
		owner, repo, ok := ownerRepoFromURL(c.url)
		if ok != c.wantOK || owner != c.wantOwner || repo != c.wantRepo {
			t.Errorf("ownerRepoFromURL(%q) = (%q, %q, %v), want (%q, %q, %v)",
				c.url, owner, repo, ok, c.wantOwner, c.wantRepo, c.wantOK)
		}
	}
}
