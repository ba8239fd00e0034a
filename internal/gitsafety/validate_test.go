// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package gitsafety

import "testing"

func TestValidateURLAcceptsKnownSchemes(t *testing.T) {
	for _, url := range []string{
		"https://github.com/acme/bundle.git",
		"git@github.com:acme/bundle.git",
		"ssh://git@example.com/acme/bundle.git",
		"file:///tmp/bundle",
	} {
		if err := ValidateURL(url); err != nil {
			t.Errorf("ValidateURL(%q) = %v, want nil", url, err)
		}
	}
}

func TestValidateURLRejectsEmptyAndControlChars(t *testing.T) {
	if err := ValidateURL(""); err == nil {
		t.Error("expected an error for an empty URL")
	}
	if err := ValidateURL("https://example.com/a\nb.git"); err == nil {
		t.Error("expected an error for a URL containing a newline")
	}
}

func TestValidateURLRejectsUnsupportedScheme(t *testing.T) {
	if err := ValidateURL("ftp example.com repo"); err == nil {
		t.Error("expected an error for an unsupported scheme")
	}
}

func TestValidateRefAcceptsOrdinaryNames(t *testing.T) {
	for _, ref := range []string{"", "main", "v1.2.3", "feature/foo"} {
		if err := ValidateRef(ref); err != nil {
			t.Errorf("ValidateRef(%q) = %v, want nil", ref, err)
		}
	}
}

func TestValidateRefRejectsReservedPatterns(t *testing.T) {
	for _, ref := range []string{"a..b", "a~b", "a b", "a.lock", "/a", "a/"} {
		if err := ValidateRef(ref); err == nil {
			t.Errorf("ValidateRef(%q) expected an error", ref)
		}
	}
}

func TestValidatePathRejectsSystemDirectories(t *testing.T) {
	if err := ValidatePath("/etc/passwd"); err == nil {
		t.Error("expected an error for a system directory path")
	}
	if err := ValidatePath("bundles/my-bundle"); err != nil {
		t.Errorf("ValidatePath(ordinary path) = %v, want nil", err)
	}
}
