// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package resolver

import (
	"path/filepath"
	"strings"

	"github.com/archmagece/augent/internal/apperrors"
)

// checkCycle fails with CircularDependencyError if name is already on
// the current resolution stack.
func checkCycle(name string, resolutionStack []string) error {
	for _, s := range resolutionStack {
		if s == name {
			chain := append(append([]string{}, resolutionStack...), name)
			return &apperrors.CircularDependencyError{Chain: chain}
		}
	}
	return nil
}

// validateLocalBundlePath rejects absolute dependency paths (not
// portable across clones) and any local bundle path that resolves
// outside workspaceRoot.
func validateLocalBundlePath(fullPath, userPath string, isDependency bool, workspaceRoot string) error {
	if isDependency && filepath.IsAbs(userPath) {
		return apperrors.Newf(apperrors.CodeBundleValidationFailed,
			"local bundle path %q is absolute; bundles in augent.yaml must use relative paths", userPath)
	}

	workspaceCanonical, err := canonicalOrSelf(workspaceRoot)
	if err != nil {
		return apperrors.Newf(apperrors.CodeBundleValidationFailed, "workspace root cannot be resolved: %v", err)
	}
	fullCanonical, _ := canonicalOrSelf(fullPath)

	if !isWithin(fullCanonical, workspaceCanonical) {
		return apperrors.Newf(apperrors.CodeBundleValidationFailed,
			"local bundle path %q resolves to %q, which is outside of repository at %q",
			userPath, fullCanonical, workspaceCanonical)
	}
	return nil
}

func canonicalOrSelf(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

func isWithin(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (!strings.HasPrefix(rel, "..") && !filepath.IsAbs(rel))
}
