// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package platform

import (
	"os"

	"github.com/archmagece/augent/internal/apperrors"
)

// DetectPlatforms returns the default platforms whose detection patterns are
// present under workspaceRoot.
func DetectPlatforms(workspaceRoot string) ([]Platform, error) {
	if _, err := os.Stat(workspaceRoot); err != nil {
		return nil, apperrors.Newf(apperrors.CodeWorkspaceNotFound, "workspace not found: %s", workspaceRoot)
	}

	var detected []Platform
	for _, p := range DefaultPlatforms() {
		if p.IsDetected(workspaceRoot) {
			detected = append(detected, p)
		}
	}
	return detected, nil
}

// DetectPlatformsOrError is DetectPlatforms but fails with
// apperrors.ErrNoPlatformsDetected when nothing is found.
func DetectPlatformsOrError(workspaceRoot string) ([]Platform, error) {
	platforms, err := DetectPlatforms(workspaceRoot)
	if err != nil {
		return nil, err
	}
	if len(platforms) == 0 {
		return nil, apperrors.ErrNoPlatformsDetected
	}
	return platforms, nil
}

// GetPlatform looks up a default platform by id, falling back to alias match.
func GetPlatform(id string) (Platform, bool) {
	platforms := DefaultPlatforms()
	for _, p := range platforms {
		if p.ID == id {
			return p, true
		}
	}
	for _, p := range platforms {
		for _, alias := range p.Aliases {
			if alias == id {
				return p, true
			}
		}
	}
	return Platform{}, false
}

// GetPlatforms resolves a list of platform ids, failing on the first unknown
// one.
func GetPlatforms(ids []string) ([]Platform, error) {
	platforms := make([]Platform, 0, len(ids))
	for _, id := range ids {
		p, ok := GetPlatform(id)
		if !ok {
			return nil, apperrors.Newf(apperrors.CodePlatformNotSupported, "platform not supported: %s", id)
		}
		platforms = append(platforms, p)
	}
	return platforms, nil
}

// ResolvePlatforms auto-detects platforms when specified is empty, otherwise
// resolves exactly the specified ids.
func ResolvePlatforms(workspaceRoot string, specified []string) ([]Platform, error) {
	if len(specified) == 0 {
		return DetectPlatformsOrError(workspaceRoot)
	}
	return GetPlatforms(specified)
}
