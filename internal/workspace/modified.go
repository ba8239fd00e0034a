// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package workspace

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/archmagece/augent/internal/apperrors"
)

// HashFile returns the hex-encoded sha256 of path's contents.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", apperrors.Newf(apperrors.CodeFileReadFailed, "failed to read %s: %v", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", apperrors.Newf(apperrors.CodeFileReadFailed, "failed to hash %s: %v", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// hashBytes returns the hex-encoded sha256 of data, for callers that
// already hold the candidate content in memory (e.g. a freshly converted
// install payload) rather than a file on disk.
func hashBytes(data []byte) (string, error) {
	h := sha256.New()
	if _, err := h.Write(data); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// ModifiedFile identifies one workspace file whose on-disk content no
// longer matches what the install would produce.
type ModifiedFile struct {
	BundleName string
	BundleFile string
	TargetPath string // workspace-relative
}

// ExpectedHash computes the hash the file at targetPath should carry if
// it still reflected bundleFile's installed content, or reports false if
// no baseline is available (e.g. the source bundle is unreachable).
type ExpectedHash func(bundleName, bundleFile, targetPath string) (hash string, ok bool)

// DetectModifiedFiles walks every target path recorded in idx and
// reports those whose current on-disk hash differs from expected's
// baseline. Files with no baseline are treated as unmodified: there is
// nothing to preserve them against.
func DetectModifiedFiles(root string, idx Index, expected ExpectedHash) ([]ModifiedFile, error) {
	var modified []ModifiedFile

	for bundleName, files := range idx {
		for bundleFile, targets := range files {
			for _, target := range targets {
				abs := filepath.Join(root, target)
				if _, err := os.Stat(abs); os.IsNotExist(err) {
					continue
				}

				baseline, ok := expected(bundleName, bundleFile, target)
				if !ok {
					continue
				}

				current, err := HashFile(abs)
				if err != nil {
					return nil, err
				}
				if current != baseline {
					modified = append(modified, ModifiedFile{
						BundleName: bundleName,
						BundleFile: bundleFile,
						TargetPath: target,
					})
				}
			}
		}
	}
	return modified, nil
}

// scratchKey turns a workspace-relative target path into a filesystem-safe
// name for the preservation scratch area, so nested directories don't
// need to be recreated there.
func scratchKey(targetPath string) string {
	return strings.ReplaceAll(filepath.ToSlash(targetPath), "/", "__")
}

// PreserveModifiedFiles copies each modified file's current content into
// scratchDir, keyed by its target path, before an install overwrites it.
func PreserveModifiedFiles(root, scratchDir string, modified []ModifiedFile) error {
	if len(modified) == 0 {
		return nil
	}
	if err := os.MkdirAll(scratchDir, 0o755); err != nil {
		return apperrors.Newf(apperrors.CodeFileWriteFailed, "failed to create preservation scratch dir: %v", err)
	}

	for _, m := range modified {
		src := filepath.Join(root, m.TargetPath)
		dst := filepath.Join(scratchDir, scratchKey(m.TargetPath))

		data, err := os.ReadFile(src)
		if err != nil {
			return apperrors.Newf(apperrors.CodeFileReadFailed, "failed to preserve %s: %v", m.TargetPath, err)
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return apperrors.Newf(apperrors.CodeFileWriteFailed, "failed to preserve %s: %v", m.TargetPath, err)
		}
	}
	return nil
}

// RestoreModifiedFiles copies each preserved file back over the install's
// freshly written output, restoring the user's edits.
func RestoreModifiedFiles(root, scratchDir string, modified []ModifiedFile) error {
	for _, m := range modified {
		src := filepath.Join(scratchDir, scratchKey(m.TargetPath))
		dst := filepath.Join(root, m.TargetPath)

		data, err := os.ReadFile(src)
		if err != nil {
			return apperrors.Newf(apperrors.CodeFileReadFailed, "failed to restore %s: %v", m.TargetPath, err)
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return apperrors.Newf(apperrors.CodeFileWriteFailed, "failed to restore %s: %v", m.TargetPath, err)
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return apperrors.Newf(apperrors.CodeFileWriteFailed, "failed to restore %s: %v", m.TargetPath, err)
		}
	}
	return nil
}
