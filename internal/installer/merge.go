// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package installer

import (
	"encoding/json"
	"os"

	"github.com/archmagece/augent/internal/apperrors"
	"github.com/archmagece/augent/internal/platform"
)

// PendingInstallation is one source file queued to land at the same
// target path as one or more others, deferred so they can be merged
// together instead of each overwriting the last.
type PendingInstallation struct {
	SourcePath string
}

// MergeMultipleInstallations applies strategy across every pending
// installation bound for targetPath: Replace keeps only the last one,
// Shallow/Deep fold each source's JSON into the running result in order,
// and Composite concatenates each source's text, separated by a marker
// distinct from the per-file composite separator used when a converter
// merges a single new file into an existing one.
func MergeMultipleInstallations(targetPath string, installations []PendingInstallation, strategy platform.MergeStrategy) error {
	if len(installations) == 0 {
		return nil
	}

	switch strategy {
	case platform.MergeReplace:
		last := installations[len(installations)-1]
		return mergeSingleInstallation(targetPath, last.SourcePath, strategy)
	case platform.MergeShallow, platform.MergeDeep:
		return mergeMultipleJSONFiles(targetPath, installations, strategy)
	case platform.MergeComposite:
		return mergeMultipleTextFiles(targetPath, installations)
	default:
		return mergeSingleInstallation(targetPath, last(installations).SourcePath, platform.MergeReplace)
	}
}

func last(installations []PendingInstallation) PendingInstallation {
	return installations[len(installations)-1]
}

func mergeSingleInstallation(targetPath, sourcePath string, strategy platform.MergeStrategy) error {
	switch strategy {
	case platform.MergeShallow, platform.MergeDeep:
		return mergeJSONFiles(sourcePath, targetPath, strategy)
	case platform.MergeComposite:
		return mergeTextFiles(sourcePath, targetPath)
	default:
		return performSimpleCopy(sourcePath, targetPath)
	}
}

func mergeMultipleJSONFiles(targetPath string, installations []PendingInstallation, strategy platform.MergeStrategy) error {
	result, err := readExistingJSONOrEmpty(targetPath)
	if err != nil {
		return err
	}

	for _, installation := range installations {
		content, err := os.ReadFile(installation.SourcePath)
		if err != nil {
			return apperrors.Newf(apperrors.CodeFileReadFailed, "read %s: %v", installation.SourcePath, err)
		}
		merged, err := strategy.MergeStrings(mustMarshal(result), string(content))
		if err != nil {
			return err
		}
		if err := json.Unmarshal([]byte(merged), &result); err != nil {
			return apperrors.Newf(apperrors.CodeConfigParseFailed, "%s: %v", targetPath, err)
		}
	}

	return writeJSONResult(targetPath, result)
}

func mergeJSONFiles(sourcePath, targetPath string, strategy platform.MergeStrategy) error {
	existing, err := readExistingJSONOrEmpty(targetPath)
	if err != nil {
		return err
	}
	source, err := os.ReadFile(sourcePath)
	if err != nil {
		return apperrors.Newf(apperrors.CodeFileReadFailed, "read %s: %v", sourcePath, err)
	}

	merged, err := strategy.MergeStrings(mustMarshal(existing), string(source))
	if err != nil {
		return err
	}

	var result interface{}
	if err := json.Unmarshal([]byte(merged), &result); err != nil {
		return apperrors.Newf(apperrors.CodeConfigParseFailed, "%s: %v", targetPath, err)
	}
	return writeJSONResult(targetPath, result)
}

func mergeMultipleTextFiles(targetPath string, installations []PendingInstallation) error {
	existing := ""
	if content, err := os.ReadFile(targetPath); err == nil {
		existing = string(content)
	} else if !os.IsNotExist(err) {
		return apperrors.Newf(apperrors.CodeFileReadFailed, "read %s: %v", targetPath, err)
	}

	result := existing
	for _, installation := range installations {
		content, err := os.ReadFile(installation.SourcePath)
		if err != nil {
			return apperrors.Newf(apperrors.CodeFileReadFailed, "read %s: %v", installation.SourcePath, err)
		}
		source := string(content)
		if IsOpencodeMetadataFile(targetPath) {
			if converted, ok := convertOpencodeFrontmatterOnly(source); ok {
				source = converted
			}
		}
		if result != "" {
			result += "\n\n<!-- Augent: merged content below -->\n\n"
		}
		result += source
	}

	return writeTextResult(targetPath, result)
}

func mergeTextFiles(sourcePath, targetPath string) error {
	source, err := os.ReadFile(sourcePath)
	if err != nil {
		return apperrors.Newf(apperrors.CodeFileReadFailed, "read %s: %v", sourcePath, err)
	}

	merged, err := platform.MergeComposite.MergeStrings(readFileOrEmpty(targetPath), string(source))
	if err != nil {
		return err
	}
	return writeTextResult(targetPath, merged)
}

func readFileOrEmpty(path string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(content)
}

func readExistingJSONOrEmpty(path string) (interface{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]interface{}{}, nil
		}
		return nil, apperrors.Newf(apperrors.CodeFileReadFailed, "read %s: %v", path, err)
	}
	var result interface{}
	if err := json.Unmarshal(content, &result); err != nil {
		return nil, apperrors.Newf(apperrors.CodeConfigParseFailed, "%s: %v", path, err)
	}
	return result, nil
}

func mustMarshal(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func writeJSONResult(targetPath string, result interface{}) error {
	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return apperrors.Newf(apperrors.CodeConfigParseFailed, "%s: %v", targetPath, err)
	}
	return writeTextResult(targetPath, string(b))
}

func writeTextResult(targetPath, content string) error {
	if err := EnsureParentDir(targetPath); err != nil {
		return err
	}
	if err := os.WriteFile(targetPath, []byte(content), 0o644); err != nil {
		return apperrors.Newf(apperrors.CodeFileWriteFailed, "write %s: %v", targetPath, err)
	}
	return nil
}

// convertOpencodeFrontmatterOnly rewrites a source's frontmatter block for
// opencode without the per-resource-kind field mapping a full converter
// call would need (used only for the composite merge path, where the
// result type is fixed ahead of time), falling back to the content
// unchanged if it carries no frontmatter.
func convertOpencodeFrontmatterOnly(content string) (string, bool) {
	fm, body, ok := platform.ParseFrontmatterAndBody(content)
	if !ok {
		return content, false
	}
	yamlStr := platform.SerializeToYAML(fm)
	if yamlStr == "" || yamlStr == "{}\n" {
		return body, true
	}
	return "---\n" + yamlStr + "---\n\n" + body, true
}
