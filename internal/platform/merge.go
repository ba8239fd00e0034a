// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package platform

import (
	"encoding/json"
	"strings"

	"github.com/archmagece/augent/internal/apperrors"
)

// MergeStrategy controls how an incoming resource file is combined with one
// already installed at the same target path.
type MergeStrategy string

const (
	// MergeReplace overwrites the existing file entirely (default).
	MergeReplace MergeStrategy = "replace"
	// MergeShallow combines only top-level JSON keys; nested objects are
	// replaced wholesale by the incoming value.
	MergeShallow MergeStrategy = "shallow"
	// MergeDeep recursively merges nested JSON objects and de-duplicates
	// merged arrays.
	MergeDeep MergeStrategy = "deep"
	// MergeComposite appends markdown content below a separator comment,
	// used for files like AGENTS.md that accumulate across bundles.
	MergeComposite MergeStrategy = "composite"
)

// MergeStrings combines existing and incoming content according to the
// strategy. Shallow and Deep require both inputs to be valid JSON.
func (m MergeStrategy) MergeStrings(existing, newContent string) (string, error) {
	switch m {
	case MergeReplace:
		return newContent, nil
	case MergeComposite:
		return mergeComposite(existing, newContent), nil
	case MergeShallow, MergeDeep:
		var existingVal, newVal interface{}
		if err := json.Unmarshal([]byte(existing), &existingVal); err != nil {
			return "", apperrors.Newf(apperrors.CodeConfigParseFailed, "parse merge source: %s", err)
		}
		if err := json.Unmarshal([]byte(newContent), &newVal); err != nil {
			return "", apperrors.Newf(apperrors.CodeConfigParseFailed, "parse merge target: %s", err)
		}

		var merged interface{}
		if m == MergeShallow {
			merged = mergeJSONShallow(existingVal, newVal)
		} else {
			merged = mergeJSONDeep(existingVal, newVal)
		}

		out, err := json.MarshalIndent(merged, "", "  ")
		if err != nil {
			return "", apperrors.Newf(apperrors.CodeConfigParseFailed, "serialize merge result: %s", err)
		}
		return string(out), nil
	default:
		return newContent, nil
	}
}

// mergeComposite appends new content below existing content with a visual
// separator, trimming empty sides.
func mergeComposite(existing, newContent string) string {
	existing = strings.TrimSpace(existing)
	newContent = strings.TrimSpace(newContent)

	if existing == "" {
		return newContent
	}
	if newContent == "" {
		return existing
	}
	return existing + "\n\n<!-- Augent: Additional content below -->\n\n" + newContent
}

// mergeJSONShallow overwrites top-level keys of existing with new's, leaving
// nested objects from new entirely replacing their existing counterpart.
func mergeJSONShallow(existing, newVal interface{}) interface{} {
	existingMap, ok1 := existing.(map[string]interface{})
	newMap, ok2 := newVal.(map[string]interface{})
	if !ok1 || !ok2 {
		return existing
	}
	for k, v := range newMap {
		existingMap[k] = v
	}
	return existingMap
}

// mergeJSONDeep recursively merges objects, appends de-duplicated array
// items, and otherwise lets the incoming value win.
func mergeJSONDeep(existing, newVal interface{}) interface{} {
	existingMap, existingIsMap := existing.(map[string]interface{})
	newMap, newIsMap := newVal.(map[string]interface{})
	if existingIsMap && newIsMap {
		for k, v := range newMap {
			if ev, ok := existingMap[k]; ok {
				existingMap[k] = mergeJSONDeep(ev, v)
			} else {
				existingMap[k] = v
			}
		}
		return existingMap
	}

	existingArr, existingIsArr := existing.([]interface{})
	newArr, newIsArr := newVal.([]interface{})
	if existingIsArr && newIsArr {
		for _, item := range newArr {
			if !containsJSONValue(existingArr, item) {
				existingArr = append(existingArr, item)
			}
		}
		return existingArr
	}

	return newVal
}

func containsJSONValue(arr []interface{}, item interface{}) bool {
	itemJSON, err := json.Marshal(item)
	if err != nil {
		return false
	}
	for _, existing := range arr {
		existingJSON, err := json.Marshal(existing)
		if err == nil && string(existingJSON) == string(itemJSON) {
			return true
		}
	}
	return false
}
