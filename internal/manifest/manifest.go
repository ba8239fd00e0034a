// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package manifest defines the bundle manifest (augent.yaml) and
// marketplace manifest (.claude-plugin/marketplace.json) file formats
// and their loaders.
package manifest

import (
	"encoding/json"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/archmagece/augent/internal/apperrors"
)

const (
	// FileName is the bundle manifest's conventional name.
	FileName = "augent.yaml"
	// MarketplaceRelPath is the marketplace manifest's conventional
	// location relative to a repository root.
	MarketplaceRelPath = ".claude-plugin/marketplace.json"
)

// Dependency is one entry of a bundle manifest's bundles: list. Exactly
// one of Git or Path is populated.
type Dependency struct {
	Name string `yaml:"name"`
	Git  string `yaml:"git,omitempty"`
	Path string `yaml:"path,omitempty"`
	Ref  string `yaml:"ref,omitempty"`
}

// Bundle is the parsed form of augent.yaml.
type Bundle struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description,omitempty"`
	Version     string       `yaml:"version,omitempty"`
	Author      string       `yaml:"author,omitempty"`
	License     string       `yaml:"license,omitempty"`
	Homepage    string       `yaml:"homepage,omitempty"`
	Bundles     []Dependency `yaml:"bundles,omitempty"`
}

// LoadBundle reads and parses a bundle manifest at path. A missing file
// yields the underlying os error unchanged, so callers can check os.IsNotExist.
func LoadBundle(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var b Bundle
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, apperrors.Newf(apperrors.CodeConfigParseFailed, "failed to parse manifest %s: %v", path, err)
	}
	return &b, nil
}

// Plugin is one entry of a marketplace manifest's plugins array.
type Plugin struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Version     string   `json:"version,omitempty"`
	Source      string   `json:"source,omitempty"`
	Commands    []string `json:"commands,omitempty"`
	Agents      []string `json:"agents,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	McpServers  []string `json:"mcp_servers,omitempty"`
	Rules       []string `json:"rules,omitempty"`
	Hooks       []string `json:"hooks,omitempty"`
}

// Marketplace is the parsed form of .claude-plugin/marketplace.json.
type Marketplace struct {
	Plugins []Plugin `json:"plugins"`
}

// SaveBundle writes b's YAML form to path with workspaceName substituted
// for the name field. Unlike the lockfile, the manifest is not written
// atomically: it is meant to be hand-edited and read by the same process
// that just wrote it.
func SaveBundle(path string, b *Bundle, workspaceName string) error {
	content, err := b.ToYAML(workspaceName)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return apperrors.Newf(apperrors.CodeFileWriteFailed, "failed to write manifest %s: %v", path, err)
	}
	return nil
}

// LoadMarketplace reads and parses a marketplace manifest at path.
func LoadMarketplace(path string) (*Marketplace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Marketplace
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, apperrors.Newf(apperrors.CodeConfigParseFailed, "failed to parse marketplace manifest %s: %v", path, err)
	}
	return &m, nil
}

// FindPlugin looks up a plugin by name.
func (m *Marketplace) FindPlugin(name string) (Plugin, bool) {
	for _, p := range m.Plugins {
		if p.Name == name {
			return p, true
		}
	}
	return Plugin{}, false
}

// ResourceCounts summarizes how many resources of each kind a discovered
// bundle carries, for display purposes.
type ResourceCounts struct {
	Commands   int
	Agents     int
	Skills     int
	Rules      int
	Hooks      int
	McpServers int
}

// CountsFromPlugin counts a marketplace plugin's declared file lists.
func CountsFromPlugin(p Plugin) ResourceCounts {
	return ResourceCounts{
		Commands:   len(p.Commands),
		Agents:     len(p.Agents),
		Skills:     len(p.Skills),
		Rules:      len(p.Rules),
		Hooks:      len(p.Hooks),
		McpServers: len(p.McpServers),
	}
}
