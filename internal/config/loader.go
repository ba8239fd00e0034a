// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/archmagece/augent/internal/manifest"
)

// Loader resolves Effective settings through the default, global,
// workspace, and flag layers.
type Loader struct {
	global    *Settings
	workspace *Settings
}

// NewLoader reads the global config file, if one exists. A missing file
// is not an error: the global layer simply contributes nothing.
func NewLoader() (*Loader, error) {
	l := &Loader{}

	path, err := GlobalPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	l.global = &s
	return l, nil
}

// LoadWorkspace reads the settings a workspace's own augent.yaml carries
// alongside its bundles: list. Unknown fields (name, bundles, ...) are
// silently ignored since Settings only declares the keys it governs.
func (l *Loader) LoadWorkspace(configDir string) error {
	path := configDir + string(os.PathSeparator) + manifest.FileName
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return err
	}
	l.workspace = &s
	return nil
}

// Resolve builds the Effective settings, applying defaults, the global
// file, the workspace's own settings, and finally flags — each layer
// overriding only the keys it actually sets, later layers winning ties.
// flags recognizes "platforms" ([]string), "cacheDir" (string), "shallow"
// (bool), and "verbose" (bool); a key absent from the map leaves the
// prior layer's value and provenance untouched.
func (l *Loader) Resolve(flags map[string]interface{}) *Effective {
	eff := &Effective{Sources: make(map[string]Source)}

	l.applyDefaults(eff)
	if l.global != nil {
		l.applyLayer(eff, l.global, SourceGlobal)
	}
	if l.workspace != nil {
		l.applyLayer(eff, l.workspace, SourceWorkspace)
	}
	l.applyFlags(eff, flags)

	return eff
}

func (l *Loader) applyDefaults(eff *Effective) {
	eff.Platforms = []string{"claude-code"}
	eff.CacheDir = ""
	eff.Shallow = true
	eff.Verbose = false

	eff.Sources["platforms"] = SourceDefault
	eff.Sources["cacheDir"] = SourceDefault
	eff.Sources["shallow"] = SourceDefault
	eff.Sources["verbose"] = SourceDefault
}

// applyLayer overwrites eff with every field s explicitly sets, stamping
// src as that key's source. A zero-value field (empty slice, empty
// string, nil pointer) means the layer is silent on that key, not that
// it wants to reset it to zero.
func (l *Loader) applyLayer(eff *Effective, s *Settings, src Source) {
	if len(s.Platforms) > 0 {
		eff.Platforms = s.Platforms
		eff.Sources["platforms"] = src
	}
	if s.CacheDir != "" {
		eff.CacheDir = s.CacheDir
		eff.Sources["cacheDir"] = src
	}
	if s.Shallow != nil {
		eff.Shallow = *s.Shallow
		eff.Sources["shallow"] = src
	}
	if s.Verbose != nil {
		eff.Verbose = *s.Verbose
		eff.Sources["verbose"] = src
	}
}

func (l *Loader) applyFlags(eff *Effective, flags map[string]interface{}) {
	if v, ok := flags["platforms"].([]string); ok && len(v) > 0 {
		eff.Platforms = v
		eff.Sources["platforms"] = SourceFlag
	}
	if v, ok := flags["cacheDir"].(string); ok && v != "" {
		eff.CacheDir = v
		eff.Sources["cacheDir"] = SourceFlag
	}
	if v, ok := flags["shallow"].(bool); ok {
		eff.Shallow = v
		eff.Sources["shallow"] = SourceFlag
	}
	if v, ok := flags["verbose"].(bool); ok {
		eff.Verbose = v
		eff.Sources["verbose"] = SourceFlag
	}
}
