// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package config resolves the handful of ambient settings a workspace
// can override — default platforms, cache directory, shallow-clone
// preference, verbosity — through a layered precedence (built-in
// defaults, then a global file, then the workspace manifest's own
// top-level keys, then command flags), tracking which layer won each
// key.
package config

// Source names the layer that supplied a resolved setting's value.
type Source string

const (
	SourceDefault   Source = "default"
	SourceGlobal    Source = "global"
	SourceWorkspace Source = "workspace"
	SourceFlag      Source = "flag"
)

// Settings are the ambient values a layer can override. Shallow and
// Verbose are pointers so a layer can distinguish "not set here" from
// an explicit false.
type Settings struct {
	Platforms []string `yaml:"platforms,omitempty"`
	CacheDir  string   `yaml:"cache_dir,omitempty"`
	Shallow   *bool    `yaml:"shallow,omitempty"`
	Verbose   *bool    `yaml:"verbose,omitempty"`
}

// Resolved is the fully resolved, non-pointer form of Settings that
// Effective exposes to callers.
type Resolved struct {
	Platforms []string
	CacheDir  string
	Shallow   bool
	Verbose   bool
}

// Effective is a fully resolved Resolved plus, per key, which layer
// supplied its value.
type Effective struct {
	Resolved
	Sources map[string]Source
}
