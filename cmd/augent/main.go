// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Command augent is the CLI entry point for the bundle package manager.
package main

import (
	"github.com/archmagece/augent/cmd/augent/cmd"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cmd.Execute(version)
}
