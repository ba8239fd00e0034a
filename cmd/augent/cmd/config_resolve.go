// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cmd

import (
	"os"

	"github.com/archmagece/augent/internal/cache"
	"github.com/archmagece/augent/internal/config"
	"github.com/archmagece/augent/internal/gitadapter"
	"github.com/archmagece/augent/internal/logging"
	"github.com/archmagece/augent/internal/ratelimit"
)

// effectiveConfig holds the most recently resolved configuration, set
// by the root command's PersistentPreRunE before any subcommand's RunE
// runs. Subcommands that want the resolved default platform list (e.g.
// install, when --platform wasn't given) read it here instead of
// re-resolving.
var effectiveConfig *config.Effective

// resolveEffectiveConfig loads the global and (if configDir is
// non-empty) workspace config layers, folds in the root persistent
// flags, and applies the result: it installs the package-level logger
// and git rate limiter, sets the shallow-clone preference, and exports
// AUGENT_CACHE_DIR whenever the resolved cache directory is non-empty.
func resolveEffectiveConfig(configDir string) (*config.Effective, error) {
	loader, err := config.NewLoader()
	if err != nil {
		return nil, err
	}
	if configDir != "" {
		if err := loader.LoadWorkspace(configDir); err != nil {
			return nil, err
		}
	}

	flags := map[string]interface{}{}
	if flagVerbose {
		flags["verbose"] = true
	}
	if flagCacheDir != "" {
		flags["cacheDir"] = flagCacheDir
	}

	eff := loader.Resolve(flags)
	applyEffectiveConfig(eff)
	effectiveConfig = eff
	return eff, nil
}

func applyEffectiveConfig(eff *config.Effective) {
	level := logging.LevelFromFlags(eff.Verbose, flagQuiet)
	logging.Configure(logging.New(level))

	if eff.CacheDir != "" {
		os.Setenv("AUGENT_CACHE_DIR", eff.CacheDir)
	}

	cache.SetShallow(eff.Shallow)
	gitadapter.Configure(ratelimit.New(0, 0))
}
