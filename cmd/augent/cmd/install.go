// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archmagece/augent/internal/cliutil"
	"github.com/archmagece/augent/internal/config"
	"github.com/archmagece/augent/internal/orchestrator"
)

var (
	installPlatforms []string
	installDryRun    bool
)

var installCmd = &cobra.Command{
	Use:   "install [source...]",
	Short: "Resolve and install bundles into the workspace",
	Long: `install resolves the given sources (or, with none given, every "bundles:"
entry in augent.yaml), transforms each bundle's resources for the target
platforms, and writes them into the workspace. Files you have hand-edited
since the last install are preserved rather than overwritten.`,
	Example: `  # Install everything declared in augent.yaml
  augent install

  # Install one additional source without adding it to augent.yaml
  augent install github:acme/review-bundle

  # Preview what would change without writing anything
  augent install --dry-run`,
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
	installCmd.Flags().StringSliceVar(&installPlatforms, "platform", nil, "target platform ids (default: auto-detect)")
	installCmd.Flags().BoolVar(&installDryRun, "dry-run", false, "resolve and report without writing files")
}

func runInstall(cmd *cobra.Command, args []string) error {
	ws, err := currentWorkspace()
	if err != nil {
		return err
	}

	platforms := installPlatforms
	if len(platforms) == 0 && effectiveConfig != nil && effectiveConfig.Sources["platforms"] != config.SourceDefault {
		platforms = effectiveConfig.Platforms
	}

	p := cliutil.NewPrinter()
	result, err := orchestrator.Install(context.Background(), ws, orchestrator.InstallOptions{
		Sources:     args,
		PlatformIDs: platforms,
		DryRun:      installDryRun,
	})
	if err != nil {
		return err
	}

	verb := "Installed"
	if installDryRun {
		verb = "Would install"
	}
	p.Success(fmt.Sprintf("%s %d resource(s) across %d platform(s)", verb, len(result.Installed), len(result.Platforms)))
	if result.PreservedFiles > 0 {
		p.Warning(fmt.Sprintf("preserved %d hand-edited file(s)", result.PreservedFiles))
	}
	for _, pf := range result.Platforms {
		p.Info("  platform: " + pf.ID)
	}
	return nil
}
