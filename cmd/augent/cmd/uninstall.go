// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archmagece/augent/internal/cliutil"
	"github.com/archmagece/augent/internal/orchestrator"
)

var uninstallYes bool

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <name>",
	Short: "Remove an installed bundle from the workspace",
	Long: `uninstall deletes every file a locked bundle wrote, then drops its
lockfile and index entries. It refuses when another locked bundle still
depends on it.`,
	Args: cobra.ExactArgs(1),
	RunE: runUninstall,
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
	uninstallCmd.Flags().BoolVarP(&uninstallYes, "yes", "y", false, "skip the confirmation prompt")
}

func runUninstall(cmd *cobra.Command, args []string) error {
	ws, err := currentWorkspace()
	if err != nil {
		return err
	}

	if !uninstallYes {
		ok, err := cliutil.Confirm(fmt.Sprintf("Remove %s?", args[0]), "Every file it installed will be deleted.")
		if err != nil {
			return err
		}
		if !ok {
			cliutil.NewPrinter().Info("cancelled")
			return nil
		}
	}

	if err := orchestrator.Uninstall(ws, args[0]); err != nil {
		return err
	}
	cliutil.NewPrinter().Success(fmt.Sprintf("removed %s", args[0]))
	return nil
}
