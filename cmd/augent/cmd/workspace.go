// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/archmagece/augent/internal/cliutil"
	"github.com/archmagece/augent/internal/manifest"
)

var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Manage the workspace's manifest and config directory",
}

var workspaceInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty augent.yaml for the current workspace",
	Long: `init resolves the workspace root (the surrounding git repository, or
the current directory) and writes an empty augent.yaml there if one
doesn't already exist. Run "augent install" afterwards to pull in
sources once you've added bundles: entries.`,
	RunE: runWorkspaceInit,
}

func init() {
	rootCmd.AddCommand(workspaceCmd)
	workspaceCmd.AddCommand(workspaceInitCmd)
}

func runWorkspaceInit(cmd *cobra.Command, args []string) error {
	ws, err := currentWorkspace()
	if err != nil {
		return err
	}

	p := cliutil.NewPrinter()
	manifestPath := filepath.Join(ws.Root, manifest.FileName)
	if _, err := os.Stat(manifestPath); err == nil {
		p.Info(manifestPath + " already exists")
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	b := &manifest.Bundle{Name: ws.Name()}
	if err := manifest.SaveBundle(manifestPath, b, ws.Name()); err != nil {
		return err
	}
	if err := ws.EnsureConfigDir(); err != nil {
		return err
	}
	p.Success("wrote " + manifestPath)
	return nil
}
