// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cmd

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/archmagece/augent/internal/cliutil"
	"github.com/archmagece/augent/internal/orchestrator"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a locked bundle's source and installed files",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ws, err := currentWorkspace()
	if err != nil {
		return err
	}
	locked, files, err := orchestrator.Show(ws, args[0])
	if err != nil {
		return err
	}

	p := cliutil.NewPrinter()
	p.Title(locked.Name)
	p.KeyValue("type", locked.Source.Type)
	if locked.Source.URL != "" {
		p.KeyValue("url", locked.Source.URL)
	}
	if locked.Source.Path != "" {
		p.KeyValue("path", locked.Source.Path)
	}
	if locked.Source.SHA != "" {
		p.KeyValue("sha", locked.Source.SHA)
	}
	if locked.Source.Ref != "" {
		p.KeyValue("ref", locked.Source.Ref)
	}
	p.KeyValue("hash", locked.Source.Hash)

	bundleFiles := make([]string, 0, len(files))
	for bf := range files {
		bundleFiles = append(bundleFiles, bf)
	}
	sort.Strings(bundleFiles)

	p.Info("installed files:")
	for _, bf := range bundleFiles {
		for _, target := range files[bf] {
			p.KeyValue("  "+bf, target)
		}
	}
	return nil
}
