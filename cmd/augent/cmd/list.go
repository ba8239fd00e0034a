// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archmagece/augent/internal/cliutil"
	"github.com/archmagece/augent/internal/orchestrator"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every bundle locked into the workspace",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	ws, err := currentWorkspace()
	if err != nil {
		return err
	}
	bundles, err := orchestrator.List(ws)
	if err != nil {
		return err
	}

	p := cliutil.NewPrinter()
	if len(bundles) == 0 {
		p.Info("no bundles installed")
		return nil
	}
	for _, b := range bundles {
		ref := b.Source.Ref
		if ref == "" {
			ref = "-"
		}
		p.KeyValue(b.Name, fmt.Sprintf("%s (ref %s, hash %s)", b.Source.Type, ref, shortHash(b.Source.Hash)))
	}
	return nil
}

func shortHash(hash string) string {
	if len(hash) <= 12 {
		return hash
	}
	return hash[:12]
}
