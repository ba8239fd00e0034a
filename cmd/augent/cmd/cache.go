// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archmagece/augent/internal/cliutil"
	"github.com/archmagece/augent/internal/orchestrator"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and manage the content-addressed bundle cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate cache size and entry count",
	RunE:  runCacheStats,
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached bundles grouped by name",
	RunE:  runCacheList,
}

var cacheClearYes bool

var cacheClearCmd = &cobra.Command{
	Use:   "clear [name]",
	Short: "Remove one cached bundle, or the entire cache with no argument",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCacheClear,
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheStatsCmd, cacheListCmd, cacheClearCmd)
	cacheClearCmd.Flags().BoolVarP(&cacheClearYes, "yes", "y", false, "skip the confirmation prompt")
}

func runCacheStats(cmd *cobra.Command, args []string) error {
	stats, err := orchestrator.CacheStats()
	if err != nil {
		return err
	}
	p := cliutil.NewPrinter()
	p.KeyValue("entries", fmt.Sprintf("%d", stats.EntryCount))
	p.KeyValue("size", stats.FormattedSize())
	return nil
}

func runCacheList(cmd *cobra.Command, args []string) error {
	bundles, err := orchestrator.CacheList()
	if err != nil {
		return err
	}
	p := cliutil.NewPrinter()
	if len(bundles) == 0 {
		p.Info("cache is empty")
		return nil
	}
	for _, b := range bundles {
		p.KeyValue(b.Name, fmt.Sprintf("%d version(s), %s", b.Versions, b.FormattedSize()))
	}
	return nil
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	p := cliutil.NewPrinter()

	title := "Clear the entire cache?"
	if len(args) == 1 {
		title = fmt.Sprintf("Remove %s from the cache?", args[0])
	}
	if !cacheClearYes {
		ok, err := cliutil.Confirm(title, "Any cloned source not yet re-fetched will need to be cloned again.")
		if err != nil {
			return err
		}
		if !ok {
			p.Info("cancelled")
			return nil
		}
	}

	if len(args) == 0 {
		if err := orchestrator.CacheClear(); err != nil {
			return err
		}
		p.Success("cleared the entire cache")
		return nil
	}
	if err := orchestrator.CacheRemove(args[0]); err != nil {
		return err
	}
	p.Success(fmt.Sprintf("removed %s from the cache", args[0]))
	return nil
}
