// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/archmagece/augent/internal/cliutil"
	"github.com/archmagece/augent/internal/orchestrator"
	"github.com/archmagece/augent/internal/watch"
	"github.com/archmagece/augent/internal/workspace"
)

var watchPlatforms []string

var workspaceWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reinstall automatically whenever augent.yaml or the lockfile changes",
	Long: `watch monitors the workspace's augent.yaml, augent.lock, and config
directory and re-runs install every time one of them is edited on disk.
Exit with Ctrl-C.`,
	RunE: runWorkspaceWatch,
}

func init() {
	workspaceCmd.AddCommand(workspaceWatchCmd)
	workspaceWatchCmd.Flags().StringSliceVar(&watchPlatforms, "platform", nil, "target platform ids (default: auto-detect)")
}

func runWorkspaceWatch(cmd *cobra.Command, args []string) error {
	ws, err := currentWorkspace()
	if err != nil {
		return err
	}
	if err := ws.EnsureConfigDir(); err != nil {
		return err
	}

	w, err := watch.New(watch.Options{})
	if err != nil {
		return err
	}

	paths := watchedPaths(ws)
	if err := w.Start(cmd.Context(), paths); err != nil {
		return err
	}
	defer w.Stop()

	p := cliutil.NewPrinter()
	p.Info("watching for changes, press Ctrl-C to stop")
	for _, path := range paths {
		p.Info("  " + path)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	reinstall(p, ws)
	for {
		select {
		case <-ctx.Done():
			p.Info("stopped")
			return nil
		case ev, ok := <-w.Events():
			if !ok {
				return nil
			}
			p.Info("change detected: " + ev.Path)
			reinstall(p, ws)
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			p.Warning("watch error: " + err.Error())
		}
	}
}

// watchedPaths returns every file and directory whose changes should
// trigger a reinstall: the bundle manifest, the lockfile (both may not
// exist yet), and the config directory itself for new sibling files.
func watchedPaths(ws *workspace.Workspace) []string {
	candidates := []string{
		filepath.Join(ws.Root, workspace.BundleConfigFile),
		filepath.Join(ws.ConfigDir, workspace.LockfileName),
		ws.ConfigDir,
	}

	var paths []string
	seen := make(map[string]bool)
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		if _, err := os.Stat(c); err != nil {
			continue
		}
		seen[c] = true
		paths = append(paths, c)
	}
	return paths
}

func reinstall(p *cliutil.Printer, ws *workspace.Workspace) {
	result, err := orchestrator.Install(context.Background(), ws, orchestrator.InstallOptions{
		PlatformIDs: watchPlatforms,
	})
	if err != nil {
		p.Error(err.Error())
		return
	}
	p.Success("reinstalled " + filepath.Base(ws.Root))
	if result.PreservedFiles > 0 {
		p.Warning(fmt.Sprintf("preserved %d hand-edited file(s)", result.PreservedFiles))
	}
}
