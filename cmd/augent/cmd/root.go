// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package cmd implements the augent CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/archmagece/augent/internal/cliutil"
)

var appVersion string

var (
	flagVerbose  bool
	flagQuiet    bool
	flagCacheDir string
)

var rootCmd = &cobra.Command{
	Use:   "augent",
	Short: "Reproducible package manager for AI assistant bundles",
	Long: `augent resolves, caches, and installs bundles of AI assistant configuration
(commands, rules, skills, agents, MCP server configs, and knowledge files)
across the coding assistant you use.
` + cliutil.QuickStartHelp(`  # Initialize a workspace and install its declared sources
  augent workspace init
  augent install

  # Inspect what is installed
  augent list
  augent show my-bundle`),
	Version: appVersion,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir := ""
		if ws, err := currentWorkspace(); err == nil {
			configDir = ws.ConfigDir
		}
		_, err := resolveEffectiveConfig(configDir)
		return err
	},
}

// Execute registers the root persistent flags, assigns command groups
// and usage templates to the subcommands their init functions added, and
// runs the root command. Called once from main.main.
func Execute(version string) {
	appVersion = version
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("augent version {{.Version}}\n")

	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug-level logging")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress everything below warnings")
	rootCmd.PersistentFlags().StringVar(&flagCacheDir, "cache-dir", "", "override the resolved source cache directory")

	setCommandGroups(rootCmd)
	applyUsageTemplateRecursive(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setCommandGroups(cmd *cobra.Command) {
	coreGroup := &cobra.Group{ID: "core", Title: cliutil.ColorYellowBold + "Bundle Operations" + cliutil.ColorReset}
	mgmtGroup := &cobra.Group{ID: "mgmt", Title: cliutil.ColorYellowBold + "Workspace & Cache" + cliutil.ColorReset}
	cmd.AddGroup(coreGroup, mgmtGroup)

	for _, c := range cmd.Commands() {
		if c.Name() == "help" || c.Name() == "completion" || c.Name() == "version" {
			continue
		}
		switch c.Name() {
		case "install", "uninstall", "list", "show":
			c.GroupID = coreGroup.ID
		case "workspace", "cache":
			c.GroupID = mgmtGroup.ID
		}
	}
}

func applyUsageTemplateRecursive(cmd *cobra.Command) {
	cmd.SetUsageTemplate(usageTemplate)
	// Cobra does not propagate these to children; set on every command so
	// runtime errors never print a usage dump underneath them.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	for _, c := range cmd.Commands() {
		applyUsageTemplateRecursive(c)
	}
}

const usageTemplate = `{{if .Runnable}}` + cliutil.ColorGreenBold + `Usage:` + cliutil.ColorReset + `
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}` + cliutil.ColorGreenBold + `Usage:` + cliutil.ColorReset + `
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

` + cliutil.ColorGreenBold + `Examples:` + cliutil.ColorReset + `
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

Available Commands:{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{.Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if not .AllChildCommandsHaveGroup}}

Additional Commands:{{range $cmds}}{{if (and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

` + cliutil.ColorGreenBold + `Flags:` + cliutil.ColorReset + `
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

` + cliutil.ColorGreenBold + `Global Flags:` + cliutil.ColorReset + `
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
