// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command go-refactor moves methods between structs in a Go source
// file and scans directories for move candidates.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/petar-djukic/go-refactor/internal/config"
	"github.com/petar-djukic/go-refactor/internal/logger"
)

const version = "0.1.0"

// cfg is the loaded configuration, populated before any subcommand
// runs. Flags override file and environment values.
var cfg *config.Config

func main() {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "go-refactor",
		Short: "AST-driven move-method refactoring for Go",
		Long:  "go-refactor moves methods between structs, synthesizes access members, redirects call sites, and finds feature-envy candidates.",
	}

	// Global flags.
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default .go-refactor.yaml)")
	rootCmd.PersistentFlags().String("workdir", ".", "Repository root directory")
	rootCmd.PersistentFlags().String("access", "field", "Access member kind: field or property")
	rootCmd.PersistentFlags().Bool("no-git", false, "Disable git operations")
	rootCmd.PersistentFlags().Bool("verbose", false, "Show debug output")
	rootCmd.PersistentFlags().String("log-file", "", "Append leveled logs to this file")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		applyFlagOverrides(cmd, loaded)
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded
		return logger.Init(os.Stderr, cfg.Log.File, cfg.Log.Verbose)
	}

	// Add commands.
	rootCmd.AddCommand(newMoveCmd())
	rootCmd.AddCommand(newMoveStaticCmd())
	rootCmd.AddCommand(newCandidatesCmd())
	rootCmd.AddCommand(newUndoCmd())
	rootCmd.AddCommand(newVersionCmd())

	err := rootCmd.Execute()
	logger.Close()
	if err != nil {
		os.Exit(1)
	}
}

// applyFlagOverrides copies explicitly-set global flags over the loaded
// configuration. Flags outrank both the config file and environment.
func applyFlagOverrides(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("workdir") {
		c.WorkDir, _ = flags.GetString("workdir")
	}
	if flags.Changed("access") {
		c.Access.Kind, _ = flags.GetString("access")
	}
	if flags.Changed("no-git") {
		c.Git.Disabled, _ = flags.GetBool("no-git")
	}
	if flags.Changed("verbose") {
		c.Log.Verbose, _ = flags.GetBool("verbose")
	}
	if flags.Changed("log-file") {
		c.Log.File, _ = flags.GetString("log-file")
	}
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print go-refactor version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "go-refactor %s\n", version)
		},
	}
}
