// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the tender-engine CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built in PersistentPreRunE and flushed after every command.
var logger = zap.NewNop()

// rootCmd is the base command for the tender-engine CLI. Without a
// subcommand it runs the simulated engine, like "tender-engine run".
var rootCmd = &cobra.Command{
	Use:   "tender-engine",
	Short: "Simulated TenderWriter pipeline narrator",
	Long: `tender-engine checks a TenderWriter installation for its agent and
workflow definitions and its two tender inputs (input/tech.md and
input/score.md), then narrates the outline, content and asset generation
phases. Nothing is generated and nothing is written.

A missing file is reported on stdout and the command still exits 0.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	Args: cobra.NoArgs,
	RunE: runEngine,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./tender-engine.yaml or ~/.config/tender-engine/config.yaml)")
	flags.String("root", "", "installation root (default: directory of the executable)")
	flags.Bool("fast", false, "skip all pacing delays")
	flags.Bool("no-color", false, "disable coloured output")
	flags.BoolP("verbose", "v", false, "debug logging on stderr")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
