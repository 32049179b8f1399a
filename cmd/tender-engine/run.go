// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/tender-engine/internal/engine"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Check the installation and narrate the generation phases",
	Long: `Run announces the engine start, checks the agent and workflow
definitions, checks the tender inputs, and then narrates outline, content
and asset generation. Checks stop the run early on a missing file; the
command still succeeds.`,
	Args: cobra.NoArgs,
	RunE: runEngine,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runEngine(cmd *cobra.Command, args []string) error {
	cfg, err := engineConfig(cmd)
	if err != nil {
		return err
	}

	result, err := engine.Run(cmd.Context(), cfg, cmd.OutOrStdout(), engine.WithLogger(logger))
	if err != nil {
		return err
	}
	if !result.Completed() {
		logger.Debug("run stopped early", zap.String("outcome", string(result.Outcome)))
	}
	return nil
}
