// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdiddy/tender-engine/internal/engine"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report which required files are present",
	Long: `Check lists the two definition files and the two tender inputs with
their presence. It reports every file instead of stopping at the first
missing one, and exits 0 either way.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := engineConfig(cmd)
	if err != nil {
		return err
	}

	files, err := engine.Check(cfg.Root)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	missing := 0
	for _, f := range files {
		status := "ok"
		if !f.Present {
			status = "missing"
			missing++
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", status, f.Role, f.Path)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing check report: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d required files present\n", len(files)-missing, len(files))
	return nil
}
