// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/tender-engine/internal/layout"
	"github.com/pdiddy/tender-engine/internal/script"
)

var phasesCmd = &cobra.Command{
	Use:   "phases",
	Short: "Print the narrated phases as data",
	Long: `Phases prints the phase and step records the engine narrates, as YAML
or JSON. No file is checked and no pacing applies.`,
	Args: cobra.NoArgs,
	RunE: runPhases,
}

func init() {
	phasesCmd.Flags().String("format", "yaml", "output format: yaml or json")

	rootCmd.AddCommand(phasesCmd)
}

func runPhases(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cfg, err := engineConfig(cmd)
	if err != nil {
		return err
	}
	paths, err := layout.Resolve(cfg.Root)
	if err != nil {
		return err
	}
	phases := script.Phases(paths)

	var data []byte
	switch format {
	case "yaml":
		data, err = yaml.Marshal(phases)
	case "json":
		data, err = json.MarshalIndent(phases, "", "  ")
	default:
		return fmt.Errorf("unknown format %q: use yaml or json", format)
	}
	if err != nil {
		return fmt.Errorf("encoding phases: %w", err)
	}
	if format == "json" {
		data = append(data, '\n')
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
