// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/tender-engine/internal/layout"
	"github.com/pdiddy/tender-engine/pkg/types"
)

func initConfig() {
	defaults := types.DefaultDelays()
	viper.SetDefault("root", "")
	viper.SetDefault("color", true)
	viper.SetDefault("delays.startup", defaults.Startup)
	viper.SetDefault("delays.step", defaults.Step)
	viper.SetDefault("delays.phase", defaults.Phase)
	viper.SetDefault("delays.hold", defaults.Hold)

	_ = viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tender-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "tender-engine"))
		}
	}

	viper.SetEnvPrefix("TENDER_ENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// engineConfig assembles the run configuration from viper and the
// persistent flags. Flags win over environment, file and defaults.
func engineConfig(cmd *cobra.Command) (types.EngineConfig, error) {
	var cfg types.EngineConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}

	if fast, _ := cmd.Flags().GetBool("fast"); fast {
		cfg.Delays = types.DelayConfig{}
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.Color = false
	}

	if cfg.Root == "" {
		root, err := layout.DefaultRoot()
		if err != nil {
			return cfg, err
		}
		cfg.Root = root
	}
	return cfg, nil
}
