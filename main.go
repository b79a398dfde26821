// quest runs Quest for True Color.
//
// Usage:
//
//	quest play      - Play, starting at the configured level
//	quest levels    - List the available levels
//
// Global flags:
//
//	--config <path>     - Load settings from a YAML file
//	--log-level <lvl>   - Override the configured log level
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/milk9111/truecolor/config"
)

var (
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quest",
	Short: "Quest for True Color, a small side-scrolling platformer",
	Long: `Quest for True Color is a side-scrolling platformer. Collect coins,
help the villagers and find your way through the portals.

Examples:
  quest play
  quest play --level level_2 --debug
  quest levels --check`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a quest.yaml settings file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
}

// setup loads the configuration and builds the logger every command uses.
func setup() (config.Config, *log.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, nil, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "quest",
		Level:           cfg.LogLevel(),
	})
	return cfg, logger, nil
}
