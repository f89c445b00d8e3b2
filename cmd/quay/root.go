package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "quay",
	Short: "Quay - BitTorrent index backend",
	Long: `Quay is the backend of a BitTorrent index site.

It resolves its configuration from layered sources:
  - Inline TOML in the QUAY_CONFIG_TOML environment variable
  - A configuration file named by QUAY_CONFIG_TOML_PATH or --config
  - QUAY_CONFIG_OVERRIDE_* environment variable overrides
  - Built-in defaults

For more information, visit: https://github.com/harborhq/quay`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "quay.toml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
