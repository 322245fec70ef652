// Package cli implements the tint command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tinthq/tint/internal/config"
	"github.com/tinthq/tint/internal/logging"
)

var (
	cfgPath   string
	logLevel  string
	logFormat string
	jsonOut   bool

	appCfg *config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tint",
	Short: "Deterministic workspace color palettes",
	Long: "tint derives a stable base hue from a workspace identifier and " +
		"expands it into a harmonized per-surface color palette, optionally " +
		"blended toward an editor theme.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		appCfg = cfg

		level := cfg.Log.Level
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		format := cfg.Log.Format
		if cmd.Flags().Changed("log-format") {
			format = logFormat
		}
		logger = logging.New(level, format, os.Stderr)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace..error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format (console or json)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "emit JSON instead of tables")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// GetConfig returns the loaded configuration, if any.
func GetConfig() *config.Config {
	return appCfg
}
