// SPDX-License-Identifier: MIT

// Command fieldprof extracts and renders 1-D profiles of sampled 2-D fields.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/fieldprof/internal/config"
	"github.com/katalvlaran/fieldprof/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	cfgPath   string
	logLevel  string
	outFormat string

	// Resolved configuration and logger, set by PersistentPreRunE.
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fieldprof",
	Short: "Profiles of sampled 2-D fields",
	Long: `fieldprof reads sampled 2-D fields (JSON or YAML documents) and extracts
1-D profiles from them: Cartesian slices through the origin (x, y) and
azimuthal statistics over concentric annuli (azavg, azmedian, azmin, azmax,
azpv, azvar, azstd). It can also sample a field at arbitrary coordinates.

Settings come from built-in defaults, then --config (YAML), then FIELDPROF_*
environment variables, then flags.

Without input files a centered Gaussian is used.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.Logging.Level = logLevel
		}
		if cmd.Flags().Changed("format") {
			cfg.Output.Format = outFormat
		}
		if err = cfg.Validate(); err != nil {
			return err
		}
		if logger, err = logging.New(cfg.Logging); err != nil {
			return err
		}
		logger.Debug("configuration loaded", zap.String("config", cfgPath), zap.String("format", cfg.Output.Format))

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&outFormat, "format", "f", config.FormatTable, "Output format (table, csv, json)")

	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(kindsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
