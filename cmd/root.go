// Package cmd wires the kg-covid-19 CLI.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ielis/kg-covid-19/internal/config"
	"github.com/ielis/kg-covid-19/internal/observability"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "kg-covid-19",
	Short: "Build KGX node/edge graphs from disease annotation sources",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		logger = observability.NewLogger(cfg.Logger)
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./kg.yaml)")
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}
