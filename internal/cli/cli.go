// Package cli implements the command-line interface for hr-reportgen.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/hrops/hr-reportgen/internal/config"
	"github.com/hrops/hr-reportgen/internal/logging"
	"github.com/hrops/hr-reportgen/pkg/version"
)

var (
	// Global flags
	cfgFile    string
	connection string
	logLevel   string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "hr-reportgen",
		Short: "HR attrition reporting pipeline for PostgreSQL warehouses",
		Long: `hr-reportgen reads the employee tables an upstream SQL pipeline
maintains in a PostgreSQL warehouse, enriches them into a wide analytics
table, computes monthly organization-level attrition statistics, and exports
two CSV bundles: an exploratory showcase dataset and a cleaned star schema
ready for a BI tool, plus a monthly attrition trend chart.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./hr-reportgen.yaml)")
	rootCmd.PersistentFlags().StringVar(&connection, "connection", "",
		"PostgreSQL connection string")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(seedCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if connection != "" {
		cfg.Connection = connection
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}
