// Package root contains the root command for the application
package root

import (
	"fjacquet/camt-json/internal/common"
	"fjacquet/camt-json/internal/config"
	"fjacquet/camt-json/internal/xmlutils"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg holds the loaded application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "camt-json",
		Short: "A CLI tool to convert camt.053 bank statements to structured JSON.",
		Long: `camt-json reads an ISO 20022 camt.053.001.02 bank-to-customer statement
and maps its messages, balances and transactions into a structured
record tree for accounting and reconciliation use.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to camt-json!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Invalid configuration: %v", err)
			}
			Cfg = cfg

			// Propagate the configured logger to the library packages
			xmlutils.SetLogger(Log)
			common.SetLogger(Log)

			if cfg.CSV.Delimiter != "" {
				common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			}
		},
	}
)
