package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/splitcalc/settlement-calculator/internal/calculation"
	"github.com/splitcalc/settlement-calculator/internal/config"
	"github.com/splitcalc/settlement-calculator/pkg/logging"
)

const appVersion = "0.1.0"

// app carries the settings and logger shared by every subcommand.
type app struct {
	envFile  string
	logLevel string
	settings config.Settings
	log      *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "splitcalc",
		Short:         "Split shared bills and work out who pays whom",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.LoadSettings(a.envFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				s.LogLevel = a.logLevel
			}
			a.settings = s
			a.log = logging.SetupWithLevel(cmd.ErrOrStderr(), logging.ParseLevel(s.LogLevel))
			return nil
		},
	}
	cmd.SetVersionTemplate("splitcalc v{{.Version}}\n")

	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")
	cmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "Optional .env file with SPLITCALC_* defaults")

	cmd.AddCommand(
		newCalculateCmd(a),
		newEvenCmd(a),
		newValidateCmd(a),
		newExampleCmd(a),
		newFormatsCmd(),
	)
	return cmd
}

func (a *app) engine() *calculation.Engine {
	e := calculation.NewEngine()
	e.SetLogger(calculation.NewSlogLogger(a.log))
	return e
}
