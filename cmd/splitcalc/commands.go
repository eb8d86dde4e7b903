package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/splitcalc/settlement-calculator/internal/calculation"
	"github.com/splitcalc/settlement-calculator/internal/config"
	"github.com/splitcalc/settlement-calculator/internal/output"
)

func newCalculateCmd(a *app) *cobra.Command {
	var format, outPath, currency string

	cmd := &cobra.Command{
		Use:   "calculate <scenario-file>",
		Short: "Compute shares, balances and settlement transfers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			a.log.Debug("loaded scenarios", "file", args[0], "count", len(cfg.Scenarios))

			report, err := a.engine().RunScenarios(cfg)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("currency") {
				currency = a.settings.Currency
			}
			output.ApplyDefaultCurrency(report, currency)

			if !cmd.Flags().Changed("format") {
				format = a.settings.Format
			}
			if outPath != "" {
				written, err := output.WriteReportFile(outPath, report, format)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", written)
				return nil
			}
			return output.WriteReport(cmd.OutOrStdout(), report, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format ("+strings.Join(output.AvailableFormatterNames(), ", ")+")")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write the report to this file instead of stdout")
	cmd.Flags().StringVar(&currency, "currency", "$", "Currency symbol for scenarios that do not set one")
	return cmd
}

func newEvenCmd(a *app) *cobra.Command {
	var billStr, tipStr, format, currency string
	var people int

	cmd := &cobra.Command{
		Use:   "even",
		Short: "Split one bill evenly, with an optional tip percentage",
		RunE: func(cmd *cobra.Command, args []string) error {
			bill, err := decimal.NewFromString(strings.TrimSpace(billStr))
			if err != nil {
				return fmt.Errorf("invalid --bill %q: %w", billStr, err)
			}
			tip := decimal.Zero
			if strings.TrimSpace(tipStr) != "" {
				if tip, err = decimal.NewFromString(strings.TrimSpace(tipStr)); err != nil {
					return fmt.Errorf("invalid --tip %q: %w", tipStr, err)
				}
			}
			if people < 1 {
				return fmt.Errorf("--people must be at least 1")
			}

			res := calculation.EvenSplit(calculation.EvenSplitInput{Bill: bill, TipPercent: tip, People: people})
			a.log.Debug("even split", "total", res.Total, "people", res.People, "remainder", res.Remainder)

			if output.NormalizeFormatName(format) == "json" {
				b, err := json.MarshalIndent(res, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			if !cmd.Flags().Changed("currency") {
				currency = a.settings.Currency
			}
			_, err = cmd.OutOrStdout().Write(output.FormatEvenSplit(res, currency))
			return err
		},
	}

	cmd.Flags().StringVar(&billStr, "bill", "", "Bill amount, e.g. 100.00")
	cmd.Flags().IntVar(&people, "people", 2, "Number of people sharing the bill")
	cmd.Flags().StringVar(&tipStr, "tip", "", "Tip percentage added on top of the bill, e.g. 15")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format (console or json)")
	cmd.Flags().StringVar(&currency, "currency", "$", "Currency symbol")
	_ = cmd.MarkFlagRequired("bill")
	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <scenario-file>",
		Short: "Check a scenario file and list calculation warnings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			report, err := a.engine().RunScenarios(cfg)
			if err != nil {
				return err
			}
			warnings := 0
			for _, sc := range report.Scenarios {
				for _, w := range sc.Warnings {
					warnings++
					if w.Expense != "" {
						fmt.Fprintf(out, "warning: %s: %s: %s\n", sc.Name, w.Expense, w.Message)
					} else {
						fmt.Fprintf(out, "warning: %s: %s\n", sc.Name, w.Message)
					}
				}
			}
			fmt.Fprintf(out, "%s is valid: %d scenario(s), %d warning(s)\n", args[0], len(cfg.Scenarios), warnings)
			return nil
		},
	}
}

func newExampleCmd(a *app) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print or save an example scenario file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if outPath != "" {
				if err := config.SaveConfiguration(cfg, outPath); err != nil {
					return fmt.Errorf("failed to save example: %w", err)
				}
				a.log.Info("example written", "path", outPath)
				fmt.Fprintf(cmd.OutOrStdout(), "Example written to %s\n", outPath)
				return nil
			}
			b, err := config.MarshalConfiguration(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write the example to this file")
	return cmd
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List report formats and aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Formats: %s\n", strings.Join(output.AvailableFormatterNames(), ", "))
			fmt.Fprintf(out, "Aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
			return nil
		},
	}
}
