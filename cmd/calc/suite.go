package main

import (
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/linked-calc/internal/suite"
	"github.com/spf13/cobra"
)

func newSuiteCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "suite [file]",
		Short: "Run a YAML suite of expression cases",
		Long: `Runs every case of the given suite file, or of the built-in regression suite
when no file is given, and prints a result table. Exits non-zero if any case fails.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSuite(args)
			if err != nil {
				return err
			}

			report, err := suite.Run(cmd.Context(), s)
			if err != nil {
				return err
			}

			suite.WriteTable(report, cmd.OutOrStdout())

			if output != "" {
				if err := suite.WriteJSON(report, output); err != nil {
					return err
				}
				slog.Info("Report written", "path", output)
			}

			if !report.OK() {
				return fmt.Errorf("%d of %d cases failed", report.Failed, len(report.Results))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write a JSON report to this path")
	return cmd
}

func loadSuite(args []string) (*suite.Suite, error) {
	if len(args) == 0 {
		return suite.Default()
	}
	return suite.LoadFromFile(args[0])
}
