package main

import (
	"encoding/json"
	"fmt"

	"github.com/DjordjeVuckovic/linked-calc/internal/dto"
	"github.com/DjordjeVuckovic/linked-calc/internal/evaluation"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "validate <expression>",
		Short: "Check an expression without evaluating it",
		Long:  `Reports whether the expression is well formed. Exits non-zero when it is not.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			verdict := evaluation.NewService(nil).Validate(cmd.Context(), args[0])

			out := cmd.OutOrStdout()
			if format == formatJSON {
				if err := json.NewEncoder(out).Encode(dto.NewValidateResponse(verdict)); err != nil {
					return err
				}
			} else if verdict.Valid {
				fmt.Fprintln(out, "valid")
			} else {
				fmt.Fprintf(out, "invalid: %s\n", verdict.Syntax)
			}

			if !verdict.Valid {
				return errSilent
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "Output format: text or json")
	return cmd
}
