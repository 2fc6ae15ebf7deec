package main

import (
	"encoding/json"
	"fmt"

	"github.com/DjordjeVuckovic/linked-calc/internal/dto"
	"github.com/DjordjeVuckovic/linked-calc/internal/evaluation"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an expression",
		Example: `  calc eval 1.5+2.5
  calc eval 2+3*4 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			res, err := evaluation.NewService(nil).Evaluate(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if format == formatJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(dto.NewEvaluateResponse(res))
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Display)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "Output format: text or json")
	return cmd
}
