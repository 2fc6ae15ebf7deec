package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/linked-calc/internal/logging"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// errSilent marks failures that were already reported to the user.
var errSilent = errors.New("silent failure")

func newRootCmd() *cobra.Command {
	var (
		logLevel string
		quiet    bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Validate and evaluate left-to-right arithmetic expressions",
		Long: `calc evaluates expressions made of digits, decimal points and the operators + - * /.
Operators are applied strictly left to right, so 2+3*4 is 20.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if quiet {
				slog.SetDefault(logging.NewNop())
				return nil
			}
			_, err := logging.Setup(logLevel, formatText)
			return err
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Discard all log output")

	cmd.AddCommand(
		newEvalCmd(),
		newValidateCmd(),
		newSuiteCmd(),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errSilent) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		}
		os.Exit(1)
	}
}

func checkFormat(format string) error {
	if format != formatText && format != formatJSON {
		return fmt.Errorf("invalid format %q (must be %s or %s)", format, formatText, formatJSON)
	}
	return nil
}
