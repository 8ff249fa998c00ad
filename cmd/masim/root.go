package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/guttosm/mapsim/internal/logger"
	"github.com/spf13/cobra"
)

// errViolations marks a scenario rejected by validation. The violations have
// already been printed, so Execute only sets the exit code.
var errViolations = errors.New("scenario has violations")

func newRootCmd(out io.Writer) *cobra.Command {
	var (
		logLevel string
		pretty   bool
	)

	root := &cobra.Command{
		Use:           "masim",
		Short:         "Modified atmosphere package simulator",
		Long:          "masim simulates O2, CO2 and ethylene in a perforated produce package described by a YAML scenario.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.InitWithWriter(cmd.ErrOrStderr(), logLevel, pretty)
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&pretty, "log-pretty", true, "Human readable log output")

	root.AddCommand(newRunCmd(), newValidateCmd(), newKeysCmd())
	return root
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		if !errors.Is(err, errViolations) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
