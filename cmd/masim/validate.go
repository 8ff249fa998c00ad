package main

import (
	"fmt"
	"io"

	"github.com/guttosm/mapsim/internal/domain/model"
	"github.com/guttosm/mapsim/internal/engine"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a scenario against the supported parameter ranges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadScenario(input)
			if err != nil {
				return err
			}

			violations := engine.Validate(in)
			if len(violations) > 0 {
				printViolations(cmd.OutOrStdout(), violations)
				return errViolations
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Scenario YAML file")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func printViolations(w io.Writer, violations []model.Violation) {
	for _, v := range violations {
		fmt.Fprintf(w, "%s (%s): %s\n", v.Code, v.Field, v.Message)
	}
}
