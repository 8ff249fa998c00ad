package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/guttosm/mapsim/internal/chart"
	"github.com/guttosm/mapsim/internal/domain/model"
	"github.com/guttosm/mapsim/internal/service"
	"github.com/spf13/cobra"
)

var csvHeader = []string{"time_days", "o2_pct", "co2_pct", "c2h4_ppm", "c2h4_unscavenged_ppm"}

type runOptions struct {
	input     string
	output    string
	every     int
	chartsDir string
}

func newRunCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate a scenario and print its summary",
		Long: "run simulates the scenario, prints the final atmosphere and optionally writes the " +
			"series as CSV and the two charts as PNG files.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Scenario YAML file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the series to this CSV file")
	cmd.Flags().IntVar(&opts.every, "every", 60, "Keep every n-th step in the CSV (1 keeps all)")
	cmd.Flags().StringVar(&opts.chartsDir, "charts", "", "Write atmosphere.png and ethylene.png to this directory")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func runScenario(cmd *cobra.Command, opts runOptions) error {
	in, err := loadScenario(opts.input)
	if err != nil {
		return err
	}

	out, err := service.NewSimulatorService().Simulate(cmd.Context(), in)
	if err != nil {
		return err
	}
	if !out.Valid() {
		printViolations(cmd.OutOrStdout(), out.Violations)
		return errViolations
	}

	printSummary(cmd.OutOrStdout(), out.Result)

	if opts.output != "" {
		if err := writeCSVFile(opts.output, out.Result, opts.every); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "series written to %s\n", opts.output)
	}

	if opts.chartsDir != "" {
		if err := writeCharts(opts.chartsDir, out.Result); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "charts written to %s\n", opts.chartsDir)
	}
	return nil
}

func printSummary(w io.Writer, r *model.SimulationResult) {
	last := r.Len() - 1
	fmt.Fprintf(w, "steps:            %d\n", r.Rates.Steps)
	fmt.Fprintf(w, "headspace:        %.1f mL\n", r.Rates.HeadspaceVolumeML)
	fmt.Fprintf(w, "final O2:         %.3f %%\n", r.OxygenPct[last])
	fmt.Fprintf(w, "final CO2:        %.3f %%\n", r.CarbonDioxidePct[last])
	fmt.Fprintf(w, "final C2H4:       %.4f ppm\n", r.EthylenePPM[last])
	if r.ScavengerExhaustedDay != nil {
		fmt.Fprintf(w, "scavenger spent:  day %.3f\n", *r.ScavengerExhaustedDay)
	} else {
		fmt.Fprintf(w, "scavenger left:   %.1f of %.1f ppm\n", r.RemainingScavengerCapacityPPM, r.MaxScavengerCapacityPPM)
	}
}

func writeCSVFile(path string, r *model.SimulationResult, every int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	if err := writeCSV(f, r, every); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// writeCSV writes every n-th state plus the final one.
func writeCSV(w io.Writer, r *model.SimulationResult, every int) error {
	sampled := r.Sample(model.EveryIndices(r.Len(), every))

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i := range sampled.TimesInDays {
		if err := cw.Write([]string{
			formatFloat(sampled.TimesInDays[i]),
			formatFloat(sampled.OxygenPct[i]),
			formatFloat(sampled.CarbonDioxidePct[i]),
			formatFloat(sampled.EthylenePPM[i]),
			formatFloat(sampled.UnscavengedEthylenePPM[i]),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}

func writeCharts(dir string, r *model.SimulationResult) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	opts := chart.DefaultOptions()
	opts.ShowUnscavenged = r.MaxScavengerCapacityPPM > 0

	for name, render := range map[string]func(*model.SimulationResult, chart.Options) ([]byte, error){
		"atmosphere.png": chart.RenderAtmosphere,
		"ethylene.png":   chart.RenderEthylene,
	} {
		png, err := render(r, opts)
		if err != nil {
			return fmt.Errorf("render %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), png, 0o644); err != nil {
			return err
		}
	}
	return nil
}
