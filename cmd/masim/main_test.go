package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shortScenario = `description: strawberries, short run
produce_mass_kg: 1
storage_temperature_c: 10
perforation_diameter_micron: 200
perforation_count: 2
scavenger_mass_g: 1
package_volume_l: 2
test_duration_days: 0.1
`

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDecodeScenario(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{name: "complete scenario", yaml: shortScenario},
		{name: "empty document", yaml: "", wantErr: "empty scenario"},
		{name: "unknown key", yaml: shortScenario + "colour: red\n", wantErr: "colour"},
		{
			name:    "missing keys are listed",
			yaml:    "produce_mass_kg: 1\npackage_volume_l: 2\n",
			wantErr: "storage_temperature_c, perforation_diameter_micron, perforation_count, scavenger_mass_g, test_duration_days",
		},
		{name: "not a number", yaml: strings.Replace(shortScenario, "produce_mass_kg: 1", "produce_mass_kg: heavy", 1), wantErr: "decode scenario"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := decodeScenario(strings.NewReader(tt.yaml))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1.0, in.ProduceMassKg)
			assert.Equal(t, 200.0, in.PerforationDiameterMicron)
			assert.Equal(t, 0.1, in.TestDurationDays)
		})
	}
}

func TestValidateCmd(t *testing.T) {
	tests := []struct {
		name     string
		scenario string
		wantErr  error
		contains []string
	}{
		{name: "valid scenario", scenario: shortScenario, contains: []string{"ok"}},
		{
			name:     "violations are printed",
			scenario: strings.Replace(shortScenario, "test_duration_days: 0.1", "test_duration_days: 20", 1),
			wantErr:  errViolations,
			contains: []string{"test_duration (test_duration_days): Time must be ≤ 15 days."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "validate", "-i", writeScenario(t, tt.scenario))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
		})
	}
}

func TestValidateCmd_MissingFile(t *testing.T) {
	_, err := execute(t, "validate", "-i", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open scenario")
}

func TestRunCmd(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "series.csv")
	chartsDir := filepath.Join(dir, "charts")

	out, err := execute(t, "run", "-i", writeScenario(t, shortScenario), "-o", csvPath, "--every", "600", "--charts", chartsDir)
	require.NoError(t, err)

	assert.Contains(t, out, "steps:            8640")
	assert.Contains(t, out, "final O2:")
	assert.Contains(t, out, "series written to "+csvPath)

	f, err := os.Open(csvPath)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	// indices 0, 600, ..., 8400 plus the final state 8640
	require.Len(t, rows, 1+16)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "0", rows[1][3], "ethylene starts at zero")

	for _, name := range []string{"atmosphere.png", "ethylene.png"} {
		info, err := os.Stat(filepath.Join(chartsDir, name))
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestRunCmd_Violations(t *testing.T) {
	scenario := strings.Replace(shortScenario, "storage_temperature_c: 10", "storage_temperature_c: 40", 1)

	out, err := execute(t, "run", "-i", writeScenario(t, scenario))
	assert.ErrorIs(t, err, errViolations)
	assert.Contains(t, out, "storage_temperature")
	assert.NotContains(t, out, "steps:")
}

func TestRunCmd_RequiresInput(t *testing.T) {
	_, err := execute(t, "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input")
}
