package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guttosm/mapsim/internal/domain/model"
	"gopkg.in/yaml.v3"
)

// scenario mirrors the JSON request body. Pointers distinguish a missing key from zero.
type scenario struct {
	Description               string   `yaml:"description"`
	ProduceMassKg             *float64 `yaml:"produce_mass_kg"`
	StorageTemperatureC       *float64 `yaml:"storage_temperature_c"`
	PerforationDiameterMicron *float64 `yaml:"perforation_diameter_micron"`
	PerforationCount          *float64 `yaml:"perforation_count"`
	ScavengerMassG            *float64 `yaml:"scavenger_mass_g"`
	PackageVolumeL            *float64 `yaml:"package_volume_l"`
	TestDurationDays          *float64 `yaml:"test_duration_days"`
}

func loadScenario(path string) (model.SimulationInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.SimulationInput{}, fmt.Errorf("open scenario: %w", err)
	}
	defer f.Close()

	in, err := decodeScenario(f)
	if err != nil {
		return model.SimulationInput{}, fmt.Errorf("%s: %w", path, err)
	}
	return in, nil
}

func decodeScenario(r io.Reader) (model.SimulationInput, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return model.SimulationInput{}, err
	}

	var s scenario
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return model.SimulationInput{}, errors.New("empty scenario")
		}
		return model.SimulationInput{}, fmt.Errorf("decode scenario: %w", err)
	}

	var missing []string
	for _, f := range []struct {
		key string
		val *float64
	}{
		{"produce_mass_kg", s.ProduceMassKg},
		{"storage_temperature_c", s.StorageTemperatureC},
		{"perforation_diameter_micron", s.PerforationDiameterMicron},
		{"perforation_count", s.PerforationCount},
		{"scavenger_mass_g", s.ScavengerMassG},
		{"package_volume_l", s.PackageVolumeL},
		{"test_duration_days", s.TestDurationDays},
	} {
		if f.val == nil {
			missing = append(missing, f.key)
		}
	}
	if len(missing) > 0 {
		return model.SimulationInput{}, fmt.Errorf("missing keys: %s", strings.Join(missing, ", "))
	}

	return model.SimulationInput{
		ProduceMassKg:             *s.ProduceMassKg,
		StorageTemperatureC:       *s.StorageTemperatureC,
		PerforationDiameterMicron: *s.PerforationDiameterMicron,
		PerforationCount:          *s.PerforationCount,
		ScavengerMassG:            *s.ScavengerMassG,
		PackageVolumeL:            *s.PackageVolumeL,
		TestDurationDays:          *s.TestDurationDays,
	}, nil
}
