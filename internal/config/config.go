// Package config holds the optional YAML run configuration: input CSV
// locations, output directory and chart geometry. Everything has a
// default so the tool runs with no config file at all.
package config

import (
	"fmt"
)

// Config is the full run configuration.
type Config struct {
	Inputs InputsConfig `yaml:"inputs"`
	Output OutputConfig `yaml:"output"`
	Chart  ChartConfig  `yaml:"chart"`
}

// InputsConfig locates the two source CSV files.
type InputsConfig struct {
	Mortality string `yaml:"mortality"`
	Covid     string `yaml:"covid"`
}

// OutputConfig controls where the chart and CSV extract are written.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// ChartConfig controls the rendered chart geometry.
type ChartConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Default returns the configuration used when no file is given: both
// inputs in the working directory under their upstream names, outputs
// next to them.
func Default() *Config {
	return &Config{
		Inputs: InputsConfig{
			Mortality: "excess_mortality.csv",
			Covid:     "owid-covid-data.csv",
		},
		Output: OutputConfig{Dir: "."},
		Chart:  ChartConfig{Width: 1200, Height: 600},
	}
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Inputs.Mortality == "" {
		return fmt.Errorf("inputs.mortality must not be empty")
	}
	if c.Inputs.Covid == "" {
		return fmt.Errorf("inputs.covid must not be empty")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir must not be empty")
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("chart dimensions must be positive, got %dx%d", c.Chart.Width, c.Chart.Height)
	}
	return nil
}
