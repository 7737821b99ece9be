// Package config loads swisspeak settings from a YAML file, falling back to
// defaults when no file is present.
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable settings shared by the command line tools.
type Config struct {
	Processing struct {
		// Workers is the number of goroutines classifying rows in
		// parallel. 1 disables parallelism.
		Workers int `yaml:"workers"`
	} `yaml:"processing"`

	Render struct {
		// Gap reserved at the bottom of the color ramp, in [0, 1).
		Gap float64 `yaml:"gap"`

		// Min and Max pin the ramp's magnitude window when set,
		// instead of measuring it from the grid.
		Min *float64 `yaml:"min"`
		Max *float64 `yaml:"max"`
	} `yaml:"render"`

	Downsample struct {
		// Factor is the default block edge length.
		Factor int `yaml:"factor"`
	} `yaml:"downsample"`
}

// Default returns the configuration used when no file overrides it.
func Default() *Config {
	cfg := &Config{}
	cfg.Processing.Workers = runtime.NumCPU()
	cfg.Render.Gap = 0.35
	cfg.Downsample.Factor = 10
	return cfg
}

// Load reads the configuration from path. A missing file is not an error;
// the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return cfg, nil
}
