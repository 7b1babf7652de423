package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is looked up in the working directory before a run.
const ConfigFileName = ".mergecov.yaml"

// MergeConfig holds run defaults loaded from an optional config file.
// Command-line flags take precedence over every field.
type MergeConfig struct {
	// Output is the default destination for the merged report.
	Output string `yaml:"output,omitempty"`
	// Parallel is the default number of workers reading input reports.
	Parallel int `yaml:"parallel,omitempty"`
	// Quiet suppresses progress output.
	Quiet bool `yaml:"quiet,omitempty"`
}

// LoadConfig reads the config file from dir. A missing file is not an error
// and yields the zero config.
func LoadConfig(dir string) (MergeConfig, error) {
	var cfg MergeConfig

	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("read %s: %w", ConfigFileName, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", ConfigFileName, err)
	}

	return cfg, nil
}
